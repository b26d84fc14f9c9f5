// core/complement/alphabet.go
package complement

import "strings"

/* ------------------------- complement tables ------------------------- */

// Alphabet is an immutable symbol → complement-choices table.
// Lookups are on upper-case bytes; callers fold case first.
type Alphabet struct {
	name    string
	symbols []byte
	table   [256][]byte
}

func newAlphabet(name string, pairs map[byte]string, order string) *Alphabet {
	a := &Alphabet{name: name, symbols: []byte(order)}
	for _, s := range a.symbols {
		a.table[s] = []byte(pairs[s])
	}
	return a
}

var (
	// DNA pairs A↔T and C↔G; no symbol is ambiguous.
	DNA = newAlphabet("dna", map[byte]string{
		'A': "T",
		'T': "A",
		'C': "G",
		'G': "C",
	}, "ATCG")

	// RNA allows G·U wobble pairs, so U and G each have two choices.
	RNA = newAlphabet("rna", map[byte]string{
		'A': "U",
		'U': "AG",
		'C': "G",
		'G': "CU",
	}, "AUCG")
)

// ByName returns the alphabet registered under name (case-insensitive).
// Unknown names yield an empty alphabet on which every lookup fails.
func ByName(name string) *Alphabet {
	switch strings.ToLower(name) {
	case "dna":
		return DNA
	case "rna":
		return RNA
	}
	return &Alphabet{name: strings.ToLower(name)}
}

// Names lists the selectable alphabet names.
func Names() []string { return []string{"dna", "rna"} }

func (a *Alphabet) Name() string { return a.name }

// Symbols returns the alphabet's keys in table order.
func (a *Alphabet) Symbols() []byte { return append([]byte(nil), a.symbols...) }

// Has reports whether s (any case) is a key of the table.
func (a *Alphabet) Has(s byte) bool { return len(a.table[upper(s)]) > 0 }

// Complements returns a copy of the ordered complement choices for s.
func (a *Alphabet) Complements(s byte) ([]byte, bool) {
	c := a.table[upper(s)]
	if len(c) == 0 {
		return nil, false
	}
	return append([]byte(nil), c...), true
}

// Validate returns an *UnknownSymbolError for the first symbol of seq
// (scanning 5'→3') that is not in the table.
func (a *Alphabet) Validate(seq string) error {
	for i := 0; i < len(seq); i++ {
		if len(a.table[upper(seq[i])]) == 0 {
			return &UnknownSymbolError{Symbol: upper(seq[i]), Alphabet: a.name, Pos: i + 1}
		}
	}
	return nil
}

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
