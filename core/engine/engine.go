// core/engine/engine.go
package engine

import (
	"strconv"
	"strings"

	"complseq-core/complement"
)

/* ----------------------------- config ----------------------------- */

type Config struct {
	NumChars int                  // window width
	Alphabet *complement.Alphabet // complement table
}

// Engine is stateless across runs; Run may be called concurrently.
type Engine struct {
	cfg    Config
	expand func([]byte, *complement.Alphabet) ([]string, error)
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg, expand: complement.Expand}
}

/* ------------------------------ types ------------------------------ */

// Window is one distinct subsequence with every range it occupies.
type Window struct {
	Text      string
	Positions []Range
}

/* ---------------------------- validation ---------------------------- */

// prepare upper-cases seq and checks every precondition of a run.
func (e *Engine) prepare(seq string) (string, error) {
	if e.cfg.Alphabet == nil {
		return "", &InvalidParameterError{Param: "alphabet", Reason: "no alphabet selected"}
	}
	if len(seq) == 0 {
		return "", &InvalidParameterError{Param: "sequence", Reason: "sequence is empty"}
	}
	n := e.cfg.NumChars
	if n <= 0 {
		return "", &InvalidParameterError{Param: "num_chars", Reason: "must be a positive integer"}
	}
	if n > len(seq) {
		return "", &InvalidParameterError{Param: "num_chars",
			Reason: "exceeds sequence length " + strconv.Itoa(len(seq))}
	}
	seq = strings.ToUpper(seq)
	if err := e.cfg.Alphabet.Validate(seq); err != nil {
		return "", err
	}
	return seq, nil
}

/* ------------------------------- Run ------------------------------- */

// Run scans seq once and returns the full report. Complement expansion and
// search happen exactly once per distinct window text; later occurrences only
// add their range. Any error aborts the run with no report.
func (e *Engine) Run(seq string) (*Report, error) {
	seq, windows, err := e.Windows(seq)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(windows))
	for i, w := range windows {
		if entries[i], err = e.Analyze(seq, w); err != nil {
			return nil, err
		}
	}
	return e.Assemble(seq, entries), nil
}

/* ------------------------ decomposed pieces ------------------------ */

// Windows validates seq and returns its distinct windows in first-occurrence
// order, each carrying all of its ranges. The returned sequence is the
// upper-cased form that Analyze must be given.
func (e *Engine) Windows(seq string) (string, []Window, error) {
	seq, err := e.prepare(seq)
	if err != nil {
		return "", nil, err
	}
	n := e.cfg.NumChars
	var out []Window
	index := make(map[string]int, len(seq)-n+1)
	for start := 0; start+n <= len(seq); start++ {
		text := seq[start : start+n]
		r := Range{Start: start + 1, End: start + n}
		if i, seen := index[text]; seen {
			out[i].Positions = append(out[i].Positions, r)
			continue
		}
		index[text] = len(out)
		out = append(out, Window{Text: text, Positions: []Range{r}})
	}
	return seq, out, nil
}

// Analyze expands one window and searches seq for each complement. It only
// reads seq, so distinct windows may be analyzed in parallel.
func (e *Engine) Analyze(seq string, w Window) (Entry, error) {
	ent, err := e.analyze(seq, w.Text)
	if err != nil {
		return Entry{}, err
	}
	ent.Positions = append([]Range(nil), w.Positions...)
	return ent, nil
}

// Assemble builds the report from entries produced by Analyze, in window order.
func (e *Engine) Assemble(seq string, entries []Entry) *Report {
	return &Report{
		Sequence: seq,
		NumChars: e.cfg.NumChars,
		Alphabet: e.cfg.Alphabet.Name(),
		Entries:  entries,
	}
}

func (e *Engine) analyze(seq, text string) (Entry, error) {
	set, err := e.expand([]byte(text), e.cfg.Alphabet)
	if err != nil {
		return Entry{}, err
	}
	ent := Entry{Subsequence: text, Set: set, Items: []Item{}}
	for _, c := range set {
		if locs := Find(seq, c); len(locs) > 0 {
			ent.Items = append(ent.Items, Item{Complementary: c, Locations: locs})
		}
	}
	return ent, nil
}

/* ------------------------------ search ------------------------------ */

// Find returns every range where pattern occurs in seq, overlaps included,
// in ascending start order.
func Find(seq, pattern string) []Range {
	pl := len(pattern)
	if pl == 0 || len(seq) < pl {
		return nil
	}
	var out []Range
	for i := 0; i+pl <= len(seq); {
		j := strings.Index(seq[i:], pattern)
		if j < 0 {
			break
		}
		pos := i + j
		out = append(out, Range{Start: pos + 1, End: pos + pl})
		i = pos + 1
	}
	return out
}
