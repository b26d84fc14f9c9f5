package complement

import "fmt"

// UnknownSymbolError reports a symbol with no entry in the active alphabet.
// Pos is 1-based within the scanned text when known, 0 otherwise.
type UnknownSymbolError struct {
	Symbol   byte
	Alphabet string
	Pos      int
}

func (e *UnknownSymbolError) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("unknown symbol %q at position %d (alphabet %q)", e.Symbol, e.Pos, e.Alphabet)
	}
	return fmt.Sprintf("unknown symbol %q (alphabet %q)", e.Symbol, e.Alphabet)
}
