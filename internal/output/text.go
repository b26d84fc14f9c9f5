// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"complseq-core/engine"
)

// WriteText renders the report in the canonical block layout: a two-line
// header, then one blank-line separated block per subsequence.
func WriteText(w io.Writer, rep *engine.Report) error {
	if _, err := fmt.Fprintf(w, "Sequence: %s\nSubsequence Length: %d\n", rep.Sequence, rep.NumChars); err != nil {
		return err
	}
	for _, e := range rep.Entries {
		if err := writeTextEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

func writeTextEntry(w io.Writer, e engine.Entry) error {
	_, err := fmt.Fprintf(w, "\nSubsequence: %s\nPositions: %s\nSet of complementary sequences: %s\n",
		e.Subsequence, engine.JoinRanges(e.Positions), strings.Join(e.Set, ", "))
	if err != nil {
		return err
	}
	for _, it := range e.Items {
		if _, err := fmt.Fprintf(w, "Complementary: %s\nLocations: %s\n",
			it.Complementary, engine.JoinRanges(it.Locations)); err != nil {
			return err
		}
	}
	return nil
}
