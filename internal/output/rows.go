// internal/output/rows.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"complseq-core/engine"
)

// RangesCSV renders ranges without spaces for tabular cells ("1-2,5-6").
func RangesCSV(rs []engine.Range) string {
	if len(rs) == 0 {
		return ""
	}
	b := make([]byte, 0, len(rs)*8)
	for i, r := range rs {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(r.Start), 10)
		b = append(b, '-')
		b = strconv.AppendInt(b, int64(r.End), 10)
	}
	return string(b)
}

// FormatRowsTSV returns one row per matching complement of e (no trailing
// newline). An entry without matches yields a single row with empty
// complementary/locations and a zero count.
func FormatRowsTSV(e engine.Entry) []string {
	pos := RangesCSV(e.Positions)
	if len(e.Items) == 0 {
		return []string{fmt.Sprintf("%s\t%s\t\t0\t", e.Subsequence, pos)}
	}
	rows := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%d\t%s",
			e.Subsequence, pos, it.Complementary, it.NumResults(), RangesCSV(it.Locations)))
	}
	return rows
}

// WriteTSV writes the report as a tab-delimited table.
func WriteTSV(w io.Writer, rep *engine.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, e := range rep.Entries {
		for _, row := range FormatRowsTSV(e) {
			if _, err := fmt.Fprintln(w, row); err != nil {
				return err
			}
		}
	}
	return nil
}
