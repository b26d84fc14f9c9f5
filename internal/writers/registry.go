// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"complseq-core/engine"
)

// Payload is everything a format needs to render one run.
type Payload struct {
	Report     *engine.Report
	SequenceID string
	Header     bool // TSV header row
}

// ReportWriter renders a payload to w.
type ReportWriter func(w io.Writer, p Payload) error

// Writer registry (format → handler). Populated from init() in report.go.
var reportWriters = map[string]ReportWriter{}

// Register adds or replaces the writer for format (idempotent last-wins).
func Register(format string, fn ReportWriter) { reportWriters[format] = fn }

// Registered lists known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, p Payload) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, p)
}
