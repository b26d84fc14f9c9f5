// internal/writers/report.go
package writers

import (
	"encoding/json"
	"io"

	"complseq-core/engine"
	"complseq/internal/jsonlutil"
	"complseq/internal/output"
)

func init() {
	Register(output.FormatText, func(w io.Writer, p Payload) error {
		return output.WriteText(w, p.Report)
	})
	Register(output.FormatTSV, func(w io.Writer, p Payload) error {
		return output.WriteTSV(w, p.Report, p.Header)
	})
	Register(output.FormatJSON, func(w io.Writer, p Payload) error {
		return output.WriteJSON(w, p.Report, p.SequenceID)
	})
	Register(output.FormatJSONL, writeJSONL)
}

// writeJSONL streams each entry as one JSON line (v1).
func writeJSONL(w io.Writer, p Payload) error {
	in, done := StartEntryJSONLWriter(w, 0)
	for _, e := range p.Report.Entries {
		in <- e
	}
	close(in)
	return <-done
}

// StartEntryJSONLWriter streams each engine.Entry as one JSON line (v1).
func StartEntryJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Entry, <-chan error) {
	return jsonlutil.Start[engine.Entry](out, bufSize,
		func(enc *json.Encoder, e engine.Entry) error {
			return enc.Encode(output.ToAPISubsequence(e))
		},
		IsBrokenPipe,
	)
}
