// internal/output/json.go
package output

import (
	"io"

	"complseq-core/engine"
	"complseq/internal/jsonutil"
	"complseq/pkg/api"
)

func toAPIRanges(rs []engine.Range) []api.RangeV1 {
	out := make([]api.RangeV1, len(rs))
	for i, r := range rs {
		out[i] = api.RangeV1{Start: r.Start, End: r.End}
	}
	return out
}

// ToAPISubsequence converts a report entry to the stable wire schema (v1).
func ToAPISubsequence(e engine.Entry) api.SubsequenceV1 {
	v := api.SubsequenceV1{
		Subsequence: e.Subsequence,
		Positions:   toAPIRanges(e.Positions),
		Set:         append([]string{}, e.Set...),
		Items:       make([]api.ComplementaryV1, 0, len(e.Items)),
	}
	for _, it := range e.Items {
		v.Items = append(v.Items, api.ComplementaryV1{
			Complementary: it.Complementary,
			NumResults:    it.NumResults(),
			Locations:     toAPIRanges(it.Locations),
		})
	}
	return v
}

// ToAPIReport converts a whole report; seqID is the FASTA ID if any.
func ToAPIReport(rep *engine.Report, seqID string) api.ReportV1 {
	v := api.ReportV1{
		Sequence:          rep.Sequence,
		SequenceID:        seqID,
		SubsequenceLength: rep.NumChars,
		SeqType:           rep.Alphabet,
		Subsequences:      make([]api.SubsequenceV1, 0, len(rep.Entries)),
	}
	for _, e := range rep.Entries {
		v.Subsequences = append(v.Subsequences, ToAPISubsequence(e))
	}
	return v
}

// WriteJSON writes the report as one pretty-indented v1 document.
func WriteJSON(w io.Writer, rep *engine.Report, seqID string) error {
	return jsonutil.EncodePretty(w, ToAPIReport(rep, seqID))
}
