// pkg/api/report_v1.go
package api

// RangeV1 is a 1-based inclusive span of the scanned sequence.
type RangeV1 struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ComplementaryV1 is one complementary string that occurs in the sequence.
type ComplementaryV1 struct {
	Complementary string    `json:"complementary"`
	NumResults    int       `json:"num_results"`
	Locations     []RangeV1 `json:"locations"`
}

// SubsequenceV1 is the stable JSON/JSONL schema for one report entry.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SubsequenceV1 struct {
	Subsequence string            `json:"subsequence"`
	Positions   []RangeV1         `json:"positions"`
	Set         []string          `json:"set"`
	Items       []ComplementaryV1 `json:"items"`
}

// ReportV1 wraps a whole run for the single-document JSON format.
type ReportV1 struct {
	Sequence          string          `json:"sequence"`
	SequenceID        string          `json:"sequence_id,omitempty"`
	SubsequenceLength int             `json:"subsequence_length"`
	SeqType           string          `json:"seq_type"`
	Subsequences      []SubsequenceV1 `json:"subsequences"`
}
