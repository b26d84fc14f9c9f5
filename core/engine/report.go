// core/engine/report.go
package engine

import (
	"strconv"
	"strings"
)

// Range is a 1-based inclusive span of the scanned sequence.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Range) String() string { return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End) }

// JoinRanges renders ranges as "1-2, 3-4".
func JoinRanges(rs []Range) string {
	ss := make([]string, len(rs))
	for i, r := range rs {
		ss[i] = r.String()
	}
	return strings.Join(ss, ", ")
}

// Item is one complementary string together with its matches.
type Item struct {
	Complementary string  `json:"complementary"`
	Locations     []Range `json:"locations"`
}

func (it Item) NumResults() int { return len(it.Locations) }

// Entry aggregates everything known about one distinct subsequence.
// Set holds the full complement set in generation order; Items only the
// complements that occur at least once.
type Entry struct {
	Subsequence string   `json:"subsequence"`
	Positions   []Range  `json:"positions"`
	Set         []string `json:"set"`
	Items       []Item   `json:"items"`
}

// Report is the ordered result of one run: entries appear in the order their
// subsequence was first seen.
type Report struct {
	Sequence string  `json:"sequence"`
	NumChars int     `json:"num_chars"`
	Alphabet string  `json:"alphabet"`
	Entries  []Entry `json:"entries"`
}

// MatchedOnly returns a shallow copy without entries whose complements never
// occur in the sequence.
func (r *Report) MatchedOnly() *Report {
	out := *r
	out.Entries = make([]Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		if len(e.Items) > 0 {
			out.Entries = append(out.Entries, e)
		}
	}
	return &out
}

// Stats summarizes a report for logging.
type Stats struct {
	Windows     int // window start positions scanned
	Distinct    int // distinct subsequences
	Complements int // complement strings generated
	Matched     int // entries with at least one match
	Matches     int // total match locations
}

func (r *Report) Stats() Stats {
	var s Stats
	s.Distinct = len(r.Entries)
	for _, e := range r.Entries {
		s.Windows += len(e.Positions)
		s.Complements += len(e.Set)
		if len(e.Items) > 0 {
			s.Matched++
		}
		for _, it := range e.Items {
			s.Matches += len(it.Locations)
		}
	}
	return s
}
