package output

// Output formats understood by the writers registry.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists every supported format in help order.
func Formats() []string { return []string{FormatText, FormatTSV, FormatJSON, FormatJSONL} }

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "subsequence\tpositions\tcomplementary\tnum_results\tlocations"
