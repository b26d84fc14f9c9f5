// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"complseq-core/complement"
	"complseq-core/engine"
	"complseq/internal/clibase"
	"complseq/internal/cliutil"
	"complseq/internal/config"
	"complseq/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input / output
	InputFile  string
	OutputFile string // "-" = stdout
	ConfigFile string

	// Scan parameters
	NumChars int
	SeqType  string

	// Performance
	Threads int

	// Output
	Format          string
	MatchedOnly     bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Misc
	Progress bool
	Quiet    bool
	Verbose  bool
	Version  bool
}

// NewFlagSet returns a FlagSet that reports errors instead of exiting.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	return fs
}

// Usage writes the help text for fs (after ParseArgs registered its flags).
func Usage(out io.Writer, fs *pflag.FlagSet, name string) {
	clibase.WriteUsage(out, fs, name, "-i IN_FILE -n N [-t "+strings.Join(complement.Names(), "|")+"] [-o OUT_FILE] [flags]", nil)
}

// PrintExamples writes the --examples quickstart.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		fmt.Fprintf(w, "  # every 4-nt RNA window and its complements\n  %s -i seq.txt -n 4\n\n", name)
		fmt.Fprintf(w, "  # DNA, gzipped FASTA, matched windows only, as TSV\n  %s -i seq.fa.gz -n 6 -t dna --matched-only -f tsv\n\n", name)
		fmt.Fprintf(w, "  # read STDIN, all CPUs, write JSON to a file\n  cat seq.txt | %s -n 5 -j 0 -f json -o out.json -\n", name)
	})
}

// ParseArgs registers and parses all flags, applies --config defaults for
// flags not given explicitly, and validates the result.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, examples, noHeader bool

	// Input / output
	fs.StringVarP(&opt.InputFile, "input-file", "i", "", "input sequence file: plain first line or FASTA, gzip ok, '-' = STDIN [*]")
	fs.StringVarP(&opt.OutputFile, "output-file", "o", "-", "output file ('-' = STDOUT)")
	fs.StringVarP(&opt.ConfigFile, "config", "c", "", "TOML file with defaults (num_chars, seq_type, format, threads, matched_only, no_match_exit_code)")

	// Scan parameters
	fs.IntVarP(&opt.NumChars, "num-chars", "n", 0, "number of characters in subsequence [*]")
	fs.StringVarP(&opt.SeqType, "seq-type", "t", "rna", "sequence type: "+strings.Join(complement.Names(), " | "))

	// Performance
	fs.IntVarP(&opt.Threads, "threads", "j", 1, "worker threads for distinct windows (0 = all CPUs)")

	// Output
	fs.StringVarP(&opt.Format, "format", "f", output.FormatText, "output format: "+strings.Join(output.Formats(), " | "))
	fs.BoolVar(&opt.MatchedOnly, "matched-only", false, "only report subsequences with at least one complementary match")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in TSV output")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no complementary match is found")

	// Misc
	fs.BoolVar(&opt.Progress, "progress", false, "show a progress bar on STDERR")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress warnings")
	fs.BoolVar(&opt.Verbose, "verbose", false, "print run summary on STDERR")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")
	fs.BoolVar(&examples, "examples", false, "show usage examples and exit")
	fs.BoolVarP(&help, "help", "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, pflag.ErrHelp
	}
	if examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	if fs.NArg() > 0 {
		if opt.InputFile != "" {
			return opt, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		}
		in, err := cliutil.SingleInput(fs.Args())
		if err != nil {
			return opt, err
		}
		opt.InputFile = in
	}

	if opt.ConfigFile != "" {
		f, err := config.Load(opt.ConfigFile)
		if err != nil {
			return opt, err
		}
		applyConfig(fs, &opt, f)
	}
	return opt, Validate(opt)
}

// applyConfig copies config values into opt for every flag left at its default.
func applyConfig(fs *pflag.FlagSet, opt *Options, f config.File) {
	if f.NumChars != nil && !fs.Changed("num-chars") {
		opt.NumChars = *f.NumChars
	}
	if f.SeqType != nil && !fs.Changed("seq-type") {
		opt.SeqType = *f.SeqType
	}
	if f.Format != nil && !fs.Changed("format") {
		opt.Format = *f.Format
	}
	if f.Threads != nil && !fs.Changed("threads") {
		opt.Threads = *f.Threads
	}
	if f.MatchedOnly != nil && !fs.Changed("matched-only") {
		opt.MatchedOnly = *f.MatchedOnly
	}
	if f.NoMatchExitCode != nil && !fs.Changed("no-match-exit-code") {
		opt.NoMatchExitCode = *f.NoMatchExitCode
	}
}

// Validate applies CLI invariants. Missing source/sink or a non-positive
// length is an *engine.InvalidParameterError.
func Validate(o Options) error {
	if o.InputFile == "" {
		return &engine.InvalidParameterError{Param: "input-file", Reason: "an input file is required"}
	}
	if o.OutputFile == "" {
		return &engine.InvalidParameterError{Param: "output-file", Reason: "must not be empty"}
	}
	if o.NumChars <= 0 {
		return &engine.InvalidParameterError{Param: "num-chars", Reason: "must be a positive integer"}
	}
	if !knownSeqType(o.SeqType) {
		return fmt.Errorf("invalid --seq-type %q (want %s)", o.SeqType, strings.Join(complement.Names(), " or "))
	}
	switch o.Format {
	case output.FormatText, output.FormatTSV, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	if o.Quiet && o.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

func knownSeqType(name string) bool {
	for _, n := range complement.Names() {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
