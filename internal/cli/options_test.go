// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"complseq-core/complement"
	"complseq-core/engine"
	"complseq/internal/clibase"
)

func newFS() *pflag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-i", "seq.txt", "-n", "4")
	if o.InputFile != "seq.txt" || o.NumChars != 4 {
		t.Fatalf("bad parse %+v", o)
	}
	if o.SeqType != "rna" || o.OutputFile != "-" || o.Format != "text" || o.Threads != 1 || !o.Header {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestLongFlags(t *testing.T) {
	o := mustParse(t,
		"--input-file", "in.fa", "--output-file", "out.txt",
		"--num-chars=3", "--seq-type", "DNA", "--format", "tsv",
		"--threads", "0", "--matched-only", "--no-header",
	)
	if o.OutputFile != "out.txt" || o.SeqType != "DNA" || o.Format != "tsv" || o.Threads != 0 {
		t.Errorf("bad long-flag parse %+v", o)
	}
	if !o.MatchedOnly || o.Header {
		t.Errorf("bool flags not applied %+v", o)
	}
}

func TestPositionalInput(t *testing.T) {
	o := mustParse(t, "-n", "2", "seq.txt")
	if o.InputFile != "seq.txt" {
		t.Fatalf("positional input not used: %+v", o)
	}
	if _, err := ParseArgs(newFS(), []string{"-n", "2", "a.txt", "b.txt"}); err == nil {
		t.Fatalf("expected error for two positionals")
	}
	if _, err := ParseArgs(newFS(), []string{"-i", "a.txt", "-n", "2", "b.txt"}); err == nil {
		t.Fatalf("expected error for -i plus a positional")
	}
	if o := mustParse(t, "-n", "2", "-"); o.InputFile != "-" {
		t.Fatalf("'-' should select STDIN: %+v", o)
	}
}

func TestPositionalGlob(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "only.fa")
	if err := os.WriteFile(fn, []byte(">x\nACGU\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if o := mustParse(t, "-n", "2", filepath.Join(dir, "*.fa")); o.InputFile != fn {
		t.Fatalf("glob not resolved: %+v", o)
	}
}

func TestMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		param string
	}{
		{"no input", []string{"-n", "2"}, "input-file"},
		{"no num-chars", []string{"-i", "x"}, "num-chars"},
		{"zero num-chars", []string{"-i", "x", "-n", "0"}, "num-chars"},
		{"negative num-chars", []string{"-i", "x", "-n", "-1"}, "num-chars"},
		{"empty output", []string{"-i", "x", "-n", "1", "-o", ""}, "output-file"},
	}
	for _, tc := range tests {
		_, err := ParseArgs(newFS(), tc.args)
		var ipe *engine.InvalidParameterError
		if !errors.As(err, &ipe) || ipe.Param != tc.param {
			t.Errorf("%s: want InvalidParameterError(%s), got %v", tc.name, tc.param, err)
		}
	}
}

func TestInvalidChoices(t *testing.T) {
	for _, args := range [][]string{
		{"-i", "x", "-n", "2", "-t", "protein"},
		{"-i", "x", "-n", "2", "-f", "xml"},
		{"-i", "x", "-n", "2", "-j", "-2"},
		{"-i", "x", "-n", "2", "--no-match-exit-code", "300"},
		{"-i", "x", "-n", "2", "-q", "--verbose"},
	} {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestSeqTypeChoices(t *testing.T) {
	for _, n := range complement.Names() {
		for _, v := range []string{n, strings.ToUpper(n)} {
			if o := mustParse(t, "-i", "x", "-n", "2", "-t", v); o.SeqType != v {
				t.Errorf("seq-type %q not kept: %+v", v, o)
			}
		}
	}
}

func TestUsageWritesToGivenWriter(t *testing.T) {
	fs := newFS()
	if _, err := ParseArgs(fs, []string{"-h"}); !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	var buf bytes.Buffer
	Usage(&buf, fs, "complseq")
	got := buf.String()
	for _, want := range []string{"Usage of complseq:", "-t dna|rna", "--num-chars", "sequence type: dna | rna", "--examples"} {
		if !strings.Contains(got, want) {
			t.Errorf("usage missing %q:\n%s", want, got)
		}
	}
}

func TestPrintExamples(t *testing.T) {
	var buf bytes.Buffer
	PrintExamples(&buf, "complseq")
	got := buf.String()
	if !strings.HasPrefix(got, "complseq quickstart\n\n") {
		t.Fatalf("unexpected header:\n%s", got)
	}
	for _, want := range []string{
		"  complseq -i seq.txt -n 4\n\n",
		"  complseq -i seq.fa.gz -n 6 -t dna --matched-only -f tsv\n\n",
		"  cat seq.txt | complseq -n 5 -j 0 -f json -o out.json -\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("examples missing %q:\n%s", want, got)
		}
	}
}

func TestHelpAndVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version should short-circuit validation: %+v %v", o, err)
	}
}

func TestConfigDefaultsAndPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	data := "num_chars = 5\nseq_type = \"dna\"\nformat = \"json\"\nmatched_only = true\nno_match_exit_code = 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	o := mustParse(t, "-i", "x", "-c", path)
	if o.NumChars != 5 || o.SeqType != "dna" || o.Format != "json" || !o.MatchedOnly || o.NoMatchExitCode != 4 {
		t.Fatalf("config not applied: %+v", o)
	}

	o = mustParse(t, "-i", "x", "-c", path, "-n", "2", "-f", "text")
	if o.NumChars != 2 || o.Format != "text" || o.SeqType != "dna" {
		t.Fatalf("explicit flags must win over config: %+v", o)
	}
}

func TestConfigErrors(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-i", "x", "-n", "1", "-c", "/no/such/file.toml"}); err == nil {
		t.Fatalf("expected error for missing config")
	}
}
