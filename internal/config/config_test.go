package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(`
num_chars = 3
seq_type  = "dna"
threads   = 4
`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.NumChars == nil || *f.NumChars != 3 {
		t.Fatalf("num_chars not decoded: %+v", f)
	}
	if f.SeqType == nil || *f.SeqType != "dna" || f.Threads == nil || *f.Threads != 4 {
		t.Fatalf("unexpected decode: %+v", f)
	}
	if f.Format != nil || f.MatchedOnly != nil || f.NoMatchExitCode != nil {
		t.Fatalf("unset keys must stay nil: %+v", f)
	}
}

func TestDecodeUnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("num_char = 3\n"))
	if err == nil || !strings.Contains(err.Error(), "num_char") {
		t.Fatalf("want unknown key error, got %v", err)
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	if _, err := Decode(strings.NewReader(`num_chars = "four"`)); err == nil {
		t.Fatalf("expected type error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complseq.toml")
	if err := os.WriteFile(path, []byte("matched_only = true\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.MatchedOnly == nil || !*f.MatchedOnly || f.Format == nil || *f.Format != "json" {
		t.Fatalf("unexpected load: %+v", f)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
