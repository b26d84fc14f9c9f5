package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plainFASTA = `>seq1 first record
acgu
UGCA
>seq2
NNNN
`

// writeGz creates a gzipped file with the provided data and returns its path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestReadSequence(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		wantID string
		want   string
	}{
		{"plain first line", "atcg\nGGGG\n", "", "ATCG"},
		{"plain skips blanks", "\n\n  AUGC  \n", "", "AUGC"},
		{"fasta first record", plainFASTA, "seq1", "ACGUUGCA"},
		{"fasta no trailing newline", ">x\nAC\nGT", "x", "ACGT"},
	}
	for _, tc := range tests {
		rec, err := ReadSequence(context.Background(), strings.NewReader(tc.in))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if rec.ID != tc.wantID || rec.Seq != tc.want {
			t.Errorf("%s: got %+v, want ID=%q Seq=%q", tc.name, rec, tc.wantID, tc.want)
		}
	}
}

func TestReadSequenceEmpty(t *testing.T) {
	for _, in := range []string{"", "\n\n", ">only-header\n"} {
		if _, err := ReadSequence(context.Background(), strings.NewReader(in)); !errors.Is(err, ErrEmpty) {
			t.Errorf("ReadSequence(%q) err = %v, want ErrEmpty", in, err)
		}
	}
}

func TestReadSequenceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadSequence(ctx, strings.NewReader("ACGT\n")); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestReadSequencePathGzip(t *testing.T) {
	rec, err := ReadSequencePath(context.Background(), writeGz(t, plainFASTA))
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if rec.ID != "seq1" || rec.Seq != "ACGUUGCA" || !rec.More {
		t.Fatalf("gzip parse failed: %+v", rec)
	}
}

func TestReadSequencePathMissing(t *testing.T) {
	if _, err := ReadSequencePath(context.Background(), filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReadSequenceStdin(t *testing.T) {
	// Fake stdin by swapping os.Stdin
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, "ttaa\n")
		_ = w.Close()
	}()

	rec, err := ReadSequencePath(context.Background(), "-")
	if err != nil {
		t.Fatalf("read stdin: %v", err)
	}
	if rec.Seq != "TTAA" {
		t.Fatalf("stdin seq = %q, want TTAA", rec.Seq)
	}
}
