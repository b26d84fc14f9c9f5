// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrEmpty is returned when the input holds no sequence characters.
var ErrEmpty = errors.New("no sequence found")

// Record is the single sequence a run operates on.
type Record struct {
	ID   string // FASTA header ID; empty for plain input
	Seq  string // upper-cased, whitespace stripped
	More bool   // further FASTA records were present and ignored
}

// ReadSequence reads the first sequence from r.
//
// Plain input: the first non-empty line is the sequence.
// FASTA input: the lines of the first record are joined; later records are ignored.
func ReadSequence(ctx context.Context, r io.Reader) (Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		rec   Record
		seq   []byte
		fasta bool
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return Record{}, ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if fasta {
				rec.More = true
				break
			}
			fasta = true
			rec.ID = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, line...)
		if !fasta {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("fasta scan: %w", err)
	}
	if len(seq) == 0 {
		return Record{}, ErrEmpty
	}
	rec.Seq = string(bytes.ToUpper(seq))
	return rec, nil
}

// ReadSequencePath opens path ("-" for stdin, gzip auto-detected) and reads
// its first sequence.
func ReadSequencePath(ctx context.Context, path string) (Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return Record{}, err
	}
	defer rc.Close()

	rec, err := ReadSequence(ctx, rc)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
