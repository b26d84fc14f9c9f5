// internal/writers/sink.go
package writers

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Commit renders into the destination named by path ("-" = stdout) with
// all-or-nothing semantics: stdout output is buffered in memory, file output
// goes to a temp file next to path and is renamed into place only when render
// succeeds. Returns bytes written.
func Commit(path string, stdout io.Writer, render func(io.Writer) error) (int64, error) {
	if path == "-" {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return 0, err
		}
		return buf.WriteTo(stdout)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	cw := &countingWriter{w: tmp}
	bw := bufio.NewWriter(cw)
	if err := render(bw); err != nil {
		_ = tmp.Close()
		cleanup()
		return 0, err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		cleanup()
		return 0, fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return 0, fmt.Errorf("close output: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return 0, fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return 0, fmt.Errorf("commit output: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
