// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Infof prints a progress/summary line only in verbose mode.
func Infof(dst io.Writer, verbose bool, format string, a ...any) {
	if !verbose {
		return
	}
	_, _ = fmt.Fprintf(dst, "INFO: "+format+"\n", a...)
}

// Count formats n with thousands separators for log lines.
func Count(n int) string { return humanize.Comma(int64(n)) }

// Size formats a byte count for log lines ("1.2 MB").
func Size(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// Since formats elapsed wall time rounded to milliseconds.
func Since(t time.Time) string { return time.Since(t).Round(time.Millisecond).String() }
