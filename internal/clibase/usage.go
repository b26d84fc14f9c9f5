// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"complseq/internal/version"
)

// WriteUsage writes the shared help layout to out: header, synopsis, an
// optional tool-specific block, then the flag table of fs.
func WriteUsage(out io.Writer, fs *pflag.FlagSet, name, synopsis string, extra func(out io.Writer)) {
	fmt.Fprintf(out, "%s: find complementary subsequences inside a DNA/RNA sequence\n\n", name)
	fmt.Fprintln(out, "License: GPL-3.0-or-later")
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)

	fmt.Fprintf(out, "Usage of %s:\n  %s %s\n", name, name, synopsis)
	if extra != nil {
		fmt.Fprintln(out)
		extra(out)
	}

	fmt.Fprintln(out, "\nFlags ([*] = required):")
	fmt.Fprint(out, fs.FlagUsages())
}
