// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"complseq/internal/appcore"
	"complseq/internal/cli"
	"complseq/internal/clibase"
	"complseq/internal/version"
	"complseq/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("complseq")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return printUsage(fs, stdout, stderr, appcore.ExitOK)
		}
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			outw := bufio.NewWriter(stdout)
			cli.PrintExamples(outw, "complseq")
			return flush(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return printUsage(fs, stderr, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		outw := bufio.NewWriter(stdout)
		_, _ = fmt.Fprintf(outw, "complseq version %s\n", version.Version)
		return flush(outw, stderr, appcore.ExitOK)
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{
		InputFile:       opts.InputFile,
		OutputFile:      opts.OutputFile,
		NumChars:        opts.NumChars,
		SeqType:         opts.SeqType,
		Threads:         opts.Threads,
		Format:          opts.Format,
		MatchedOnly:     opts.MatchedOnly,
		Header:          opts.Header,
		NoMatchExitCode: opts.NoMatchExitCode,
		Progress:        opts.Progress,
		Quiet:           opts.Quiet,
		Verbose:         opts.Verbose,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// printUsage writes the help text to dst and returns code, or 3 if the
// write itself failed.
func printUsage(fs *pflag.FlagSet, dst, stderr io.Writer, code int) int {
	outw := bufio.NewWriter(dst)
	cli.Usage(outw, fs, "complseq")
	return flush(outw, stderr, code)
}

// flush returns code unless the flush failed for a reason other than a
// closed pipe.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return code
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitIO
	}
	return code
}
