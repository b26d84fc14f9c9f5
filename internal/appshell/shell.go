package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is an entry point: argv without the program name, stdout, stderr.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs fn with SIGINT/SIGTERM wired to its context and exits with its
// code. An empty command line shows help.
func Main(fn RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := fn(ctx, argv, os.Stdout, os.Stderr)
	// A signal that landed after the work finished still means "interrupted".
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
