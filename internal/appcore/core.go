// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"complseq-core/complement"
	"complseq-core/engine"
	"complseq-core/fasta"
	"complseq/internal/cmdutil"
	"complseq/internal/pipeline"
	"complseq/internal/writers"
)

// Exit codes shared by every entry point.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, bad input data
	ExitIO       = 3 // write failures
	ExitCanceled = 130
)

type Options struct {
	InputFile  string
	OutputFile string

	NumChars int
	SeqType  string

	Threads int

	Format          string
	MatchedOnly     bool
	Header          bool
	NoMatchExitCode int

	Progress bool
	Quiet    bool
	Verbose  bool
}

// Run reads the sequence, scans it and commits the rendered report.
// Nothing is written to the output unless the whole scan succeeded.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	began := time.Now()

	rec, err := fasta.ReadSequencePath(ctx, o.InputFile)
	if err != nil {
		return fail(stderr, err, ExitUsage)
	}
	if rec.More {
		cmdutil.Warnf(stderr, o.Quiet, "%s holds several FASTA records; only %q is scanned", o.InputFile, rec.ID)
	}
	cmdutil.Infof(stderr, o.Verbose, "read %s nt from %s", cmdutil.Count(len(rec.Seq)), o.InputFile)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	eng := engine.New(engine.Config{
		NumChars: o.NumChars,
		Alphabet: complement.ByName(o.SeqType),
	})

	var bar *cmdutil.Progress
	rep, err := pipeline.Run(ctx, pipeline.Config{
		Threads: thr,
		OnStart: func(n int) {
			cmdutil.Infof(stderr, o.Verbose, "%s distinct windows of length %d (%s threads)",
				cmdutil.Count(n), o.NumChars, cmdutil.Count(thr))
			bar = cmdutil.StartProgress(stderr, o.Progress, n)
		},
		OnWindow: func() { bar.Tick() },
	}, eng, rec.Seq)
	bar.Finish()
	if err != nil {
		return fail(stderr, err, ExitIO)
	}

	stats := rep.Stats()
	if o.MatchedOnly {
		rep = rep.MatchedOnly()
	}

	n, err := writers.Commit(o.OutputFile, stdout, func(w io.Writer) error {
		return writers.Write(o.Format, w, writers.Payload{
			Report:     rep,
			SequenceID: rec.ID,
			Header:     o.Header,
		})
	})
	if writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		return fail(stderr, err, ExitIO)
	}

	cmdutil.Infof(stderr, o.Verbose, "%s windows, %s complements, %s matches in %s subsequences; wrote %s in %s",
		cmdutil.Count(stats.Windows), cmdutil.Count(stats.Complements), cmdutil.Count(stats.Matches),
		cmdutil.Count(stats.Matched), cmdutil.Size(n), cmdutil.Since(began))

	if stats.Matches == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

// fail prints err and maps it to an exit code. Domain input errors are
// usage errors; cancellation is 130; anything else gets def.
func fail(stderr io.Writer, err error, def int) int {
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)

	var use *complement.UnknownSymbolError
	var ipe *engine.InvalidParameterError
	switch {
	case errors.As(err, &use), errors.As(err, &ipe):
		return ExitUsage
	}
	return def
}
