// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"complseq-core/engine"
)

// Analyzer is the slice of *engine.Engine the pipeline needs.
type Analyzer interface {
	Windows(seq string) (string, []engine.Window, error)
	Analyze(seq string, w engine.Window) (engine.Entry, error)
	Assemble(seq string, entries []engine.Entry) *engine.Report
}

// Config controls the analysis fan-out.
type Config struct {
	Threads int // worker goroutines; <= 1 runs inline

	// OnStart is called once with the number of distinct windows.
	OnStart func(distinct int)
	// OnWindow is called after each window is analyzed; may run concurrently.
	OnWindow func()
}

// Run analyzes every distinct window of seq and assembles the report.
// The first error (or ctx cancellation) aborts the run and no report is returned.
func Run(ctx context.Context, cfg Config, eng Analyzer, seq string) (*engine.Report, error) {
	seq, windows, err := eng.Windows(seq)
	if err != nil {
		return nil, err
	}
	if cfg.OnStart != nil {
		cfg.OnStart(len(windows))
	}
	tick := cfg.OnWindow
	if tick == nil {
		tick = func() {}
	}

	entries := make([]engine.Entry, len(windows))
	if cfg.Threads <= 1 {
		for i, w := range windows {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if entries[i], err = eng.Analyze(seq, w); err != nil {
				return nil, err
			}
			tick()
		}
		return eng.Assemble(seq, entries), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)
	for i := range windows {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ent, err := eng.Analyze(seq, windows[i])
			if err != nil {
				return err
			}
			entries[i] = ent
			tick()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return eng.Assemble(seq, entries), nil
}
