// internal/cmdutil/progress.go
package cmdutil

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Progress is a stderr progress bar over a known number of units.
// A nil *Progress is valid and does nothing.
type Progress struct {
	bar *pb.ProgressBar
}

// StartProgress returns nil unless enabled and total > 0.
func StartProgress(dst io.Writer, enabled bool, total int) *Progress {
	if !enabled || total <= 0 {
		return nil
	}
	bar := pb.Full.New(total)
	bar.SetWriter(dst)
	bar.Set(pb.CleanOnFinish, true)
	bar.Start()
	return &Progress{bar: bar}
}

// Tick advances by one unit; safe for concurrent use.
func (p *Progress) Tick() {
	if p == nil {
		return
	}
	p.bar.Increment()
}

func (p *Progress) Finish() {
	if p == nil {
		return
	}
	p.bar.Finish()
}
