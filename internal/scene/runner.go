package scene

import (
	"context"
	"fmt"
	"io"
	"time"

	"spinwire/internal/raster"
)

// Runner is the plain-terminal driver. It owns the screen buffer and runs a
// strictly sequential loop: render, write, sleep, advance.
type Runner struct {
	Scene  *Scene
	Delay  time.Duration
	Frames int // stop after this many frames; 0 runs until ctx is done

	buf      *raster.ScreenBuffer
	rendered int
}

// NewRunner creates a runner with its own w×h buffer.
func NewRunner(s *Scene, w, h int, delay time.Duration, frames int) *Runner {
	return &Runner{Scene: s, Delay: delay, Frames: frames, buf: raster.NewScreenBuffer(w, h)}
}

// Buffer exposes the last rendered frame.
func (r *Runner) Buffer() *raster.ScreenBuffer { return r.buf }

// Rendered is the number of frames written so far.
func (r *Runner) Rendered() int { return r.rendered }

// Run draws frames to w until ctx is cancelled or the frame limit is hit.
// Cancellation is a normal stop and returns nil.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	timer := time.NewTimer(r.Delay)
	defer timer.Stop()
	for {
		if ctx.Err() != nil {
			return nil
		}
		r.Scene.Render(r.buf)
		if _, err := r.buf.WriteTo(w); err != nil {
			return fmt.Errorf("scene: write frame %d: %w", r.rendered, err)
		}
		r.rendered++
		if r.Frames > 0 && r.rendered >= r.Frames {
			return nil
		}
		timer.Reset(r.Delay)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		r.Scene.Advance()
	}
}
