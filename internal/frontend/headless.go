package frontend

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Headless runs a session without display and input devices.
type Headless struct {
	// Frames limits the number of frames to run, 0 runs until the context
	// is cancelled or the machine stops.
	Frames uint
	// Interval paces the frames, 0 runs them back to back.
	Interval time.Duration
	// Output receives the final frame, nil discards it.
	Output io.Writer
}

// Run implements Frontend.
func (h *Headless) Run(ctx context.Context, s Session) error {
	var tick <-chan time.Time
	if h.Interval > 0 {
		ticker := time.NewTicker(h.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var frames uint
	for h.Frames == 0 || frames < h.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.Machine.Running() {
			break
		}

		if err := s.step(); err != nil {
			return err
		}
		frames++

		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
	}

	state := s.Machine.State()
	s.Logger.Info("Execution finished",
		log.Int("frames", int(frames)),
		log.String("state", state.String()))

	if h.Output != nil {
		frame, _ := s.Machine.Frame()
		if _, err := fmt.Fprint(h.Output, frame.String()); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
	}
	return nil
}
