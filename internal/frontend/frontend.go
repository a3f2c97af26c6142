// Package frontend connects a machine to a display, a keyboard and a speaker
// and drives it at the fixed frame rate.
package frontend

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the number of frames per second, the timers decrement once per frame.
const FrameRate = 60

// FrameInterval is the duration of a single frame.
const FrameInterval = time.Second / FrameRate

// Session contains the machine and its keypad port that a frontend drives.
type Session struct {
	Logger  *log.Logger
	Machine *chip8.Machine
	// Keypad is the input port the machine was created with.
	Keypad               *chip8.Keypad
	InstructionsPerFrame uint32
}

// Frontend runs a session until the context is cancelled, the user quits
// or the machine reports a fatal error.
type Frontend interface {
	Run(ctx context.Context, session Session) error
}

// New returns the frontend with the given name.
func New(name string, opts options.Program) (Frontend, error) {
	switch strings.ToLower(name) {
	case options.FrontendWindow:
		return newWindow(opts.Scale), nil
	case options.FrontendTerminal:
		return &Terminal{}, nil
	case options.FrontendHeadless:
		h := &Headless{
			Frames:   opts.Frames,
			Interval: FrameInterval,
		}
		if !opts.Quiet {
			h.Output = os.Stdout
		}
		return h, nil
	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", name)
	}
}

// step runs one frame of the machine and discards the key releases that
// the frame did not consume.
func (s Session) step() error {
	err := s.Machine.Step(s.InstructionsPerFrame)
	s.Keypad.EndFrame()
	if err != nil {
		return fmt.Errorf("running frame: %w", err)
	}
	return nil
}
