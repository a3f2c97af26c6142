package frontend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// keyHoldFrames is the number of frames a key stays held after the
// terminal reported it. Terminals do not report key releases, a key
// repeat of the terminal extends the hold.
const keyHoldFrames = 6

// Control bytes read from the terminal in raw mode.
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// ANSI sequences used for rendering.
const (
	ansiClear      = "\x1b[2J"
	ansiHome       = "\x1b[H"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
	bell           = "\a"
)

// Terminal renders the display with unicode half blocks in the terminal
// and reads the keypad from the keyboard. Esc or Ctrl-C quits.
type Terminal struct {
	input  io.Reader
	output io.Writer
	fd     int

	held [chip8.KeyCount]int // remaining frames each key is held
}

// Run implements Frontend.
func (t *Terminal) Run(ctx context.Context, s Session) error {
	t.input = os.Stdin
	t.output = os.Stdout
	t.fd = int(os.Stdin.Fd())

	if !term.IsTerminal(t.fd) {
		return errors.New("terminal frontend requires stdin to be a terminal")
	}
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil &&
		(width < chip8.DisplayWidth || height < chip8.DisplayHeight/2) {
		s.Logger.Warn("Terminal is smaller than the display",
			log.Int("width", width), log.Int("height", height))
	}

	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("setting terminal raw mode: %w", err)
	}
	defer func() {
		_, _ = io.WriteString(t.output, ansiShowCursor)
		_ = term.Restore(t.fd, oldState)
	}()

	sound, err := newBeeper()
	if err != nil {
		s.Logger.Debug("Using terminal bell for sound", log.Err(err))
	}
	defer sound.Close()

	return t.loop(ctx, s, sound, t.readInput())
}

// readInput forwards chunks read from the terminal. The reader is blocked
// in a read when the frontend quits and ends with the process.
func (t *Terminal) readInput() <-chan []byte {
	ch := make(chan []byte, 16)
	go func() {
		defer close(ch)
		for {
			buf := make([]byte, 16)
			n, err := t.input.Read(buf)
			if n > 0 {
				ch <- buf[:n]
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

func (t *Terminal) loop(ctx context.Context, s Session, sound *beeper, input <-chan []byte) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	if _, err := io.WriteString(t.output, ansiClear+ansiHideCursor); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}

	redraw := true
	var sounding bool
	for s.Machine.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case chunk, ok := <-input:
			if !ok || t.handleInput(s, chunk) {
				s.Machine.Stop()
				return nil
			}
			continue

		case <-ticker.C:
		}

		t.releaseExpiredKeys(s.Keypad)
		if err := s.step(); err != nil {
			return err
		}

		active := s.Machine.SoundActive()
		if sound != nil {
			sound.SetActive(active)
		} else if active && !sounding {
			if _, err := io.WriteString(t.output, bell); err != nil {
				return fmt.Errorf("writing to terminal: %w", err)
			}
		}
		sounding = active

		frame, dirty := s.Machine.Frame()
		if dirty || redraw {
			if _, err := io.WriteString(t.output, ansiHome+halfBlocks(frame)); err != nil {
				return fmt.Errorf("writing to terminal: %w", err)
			}
			redraw = false
		}
	}
	return nil
}

// handleInput presses the keys of the chunk and returns whether the user
// requested to quit.
func (t *Terminal) handleInput(s Session, chunk []byte) bool {
	// a lone escape byte is the Esc key, longer chunks starting with it
	// are escape sequences of other keys
	if len(chunk) == 1 && chunk[0] == keyEscape {
		return true
	}
	if len(chunk) > 0 && chunk[0] == keyEscape {
		return false
	}

	for _, b := range chunk {
		if b == keyCtrlC {
			return true
		}
		key, ok := KeyForRune(rune(b))
		if !ok {
			continue
		}
		s.Keypad.Press(key)
		t.held[key] = keyHoldFrames
	}
	return false
}

// releaseExpiredKeys releases all keys whose hold time ran out.
func (t *Terminal) releaseExpiredKeys(keypad *chip8.Keypad) {
	for key, frames := range t.held {
		if frames == 0 {
			continue
		}
		frames--
		t.held[key] = frames
		if frames == 0 {
			keypad.Release(chip8.Key(key))
		}
	}
}
