//go:build !headless

package frontend

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

// windowKeys maps each logical key to the physical key of keyLayout.
var windowKeys = [chip8.KeyCount]ebiten.Key{
	ebiten.KeyX, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyA,
	ebiten.KeyS, ebiten.KeyD, ebiten.KeyZ, ebiten.KeyC,
	ebiten.KeyDigit4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

// window renders the display in a desktop window and plays the tone
// through the audio device.
//
// Esc quits, P pauses and F5 restarts the program.
type window struct {
	scale int

	ctx     context.Context
	session Session
	sound   *beeper

	image  *ebiten.Image
	pixels []byte
	paused bool
}

func newWindow(scale int) *window {
	return &window{scale: scale}
}

// Run implements Frontend.
func (w *window) Run(ctx context.Context, s Session) error {
	w.ctx = ctx
	w.session = s
	w.pixels = make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4)

	sound, err := newBeeper()
	if err != nil {
		s.Logger.Warn("Sound disabled", log.Err(err))
	}
	w.sound = sound
	defer w.sound.Close()

	ebiten.SetWindowSize(chip8.DisplayWidth*w.scale, chip8.DisplayHeight*w.scale)
	ebiten.SetWindowTitle("retrochip8")
	ebiten.SetTPS(FrameRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return w.ctx.Err()
}

// Update runs one frame of the machine.
func (w *window) Update() error {
	if w.ctx.Err() != nil || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	machine := w.session.Machine
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		machine.Stop()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		w.paused = !w.paused
		w.session.Logger.Info("Pause toggled", log.String("state", machine.State().String()))
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		machine.Reset()
		w.session.Logger.Info("Program restarted")
	}

	if w.paused {
		w.sound.SetActive(false)
		return nil
	}

	for key, physical := range windowKeys {
		w.session.Keypad.Set(chip8.Key(key), ebiten.IsKeyPressed(physical))
	}

	if err := w.session.step(); err != nil {
		return err
	}
	w.sound.SetActive(machine.SoundActive())

	if !machine.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the display, the image is only updated when the machine
// has drawn since the last frame.
func (w *window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
		frame := w.session.Machine.Display().Frame()
		writeRGBA(frame, w.pixels)
		w.image.WritePixels(w.pixels)
	}
	if frame, dirty := w.session.Machine.Frame(); dirty {
		writeRGBA(frame, w.pixels)
		w.image.WritePixels(w.pixels)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.image, op)

	face := basicfont.Face7x13
	switch {
	case w.paused:
		text.Draw(screen, "PAUSED", face, 8, 16, colorOn)
	case w.session.Machine.WaitingForKey():
		text.Draw(screen, "PRESS A KEY", face, 8, 16, colorOn)
	}
}

// Layout implements ebiten.Game.
func (w *window) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth * w.scale, chip8.DisplayHeight * w.scale
}
