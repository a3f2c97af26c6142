//go:build !headless

package frontend

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// beeper plays the tone while the sound timer of the machine is active.
type beeper struct {
	ctx    *oto.Context
	player *oto.Player
	active bool
}

func newBeeper() (*beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   toneSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	return &beeper{
		ctx:    ctx,
		player: ctx.NewPlayer(newSquareWave()),
	}, nil
}

// SetActive starts or pauses the tone.
func (b *beeper) SetActive(active bool) {
	if b == nil || active == b.active {
		return
	}
	b.active = active
	if active {
		b.player.Play()
	} else {
		b.player.Pause()
	}
}

func (b *beeper) Close() {
	if b == nil {
		return
	}
	b.player.Close()
}
