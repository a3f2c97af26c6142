package frontend

import (
	"encoding/binary"
	"math"
)

// Tone parameters of the beeper.
const (
	toneSampleRate = 44100
	toneFrequency  = 440
	toneVolume     = 0.05
)

// squareWave is an endless mono square wave encoded as little endian
// float32 samples.
type squareWave struct {
	sampleRate int
	frequency  int
	volume     float32
	position   int // sample index within the current period
}

func newSquareWave() *squareWave {
	return &squareWave{
		sampleRate: toneSampleRate,
		frequency:  toneFrequency,
		volume:     toneVolume,
	}
}

// Read implements io.Reader. Only complete samples are written.
func (w *squareWave) Read(p []byte) (int, error) {
	period := w.sampleRate / w.frequency
	n := len(p) / 4 * 4
	for i := 0; i < n; i += 4 {
		sample := w.volume
		if w.position >= period/2 {
			sample = -w.volume
		}
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(sample))

		w.position++
		if w.position >= period {
			w.position = 0
		}
	}
	return n, nil
}
