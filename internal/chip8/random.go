package chip8

import (
	"math/rand/v2"
	"time"
)

// RandomSource produces the uniformly distributed bytes used by the CXNN instruction.
type RandomSource interface {
	RandomByte() byte
}

type mathRandom struct {
	rnd *rand.Rand
}

// NewRandomSource returns a pseudo random source. A seed of 0 seeds from
// the current time, any other seed produces a repeatable sequence.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRandom{rnd: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

func (r *mathRandom) RandomByte() byte {
	return byte(r.rnd.IntN(256))
}

// FixedRandom is a RandomSource returning its bytes in order, repeating
// the sequence when exhausted. An empty FixedRandom always returns 0.
type FixedRandom struct {
	Bytes []byte
	pos   int
}

func (f *FixedRandom) RandomByte() byte {
	if len(f.Bytes) == 0 {
		return 0
	}
	b := f.Bytes[f.pos%len(f.Bytes)]
	f.pos++
	return b
}
