package chip8

import (
	"fmt"
	"strings"
)

// FlagRegister is the index of VF, the register that arithmetic, shift
// and draw instructions use to report carry, borrow and collision.
const FlagRegister = 0xF

// DefaultStackDepth is the maximum call depth used when none is configured.
const DefaultStackDepth = 16

// State contains the registers and control flags of the machine.
type State struct {
	V          [16]uint8 // general purpose registers V0-VF
	I          uint16    // index register
	PC         uint16    // program counter
	Stack      []uint16  // return addresses, last element is the top
	DelayTimer uint8
	SoundTimer uint8

	didJump      bool
	waitingKey   bool
	waitRegister uint8
}

func newState(stackDepth int) State {
	return State{
		PC:    ProgramStart,
		Stack: make([]uint16, 0, stackDepth),
	}
}

// WaitingForKey returns whether execution is suspended by a wait for key
// instruction and the register that will receive the key.
func (s State) WaitingForKey() (uint8, bool) {
	return s.waitRegister, s.waitingKey
}

// clone returns a deep copy of the state.
func (s *State) clone() State {
	c := *s
	c.Stack = append([]uint16(nil), s.Stack...)
	return c
}

// advance moves the program counter to the next instruction.
func (s *State) advance() {
	s.PC += opcodeSize
}

// skip moves the program counter over the next instruction.
func (s *State) skip() {
	s.PC += opcodeSize
}

// tickTimers decrements both timers by one, stopping at zero.
func (s *State) tickTimers() {
	if s.DelayTimer > 0 {
		s.DelayTimer--
	}
	if s.SoundTimer > 0 {
		s.SoundTimer--
	}
}

func (s State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PC=%04X I=%04X DT=%02X ST=%02X", s.PC, s.I, s.DelayTimer, s.SoundTimer)
	for i, v := range s.V {
		fmt.Fprintf(&sb, " V%X=%02X", i, v)
	}
	sb.WriteString(" stack=[")
	for i, address := range s.Stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%04X", address)
	}
	sb.WriteByte(']')
	if s.waitingKey {
		fmt.Fprintf(&sb, " waiting=V%X", s.waitRegister)
	}
	return sb.String()
}
