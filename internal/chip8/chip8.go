package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Config contains the dependencies and settings of a machine.
type Config struct {
	Quirks Quirks

	// Input is the keypad port, nil means no key is ever pressed.
	Input Input
	// Random is the source for CXNN, nil uses a time seeded source.
	Random RandomSource

	// StackDepth is the maximum call depth, 0 uses DefaultStackDepth.
	StackDepth int
	// Trace logs every executed instruction at debug level.
	Trace bool
}

// Machine is the CHIP-8 execution engine. It owns the memory, registers
// and framebuffer and is advanced one frame at a time by Step.
// A Machine is not safe for concurrent use.
type Machine struct {
	logger *log.Logger

	quirks     Quirks
	input      Input
	random     RandomSource
	stackDepth int
	trace      bool

	memory  *Memory
	state   State
	display Display
	program []byte
	running bool
}

// New returns a machine with the font loaded and the program counter at
// ProgramStart.
func New(logger *log.Logger, cfg Config) *Machine {
	m := &Machine{
		logger:     logger,
		quirks:     cfg.Quirks,
		input:      cfg.Input,
		random:     cfg.Random,
		stackDepth: cfg.StackDepth,
		trace:      cfg.Trace,
	}
	if m.input == nil {
		m.input = NewKeypad()
	}
	if m.random == nil {
		m.random = NewRandomSource(0)
	}
	if m.stackDepth <= 0 {
		m.stackDepth = DefaultStackDepth
	}
	m.reset()
	return m
}

// LoadProgram writes the program to memory starting at ProgramStart.
// A program that does not fit is rejected without modifying memory.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes",
			ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	m.program = append(m.program[:0], program...)
	clear(m.memory[ProgramStart:])
	copy(m.memory[ProgramStart:], m.program)

	m.logger.Debug("Program loaded", log.Int("size", len(program)))
	return nil
}

// Reset restores the state after creation and reloads the last loaded program.
func (m *Machine) Reset() {
	m.reset()
	copy(m.memory[ProgramStart:], m.program)
	m.logger.Debug("Machine reset")
}

func (m *Machine) reset() {
	m.memory = newMemory()
	m.state = newState(m.stackDepth)
	m.display = Display{}
	m.running = true
}

// Step executes up to instructionsPerFrame instructions and then ticks
// both timers once. Execution stops early while the machine waits for a
// key. A fatal error stops execution immediately, the timers are not
// ticked and the state reflects the machine before the failed instruction.
func (m *Machine) Step(instructionsPerFrame uint32) error {
	if m.state.waitingKey {
		m.resolveKeyWait()
	} else {
		for range instructionsPerFrame {
			if err := m.cycle(); err != nil {
				return err
			}
			if m.state.waitingKey {
				break
			}
		}
	}

	m.state.tickTimers()
	return nil
}

// cycle fetches, decodes and executes a single instruction.
func (m *Machine) cycle() error {
	pc := m.state.PC
	word, err := m.memory.ReadWord(pc)
	if err != nil {
		return fmt.Errorf("fetching opcode at 0x%04X: %w", pc, err)
	}
	op := Decode(word)

	if m.trace {
		m.logger.Debug("Executing",
			log.Hex("pc", pc),
			log.Hex("opcode", word),
			log.String("instruction", op.Name()))
	}

	// handlers validate before mutating, a failed instruction leaves no trace
	if err := m.execute(op); err != nil {
		return fmt.Errorf("executing opcode %04X at 0x%04X: %w", word, pc, err)
	}

	if !m.state.didJump && !m.state.waitingKey {
		m.state.advance()
	}
	m.state.didJump = false
	return nil
}

// resolveKeyWait polls the input once for a released key. On a release
// the key is written to the waiting register and the program counter
// moves past the wait instruction, execution continues with the next Step.
func (m *Machine) resolveKeyWait() {
	key, ok := m.input.KeyReleased()
	if !ok {
		return
	}

	register := m.state.waitRegister
	m.state.V[register] = uint8(key)
	m.state.waitingKey = false
	m.state.advance()

	m.logger.Debug("Key wait resolved",
		log.Uint8("key", uint8(key)),
		log.Uint8("register", register))
}

// SoundActive returns whether the sound timer is running and a tone should play.
func (m *Machine) SoundActive() bool {
	return m.state.SoundTimer > 0
}

// State returns a copy of the machine state.
func (m *Machine) State() State {
	return m.state.clone()
}

// Memory returns the machine memory.
func (m *Machine) Memory() *Memory {
	return m.memory
}

// Display returns the framebuffer.
func (m *Machine) Display() *Display {
	return &m.display
}

// Frame returns a snapshot of the framebuffer and whether it changed since
// the last call. The dirty flag is reset.
func (m *Machine) Frame() (Frame, bool) {
	dirty := m.display.Dirty()
	m.display.MarkClean()
	return m.display.Frame(), dirty
}

// Quirks returns the quirk configuration of the machine.
func (m *Machine) Quirks() Quirks {
	return m.quirks
}

// WaitingForKey returns whether execution is suspended until a key is released.
func (m *Machine) WaitingForKey() bool {
	return m.state.waitingKey
}

// Running returns false after Stop has been called.
func (m *Machine) Running() bool {
	return m.running
}

// Stop marks the machine as stopped, drivers stop calling Step afterwards.
func (m *Machine) Stop() {
	m.running = false
}
