package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// execute dispatches the opcode on its leading digit. Groups 0, 8, E and
// F dispatch a second time on their low nibble or low byte.
func (m *Machine) execute(op Opcode) error {
	switch op.Digit() {
	case 0x0:
		return m.executeSystem(op)
	case 0x1:
		m.jump(op.NNN())
	case 0x2:
		return m.call(op.NNN())
	case 0x3:
		m.skipIf(m.state.V[op.X()] == op.NN())
	case 0x4:
		m.skipIf(m.state.V[op.X()] != op.NN())
	case 0x5:
		if op.N() != 0 {
			m.unknown(op)
			return nil
		}
		m.skipIf(m.state.V[op.X()] == m.state.V[op.Y()])
	case 0x6:
		m.state.V[op.X()] = op.NN()
	case 0x7:
		m.state.V[op.X()] += op.NN()
	case 0x8:
		m.executeArithmetic(op)
	case 0x9:
		if op.N() != 0 {
			m.unknown(op)
			return nil
		}
		m.skipIf(m.state.V[op.X()] != m.state.V[op.Y()])
	case 0xA:
		m.state.I = op.NNN()
	case 0xB:
		m.jumpWithOffset(op)
	case 0xC:
		m.state.V[op.X()] = m.random.RandomByte() & op.NN()
	case 0xD:
		return m.draw(op)
	case 0xE:
		m.executeKey(op)
	case 0xF:
		return m.executeMisc(op)
	}
	return nil
}

func (m *Machine) executeSystem(op Opcode) error {
	switch op.Word() {
	case 0x00E0:
		m.display.Clear()
	case 0x00EE:
		return m.ret()
	default:
		// 0NNN calls machine code routines of the host CPU
		m.unknown(op)
	}
	return nil
}

// executeArithmetic handles the 8XYN register to register group. Both
// operands are read before anything is written and VF is always written
// last, so an instruction targeting VF ends with the flag in VF.
func (m *Machine) executeArithmetic(op Opcode) {
	x, y := op.X(), op.Y()
	vx, vy := m.state.V[x], m.state.V[y]

	var result, flag uint8
	switch op.N() {
	case 0x0:
		result = vy
	case 0x1:
		result = vx | vy
	case 0x2:
		result = vx & vy
	case 0x3:
		result = vx ^ vy
	case 0x4:
		sum := uint16(vx) + uint16(vy)
		result = uint8(sum)
		if sum > 0xFF {
			flag = 1
		}
	case 0x5:
		result = vx - vy
		if vx >= vy {
			flag = 1
		}
	case 0x6:
		operand := m.shiftOperand(vx, vy)
		result = operand >> 1
		flag = operand & 0x01
	case 0x7:
		result = vy - vx
		if vy >= vx {
			flag = 1
		}
	case 0xE:
		operand := m.shiftOperand(vx, vy)
		result = operand << 1
		flag = operand >> 7
	default:
		m.unknown(op)
		return
	}

	m.state.V[x] = result
	m.state.V[FlagRegister] = flag
}

func (m *Machine) shiftOperand(vx, vy uint8) uint8 {
	if m.quirks.ShiftUsesVY {
		return vy
	}
	return vx
}

func (m *Machine) executeKey(op Opcode) {
	key := Key(m.state.V[op.X()] & 0xF)

	switch op.NN() {
	case 0x9E:
		m.skipIf(m.input.KeyDown(key))
	case 0xA1:
		m.skipIf(!m.input.KeyDown(key))
	default:
		m.unknown(op)
	}
}

func (m *Machine) executeMisc(op Opcode) error {
	x := op.X()

	switch op.NN() {
	case 0x07:
		m.state.V[x] = m.state.DelayTimer
	case 0x0A:
		m.waitForKey(x)
	case 0x15:
		m.state.DelayTimer = m.state.V[x]
	case 0x18:
		m.state.SoundTimer = m.state.V[x]
	case 0x1E:
		m.state.I += uint16(m.state.V[x])
	case 0x29:
		m.state.I = FontBase + uint16(m.state.V[x])*GlyphSize
	case 0x33:
		return m.storeBCD(x)
	case 0x55:
		return m.storeRegisters(x)
	case 0x65:
		return m.loadRegisters(x)
	default:
		m.unknown(op)
	}
	return nil
}

func (m *Machine) jump(address uint16) {
	m.state.PC = address
	m.state.didJump = true
}

func (m *Machine) jumpWithOffset(op Opcode) {
	register := uint8(0)
	if m.quirks.JumpUsesVX {
		register = op.X()
	}
	m.jump(op.NNN() + uint16(m.state.V[register]))
}

func (m *Machine) call(address uint16) error {
	if len(m.state.Stack) >= m.stackDepth {
		return fmt.Errorf("%w: call depth limit of %d reached", ErrStackOverflow, m.stackDepth)
	}
	m.state.Stack = append(m.state.Stack, m.state.PC)
	m.jump(address)
	return nil
}

// ret pops the return address, the regular program counter advance then
// moves past the call instruction.
func (m *Machine) ret() error {
	depth := len(m.state.Stack)
	if depth == 0 {
		return ErrStackUnderflow
	}
	m.state.PC = m.state.Stack[depth-1]
	m.state.Stack = m.state.Stack[:depth-1]
	return nil
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.state.skip()
	}
}

func (m *Machine) draw(op Opcode) error {
	sprite, err := m.memory.Slice(m.state.I, int(op.N()))
	if err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}

	m.state.V[FlagRegister] = 0
	if m.display.Draw(m.state.V[op.X()], m.state.V[op.Y()], sprite) {
		m.state.V[FlagRegister] = 1
	}
	return nil
}

func (m *Machine) waitForKey(register uint8) {
	m.state.waitingKey = true
	m.state.waitRegister = register
	m.logger.Debug("Waiting for key", log.Uint8("register", register))
}

func (m *Machine) storeBCD(x uint8) error {
	digits, err := m.memory.Slice(m.state.I, 3)
	if err != nil {
		return fmt.Errorf("storing BCD: %w", err)
	}

	value := m.state.V[x]
	digits[0] = value / 100
	digits[1] = value / 10 % 10
	digits[2] = value % 10
	return nil
}

func (m *Machine) storeRegisters(x uint8) error {
	count := int(x) + 1
	block, err := m.memory.Slice(m.state.I, count)
	if err != nil {
		return fmt.Errorf("storing registers: %w", err)
	}

	copy(block, m.state.V[:count])
	if m.quirks.IncrementIndexOnStore {
		m.state.I += uint16(count)
	}
	return nil
}

func (m *Machine) loadRegisters(x uint8) error {
	count := int(x) + 1
	block, err := m.memory.Slice(m.state.I, count)
	if err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}

	copy(m.state.V[:count], block)
	return nil
}

func (m *Machine) unknown(op Opcode) {
	m.logger.Debug("Ignoring unknown opcode",
		log.Hex("pc", m.state.PC),
		log.Hex("opcode", op.Word()))
}
