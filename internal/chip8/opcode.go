package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Opcode is a decoded 16 bit CHIP-8 instruction word.
// Decoding has no side effects and never fails, unknown words decode
// like any other and are treated as no-ops by the execution engine.
type Opcode struct {
	word uint16
}

// Decode splits an instruction word into its fields.
func Decode(word uint16) Opcode {
	return Opcode{word: word}
}

// Word returns the raw instruction word.
func (o Opcode) Word() uint16 {
	return o.word
}

// Digit returns the leading nibble (bits 12-15) that selects the instruction group.
func (o Opcode) Digit() uint8 {
	return uint8(o.word >> 12)
}

// X returns the first register nibble (bits 8-11).
func (o Opcode) X() uint8 {
	return uint8((o.word & 0x0F00) >> 8)
}

// Y returns the second register nibble (bits 4-7).
func (o Opcode) Y() uint8 {
	return uint8((o.word & 0x00F0) >> 4)
}

// N returns the lowest nibble (bits 0-3).
func (o Opcode) N() uint8 {
	return uint8(o.word & 0x000F)
}

// NN returns the low byte (bits 0-7).
func (o Opcode) NN() uint8 {
	return uint8(o.word & 0x00FF)
}

// NNN returns the 12 bit address field (bits 0-11).
func (o Opcode) NNN() uint16 {
	return o.word & 0x0FFF
}

// Name returns the mnemonic of the instruction or an empty string if the
// word does not match any known instruction pattern.
func (o Opcode) Name() string {
	ins := o.instruction()
	if ins == nil {
		return ""
	}
	return ins.Name
}

// String returns the hex representation of the word with its mnemonic.
func (o Opcode) String() string {
	name := o.Name()
	if name == "" {
		return fmt.Sprintf("%04X", o.word)
	}
	return fmt.Sprintf("%04X (%s)", o.word, name)
}

// instruction looks up the instruction matching the word in the CHIP-8
// opcode table. The first table entry whose mask and value match wins.
func (o Opcode) instruction() *chip8.Instruction {
	opcodes := chip8.Opcodes[int(o.Digit())]
	for _, op := range opcodes {
		if op.Info.Mask&o.word == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}
