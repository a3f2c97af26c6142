package chip8

import "fmt"

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: unused interpreter area
//	0x050-0x09F: built-in hexadecimal font (16 glyphs, 5 bytes each)
//	0x200-0xFFF: program space
//
// The display buffer and the call stack are kept outside of the 4KB
// address space.
const (
	// MemorySize is the size of the CHIP-8 address space in bytes.
	MemorySize = 0x1000

	// ProgramStart is the memory address where programs are loaded and
	// where execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontBase is the memory address of the first font glyph.
	FontBase = 0x50

	// GlyphSize is the size of a single font glyph in bytes.
	GlyphSize = 5
)

var fontSet = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat byte addressable CHIP-8 memory.
// All accessors check the address range and never touch memory when
// any address of the requested block is out of range.
type Memory [MemorySize]byte

// newMemory returns a memory with the font glyphs written to FontBase.
func newMemory() *Memory {
	var m Memory
	copy(m[FontBase:], fontSet[:])
	return &m
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if err := checkRange(int(address), 1); err != nil {
		return 0, err
	}
	return m[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if err := checkRange(int(address), 1); err != nil {
		return err
	}
	m[address] = value
	return nil
}

// ReadWord returns the big-endian 16 bit word at the given address.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	if err := checkRange(int(address), 2); err != nil {
		return 0, err
	}
	return uint16(m[address])<<8 | uint16(m[address+1]), nil
}

// Slice returns the memory block of the given length starting at address.
// The returned slice aliases the memory.
func (m *Memory) Slice(address uint16, length int) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}
	if err := checkRange(int(address), length); err != nil {
		return nil, err
	}
	start := int(address)
	return m[start : start+length], nil
}

// checkRange verifies that the block [start, start+length) lies inside memory.
func checkRange(start, length int) error {
	if length == 0 {
		return nil
	}
	end := start + length - 1
	if start < 0 || end >= MemorySize {
		if length <= 1 {
			return fmt.Errorf("%w: address 0x%04X", ErrAddressOutOfRange, start)
		}
		return fmt.Errorf("%w: block 0x%04X-0x%04X", ErrAddressOutOfRange, start, end)
	}
	return nil
}
