// Package chip8 provides the CHIP-8 virtual machine execution engine.
//
// # Architecture Overview
//
// CHIP-8 is an interpreted programming language from the 1970s designed for
// simple games on the COSMAC VIP and similar microcomputers. The machine has:
//   - 4KB of byte addressable memory (0x000-0xFFF)
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag register
//   - a 16-bit index register I and a program counter
//   - a call stack of return addresses
//   - a delay timer and a sound timer, both counting down at 60Hz
//   - a 64x32 monochrome framebuffer
//
// # Memory Layout
//
// The built-in font glyphs are stored at FontBase, programs are loaded at
// ProgramStart and execution begins there.
//
// # Execution
//
// The engine is driven by an external frame loop. Each call to Step executes
// up to a given number of instructions and then decrements both timers once:
//
//	machine := chip8.New(logger, chip8.Config{
//		Quirks: chip8.CHIP8Quirks(),
//		Input:  keypad,
//	})
//	if err := machine.LoadProgram(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for machine.Running() {
//		if err := machine.Step(10); err != nil {
//			return err
//		}
//		if frame, dirty := machine.Frame(); dirty {
//			render(frame)
//		}
//	}
//
// The wait for key instruction does not block, it suspends instruction
// execution until the Input reports a released key in a later Step call.
//
// # Quirks
//
// Shift, jump with offset and register store instructions behave differently
// between historical interpreters. The behavior is selected by Quirks, which
// is fixed when the machine is created.
//
// # Errors
//
// Returning with an empty stack, exceeding the maximum call depth and
// addressing memory outside of the 4KB address space are fatal and returned
// by Step wrapped around ErrStackUnderflow, ErrStackOverflow and
// ErrAddressOutOfRange. Unknown opcodes are executed as no-ops.
package chip8
