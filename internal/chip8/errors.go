package chip8

import "errors"

var (
	// ErrStackUnderflow is returned when a return instruction executes with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrStackOverflow is returned when a call exceeds the configured maximum call depth.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrAddressOutOfRange is returned when an instruction addresses memory outside of 0x000-0xFFF.
	ErrAddressOutOfRange = errors.New("address out of range")

	// ErrProgramTooLarge is returned when a program does not fit into the program space.
	ErrProgramTooLarge = errors.New("program too large")
)
