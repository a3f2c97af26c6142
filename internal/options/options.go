// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Default option values.
const (
	DefaultInstructionsPerFrame = 10
	DefaultScale                = 12
)

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to execute
}

// Flags contains behavior options.
type Flags struct {
	Profile              string // quirk profile: chip8, schip (default: auto-detect)
	Frontend             string // window, terminal, headless
	InstructionsPerFrame uint   // instructions executed per 1/60 second frame
	Frames               uint   // frame limit for the headless frontend, 0 runs until cancelled
	Seed                 int64  // random seed, 0 seeds from the current time
	StackDepth           int    // maximum call depth
	Scale                int    // window scale factor
	Debug                bool   // enable debug logging
	Trace                bool   // log every executed instruction
	Quiet                bool   // quiet mode
}

// QuirkOverrides contains quirk settings that replace the profile
// defaults. A nil field keeps the profile value.
type QuirkOverrides struct {
	ShiftUsesVY           *bool
	JumpUsesVX            *bool
	IncrementIndexOnStore *bool
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	QuirkOverrides
}

// NewProgram returns program options with default values.
func NewProgram() Program {
	return Program{
		Flags: Flags{
			Frontend:             FrontendWindow,
			InstructionsPerFrame: DefaultInstructionsPerFrame,
			Scale:                DefaultScale,
		},
	}
}
