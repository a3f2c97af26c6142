// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Names of the quirk override flags.
const (
	flagQuirkShift     = "quirk-shift-vy"
	flagQuirkJump      = "quirk-jump-vx"
	flagQuirkIncrement = "quirk-inc-index"
)

// ParseFlags parses the command line flags of the current process.
func ParseFlags() (options.Program, error) {
	return Parse(os.Args[0], os.Args[1:])
}

// Parse parses the given arguments and returns the program options.
func Parse(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	opts := options.NewProgram()
	quirks := readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	applyQuirkOverrides(flags, quirks, &opts)
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <file to execute>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after file to execute, please pass the file to execute as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Profile = strings.ToLower(opts.Profile)
	opts.Frontend = strings.ToLower(opts.Frontend)

	if opts.InstructionsPerFrame == 0 {
		return errors.New("instructions per frame must be at least 1")
	}
	if opts.StackDepth < 0 {
		return fmt.Errorf("invalid stack depth: %d", opts.StackDepth)
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	validFrontends := []string{options.FrontendWindow, options.FrontendTerminal, options.FrontendHeadless}
	for _, valid := range validFrontends {
		if opts.Frontend == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
		opts.Frontend, strings.Join(validFrontends, ", "))
}

// quirkFlags holds the values of the quirk override flags until parsing
// has determined which of them were passed explicitly.
type quirkFlags struct {
	shiftUsesVY    bool
	jumpUsesVX     bool
	incrementIndex bool
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) *quirkFlags {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Profile, "p", "", "quirk profile to emulate (chip8, schip) - if not auto-detected from file extension")
	flags.StringVar(&opts.Frontend, "f", opts.Frontend, "frontend to use (window, terminal, headless)")
	flags.UintVar(&opts.InstructionsPerFrame, "ipf", opts.InstructionsPerFrame, "instructions executed per 1/60 second frame")
	flags.UintVar(&opts.Frames, "frames", 0, "number of frames to run in headless mode, 0 runs until interrupted")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed for the random number generator, 0 uses the current time")
	flags.IntVar(&opts.StackDepth, "stack", 0, "maximum call stack depth, 0 uses the default of 16")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "window scale factor")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	quirks := &quirkFlags{}
	flags.BoolVar(&quirks.shiftUsesVY, flagQuirkShift, false, "override profile: shift instructions shift VY into VX")
	flags.BoolVar(&quirks.jumpUsesVX, flagQuirkJump, false, "override profile: BNNN jumps to NNN+VX instead of NNN+V0")
	flags.BoolVar(&quirks.incrementIndex, flagQuirkIncrement, false, "override profile: FX55 increments I")
	return quirks
}

// applyQuirkOverrides sets the overrides for all quirk flags that were
// passed on the command line.
func applyQuirkOverrides(flags *flag.FlagSet, quirks *quirkFlags, opts *options.Program) {
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case flagQuirkShift:
			opts.ShiftUsesVY = &quirks.shiftUsesVY
		case flagQuirkJump:
			opts.JumpUsesVX = &quirks.jumpUsesVX
		case flagQuirkIncrement:
			opts.IncrementIndexOnStore = &quirks.incrementIndex
		}
	})
}
