// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the ROM of the options and runs it in the configured frontend.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (*chip8.Machine, error) {
	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	fe, err := frontend.New(opts.Frontend, opts)
	if err != nil {
		return nil, fmt.Errorf("creating frontend: %w", err)
	}

	return p.ExecuteWithProgram(ctx, program, opts, fe)
}

// ExecuteWithProgram runs an already loaded program in the given frontend.
// This is useful for testing and programmatic usage where the program is already in memory.
// The machine is returned also on error to allow inspecting its final state.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, program []byte, opts options.Program,
	fe frontend.Frontend) (*chip8.Machine, error) {

	quirks, profile, err := p.detector.Detect(opts)
	if err != nil {
		return nil, fmt.Errorf("detecting profile: %w", err)
	}

	keypad := chip8.NewKeypad()
	machine := chip8.New(p.logger, config.MachineConfig(opts, quirks, keypad))
	if err := machine.LoadProgram(program); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	p.printInfo(opts, profile, quirks, len(program))

	session := frontend.Session{
		Logger:               p.logger,
		Machine:              machine,
		Keypad:               keypad,
		InstructionsPerFrame: uint32(opts.InstructionsPerFrame),
	}

	if err := fe.Run(ctx, session); err != nil {
		if !errors.Is(err, context.Canceled) {
			p.logger.Error("Machine state at failure",
				log.String("state", machine.State().String()),
				log.Err(err))
		}
		return machine, fmt.Errorf("running program: %w", err)
	}
	return machine, nil
}

// printInfo prints information about the ROM being executed.
func (p *Pipeline) printInfo(opts options.Program, profile string, quirks chip8.Quirks, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Executing Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.String("profile", profile),
		log.Stringer("quirks", quirks),
		log.String("frontend", opts.Frontend),
	)
}
