// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineConfig builds the machine configuration from the program options,
// the detected quirks and the keypad port of the frontend.
func MachineConfig(opts options.Program, quirks chip8.Quirks, input chip8.Input) chip8.Config {
	return chip8.Config{
		Quirks:     quirks,
		Input:      input,
		Random:     chip8.NewRandomSource(opts.Seed),
		StackDepth: opts.StackDepth,
		Trace:      opts.Trace && opts.Debug,
	}
}
