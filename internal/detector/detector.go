// Package detector handles quirk profile detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles quirk profile detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new profile detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the quirks to run the program with.
// It first checks if a profile is explicitly specified in options, otherwise
// attempts to detect the profile from the input filename extension.
// Quirk overrides of the options are applied on top of the profile.
func (d *Detector) Detect(opts options.Program) (chip8.Quirks, string, error) {
	profile := opts.Profile
	if profile == "" {
		profile = d.detectFromFile(opts.Input)
		d.logger.Debug("Auto-detected quirk profile",
			log.String("profile", profile),
			log.String("file", opts.Input))
	}

	quirks, err := chip8.QuirksForProfile(profile)
	if err != nil {
		return chip8.Quirks{}, "", fmt.Errorf("detecting quirks: %w", err)
	}

	if opts.ShiftUsesVY != nil {
		quirks.ShiftUsesVY = *opts.ShiftUsesVY
	}
	if opts.JumpUsesVX != nil {
		quirks.JumpUsesVX = *opts.JumpUsesVX
	}
	if opts.IncrementIndexOnStore != nil {
		quirks.IncrementIndexOnStore = *opts.IncrementIndexOnStore
	}

	return quirks, strings.ToLower(profile), nil
}

// detectFromFile determines the quirk profile based on file extension.
func (d *Detector) detectFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".sc8", ".schip":
		return chip8.ProfileSCHIP
	default:
		// .ch8, .rom and unknown extensions run with the original interpreter behavior
		return chip8.ProfileCHIP8
	}
}
