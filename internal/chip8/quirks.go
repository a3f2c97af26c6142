package chip8

import (
	"fmt"
	"strings"
)

// Quirk profile names.
const (
	ProfileCHIP8 = "chip8"
	ProfileSCHIP = "schip"
)

// Quirks selects between historically divergent behaviors of the
// instruction set. A Quirks value is fixed for the lifetime of a machine.
type Quirks struct {
	// ShiftUsesVY makes 8XY6 and 8XYE shift VY into VX instead of shifting VX in place.
	ShiftUsesVY bool
	// JumpUsesVX makes BNNN jump to NNN+VX, where X is the top nibble of
	// NNN, instead of NNN+V0.
	JumpUsesVX bool
	// IncrementIndexOnStore makes FX55 advance I by X+1 after storing.
	IncrementIndexOnStore bool
}

// CHIP8Quirks returns the behavior of the original COSMAC VIP interpreter.
func CHIP8Quirks() Quirks {
	return Quirks{
		ShiftUsesVY:           true,
		JumpUsesVX:            false,
		IncrementIndexOnStore: true,
	}
}

// SCHIPQuirks returns the behavior of the SUPER-CHIP interpreters.
func SCHIPQuirks() Quirks {
	return Quirks{
		ShiftUsesVY:           false,
		JumpUsesVX:            true,
		IncrementIndexOnStore: false,
	}
}

// QuirksForProfile returns the quirks of the named profile.
func QuirksForProfile(profile string) (Quirks, error) {
	switch strings.ToLower(profile) {
	case ProfileCHIP8, "":
		return CHIP8Quirks(), nil
	case ProfileSCHIP:
		return SCHIPQuirks(), nil
	default:
		return Quirks{}, fmt.Errorf("unsupported quirk profile: %s. Valid options: %s, %s",
			profile, ProfileCHIP8, ProfileSCHIP)
	}
}

func (q Quirks) String() string {
	shift := "vx"
	if q.ShiftUsesVY {
		shift = "vy"
	}
	jump := "v0"
	if q.JumpUsesVX {
		jump = "vx"
	}
	return fmt.Sprintf("shift=%s jump=%s increment-index=%t", shift, jump, q.IncrementIndexOnStore)
}
