package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestQuirksForProfile(t *testing.T) {
	tests := []struct {
		name     string
		profile  string
		expected Quirks
		wantErr  bool
	}{
		{"chip8", "chip8", CHIP8Quirks(), false},
		{"default", "", CHIP8Quirks(), false},
		{"case insensitive", "SCHIP", SCHIPQuirks(), false},
		{"schip", "schip", SCHIPQuirks(), false},
		{"unknown", "xochip", Quirks{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quirks, err := QuirksForProfile(tt.profile)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported quirk profile")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, quirks)
		})
	}
}

func TestQuirksString(t *testing.T) {
	assert.Equal(t, "shift=vy jump=v0 increment-index=true", CHIP8Quirks().String())
	assert.Equal(t, "shift=vx jump=vx increment-index=false", SCHIPQuirks().String())
}
