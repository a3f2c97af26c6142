package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func testOptions(input string) options.Program {
	opts := options.NewProgram()
	opts.Input = input
	opts.Frontend = options.FrontendHeadless
	opts.Frames = 2
	opts.Quiet = true
	return opts
}

func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	// 0x200: 6005 V0 = 5
	// 0x202: 7003 V0 += 3
	// 0x204: 1204 loop
	tmpFile := createTempFile(t, "add.ch8", []byte{0x60, 0x05, 0x70, 0x03, 0x12, 0x04})

	t.Run("execute pipeline successfully", func(t *testing.T) {
		opts := testOptions(tmpFile)
		fe := &frontend.Headless{Frames: 1}

		program, err := os.ReadFile(tmpFile)
		assert.NoError(t, err)
		machine, err := p.ExecuteWithProgram(context.Background(), program, opts, fe)
		assert.NoError(t, err)
		assert.Equal(t, uint8(8), machine.State().V[0])
		assert.Equal(t, uint16(0x204), machine.State().PC)
	})

	t.Run("execute with headless frontend from options", func(t *testing.T) {
		opts := testOptions(tmpFile)
		opts.Frames = 1

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		machine, err := p.Execute(ctx, opts)
		assert.NoError(t, err)
		assert.Equal(t, uint8(8), machine.State().V[0])
	})

	t.Run("missing file", func(t *testing.T) {
		opts := testOptions(filepath.Join(t.TempDir(), "missing.ch8"))

		_, err := p.Execute(context.Background(), opts)
		assert.ErrorContains(t, err, "loading program")
	})

	t.Run("unsupported profile", func(t *testing.T) {
		opts := testOptions(tmpFile)
		opts.Profile = "xochip"

		_, err := p.Execute(context.Background(), opts)
		assert.ErrorContains(t, err, "unsupported quirk profile")
	})
}

func TestExecuteWithProgramQuirks(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	// 0x200: 6105 V1 = 5
	// 0x202: 6302 V3 = 2
	// 0x204: 8136 V1 = V3 >> 1 or V1 >> 1
	// 0x206: 1206 loop
	program := []byte{0x61, 0x05, 0x63, 0x02, 0x81, 0x36, 0x12, 0x06}

	tests := []struct {
		name    string
		input   string
		profile string
		want    uint8
	}{
		{name: "chip8 shifts VY", input: "game.ch8", want: 1},
		{name: "schip shifts VX", input: "game.sc8", want: 2},
		{name: "explicit profile wins over extension", input: "game.sc8", profile: "chip8", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(tt.input)
			opts.Profile = tt.profile

			machine, err := p.ExecuteWithProgram(context.Background(), program, opts, &frontend.Headless{Frames: 1})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, machine.State().V[1])
		})
	}
}

func TestExecuteWithProgramErrors(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	t.Run("program too large", func(t *testing.T) {
		program := make([]byte, chip8.MaxProgramSize+1)
		_, err := p.ExecuteWithProgram(context.Background(), program, testOptions("game.ch8"), &frontend.Headless{})
		assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
	})

	t.Run("fatal machine error", func(t *testing.T) {
		// the failure state is logged at error level, which fails a test logger
		p := New(config.CreateLogger(false, true))

		// 0x200: 00EE return with empty stack
		machine, err := p.ExecuteWithProgram(context.Background(), []byte{0x00, 0xEE},
			testOptions("game.ch8"), &frontend.Headless{Frames: 1})
		assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
		assert.NotNil(t, machine)
		assert.Equal(t, uint16(0x200), machine.State().PC)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.ExecuteWithProgram(ctx, []byte{0x12, 0x00}, testOptions("game.ch8"), &frontend.Headless{})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestExecuteWithProgramOutput(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	// 0x200: 00E0 clear
	// 0x202: 6A0F VA = F
	// 0x204: FA29 I = glyph of VA
	// 0x206: D005 draw 5 rows at V0,V0
	// 0x208: 1208 loop
	program := []byte{0x00, 0xE0, 0x6A, 0x0F, 0xFA, 0x29, 0xD0, 0x05, 0x12, 0x08}

	var out bytes.Buffer
	_, err := p.ExecuteWithProgram(context.Background(), program, testOptions("font.ch8"),
		&frontend.Headless{Frames: 1, Output: &out})
	assert.NoError(t, err)

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "####", lines[0][:4])
	assert.Equal(t, "#...", lines[1][:4])
	assert.Equal(t, "####", lines[2][:4])
	assert.Equal(t, "#...", lines[3][:4])
	assert.Equal(t, "#...", lines[4][:4])
	assert.Equal(t, "....", lines[5][:4])
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}
