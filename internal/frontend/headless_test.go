package frontend

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestHeadlessRun(t *testing.T) {
	// 0x200: 6000 V0 = 0
	// 0x202: F029 I = glyph of V0
	// 0x204: D005 draw 5 rows at V0,V0
	// 0x206: 1206 loop
	s := newTestSession(t,
		0x60, 0x00,
		0xF0, 0x29,
		0xD0, 0x05,
		0x12, 0x06,
	)

	var out bytes.Buffer
	h := &Headless{Frames: 3, Output: &out}
	assert.NoError(t, h.Run(context.Background(), s))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "####....", lines[0][:8])
	assert.Equal(t, "#..#....", lines[1][:8])
	assert.Equal(t, "####....", lines[4][:8])
	assert.Equal(t, uint16(0x206), s.Machine.State().PC)
}

func TestHeadlessRunError(t *testing.T) {
	// 0x200: 00EE return with empty stack
	s := newTestSession(t, 0x00, 0xEE)

	h := &Headless{Frames: 10}
	err := h.Run(context.Background(), s)
	assert.ErrorContains(t, err, "stack underflow")
	assert.Equal(t, uint16(0x200), s.Machine.State().PC)
}

func TestHeadlessRunCancelled(t *testing.T) {
	s := newTestSession(t, 0x12, 0x00)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := &Headless{}
	err := h.Run(ctx, s)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestHeadlessRunStopped(t *testing.T) {
	s := newTestSession(t, 0x12, 0x00)
	s.Machine.Stop()

	h := &Headless{}
	assert.NoError(t, h.Run(context.Background(), s))
	assert.Equal(t, uint16(0x200), s.Machine.State().PC)
}
