package chip8

import "strings"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Frame is a snapshot of the framebuffer. Each row is a 64 bit mask,
// bit 63 is the leftmost column and a set bit is a lit pixel.
type Frame [DisplayHeight]uint64

// Pixel returns whether the pixel at column x and row y is lit.
// Coordinates wrap around the display size.
func (f Frame) Pixel(x, y int) bool {
	row := f[y&(DisplayHeight-1)]
	return row&(1<<(DisplayWidth-1-(x&(DisplayWidth-1)))) != 0
}

// String renders the frame as text, one line per row, '#' for lit pixels.
func (f Frame) String() string {
	var sb strings.Builder
	sb.Grow(DisplayHeight * (DisplayWidth + 1))
	for y := range DisplayHeight {
		for x := range DisplayWidth {
			if f.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display is the monochrome framebuffer. It is only changed by the clear
// and draw instructions, both mark it dirty until the renderer calls MarkClean.
type Display struct {
	rows  Frame
	dirty bool
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	d.rows = Frame{}
	d.dirty = true
}

// Draw XORs the sprite rows onto the framebuffer with the top left corner
// at column x and row y. The origin wraps around the display size, sprite
// rows past the bottom edge wrap to the top and sprite columns past the
// right edge are clipped. It returns whether any lit pixel was turned off.
func (d *Display) Draw(x, y uint8, sprite []byte) bool {
	column := uint(x) & (DisplayWidth - 1)
	origin := int(y) & (DisplayHeight - 1)

	d.dirty = true
	collision := false

	for i, data := range sprite {
		row := &d.rows[(origin+i)&(DisplayHeight-1)]
		mask := uint64(data) << (DisplayWidth - 8) >> column

		before := *row
		after := before ^ mask
		if before&^after != 0 {
			collision = true
		}
		*row = after
	}
	return collision
}

// Frame returns a copy of all framebuffer rows.
func (d *Display) Frame() Frame {
	return d.rows
}

// Row returns a single framebuffer row, the index wraps around the display height.
func (d *Display) Row(y int) uint64 {
	return d.rows[y&(DisplayHeight-1)]
}

// Dirty returns whether the framebuffer changed since the last MarkClean call.
func (d *Display) Dirty() bool {
	return d.dirty
}

// MarkClean resets the dirty flag after the frame has been rendered.
func (d *Display) MarkClean() {
	d.dirty = false
}
