package frontend

import (
	"image/color"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

var (
	colorOn  = color.RGBA{R: 0xe0, G: 0xf8, B: 0xd0, A: 0xff}
	colorOff = color.RGBA{R: 0x08, G: 0x18, B: 0x20, A: 0xff}
)

// writeRGBA converts the frame to RGBA pixels. The buffer has to hold
// 4 bytes for each pixel of the display.
func writeRGBA(frame chip8.Frame, pixels []byte) {
	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			c := colorOff
			if frame.Pixel(x, y) {
				c = colorOn
			}
			i := (y*chip8.DisplayWidth + x) * 4
			pixels[i] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			pixels[i+3] = c.A
		}
	}
}

// halfBlocks renders the frame with two pixel rows per text line, using
// the unicode half block characters. Lines are separated by CR LF so the
// output also renders correctly in raw terminal mode.
func halfBlocks(frame chip8.Frame) string {
	var sb strings.Builder
	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			top := frame.Pixel(x, y)
			bottom := frame.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
