package core

import "image/color"

// Color is an 8-bit per channel RGB triple
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	Red   = Color{255, 0, 0}
	Blue  = Color{0, 0, 255}
)

// RGBA converts the color to an opaque image/color value
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
