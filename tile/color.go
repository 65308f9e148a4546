package tile

import "image/color"

// RGB is an opaque 24-bit color. It implements color.Color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

var (
	// Black is the fallback used where no tile covers a pixel.
	Black = RGB{}
	// White is the alternative fallback.
	White = RGB{0xff, 0xff, 0xff}
)
