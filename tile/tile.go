/*
Package tile implements an atlas of square tiles decoded from raw pixel data.

Tiles are stored back to back with no header. Each tile is side by side
pixels, rows top to bottom and each row left to right, with every pixel packed
as four bytes in blue, green, red, padding order. A trailing chunk too short
to hold a whole tile is ignored.
*/
package tile

const (
	bytesPerPixel = 4

	// DefaultSide is the side length of background tiles.
	DefaultSide = 8
	// SpriteSide is the side length of sprite sheet tiles.
	SpriteSide = 32

	lettersLen = 26
	digitsLen  = 10
)
