package tile

import (
	"errors"
)

var errBadSide = errors.New("tile: side must be positive")

// Tile is an immutable square block of pixels.
type Tile struct {
	side int
	pix  []RGB
}

// Side returns the side length of the tile in pixels.
func (t *Tile) Side() int {
	return t.side
}

// At returns the pixel at (x, y) within the tile. It reports false if the
// coordinate lies outside the tile.
func (t *Tile) At(x, y int) (RGB, bool) {
	if x < 0 || y < 0 || x >= t.side || y >= t.side {
		return RGB{}, false
	}
	return t.pix[y*t.side+x], true
}

// Atlas is an ordered set of tiles indexed by tile id.
type Atlas struct {
	side    int
	tiles   []Tile
	dropped int
	glyphs  GlyphLayout
}

func decodeTile(b []byte, side int) Tile {
	t := Tile{
		side: side,
		pix:  make([]RGB, side*side),
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			i := (y*side + x) * bytesPerPixel
			// Stored as B, G, R, padding
			t.pix[y*side+x] = RGB{b[i+2], b[i+1], b[i]}
		}
	}
	return t
}

// NewAtlas partitions raw into consecutive tiles of side by side pixels.
// Trailing bytes that do not fill a whole tile are dropped.
func NewAtlas(raw []byte, side int) (*Atlas, error) {
	if side <= 0 {
		return nil, errBadSide
	}

	size := side * side * bytesPerPixel
	n := len(raw) / size

	a := &Atlas{
		side:    side,
		tiles:   make([]Tile, n),
		dropped: len(raw) % size,
		glyphs:  DefaultGlyphLayout(),
	}
	for i := range a.tiles {
		a.tiles[i] = decodeTile(raw[i*size:(i+1)*size], side)
	}

	return a, nil
}

// Len returns the number of tiles in the atlas.
func (a *Atlas) Len() int {
	return len(a.tiles)
}

// Side returns the side length of every tile in the atlas.
func (a *Atlas) Side() int {
	return a.side
}

// Dropped returns the number of trailing bytes that did not form a tile.
func (a *Atlas) Dropped() int {
	return a.dropped
}

// Tile returns the tile with the given id, reporting false if there is no
// such tile.
func (a *Atlas) Tile(id int) (*Tile, bool) {
	if id < 0 || id >= len(a.tiles) {
		return nil, false
	}
	return &a.tiles[id], true
}

// Pixel returns pixel (x, y) of tile id.
func (a *Atlas) Pixel(id, x, y int) (RGB, bool) {
	t, ok := a.Tile(id)
	if !ok {
		return RGB{}, false
	}
	return t.At(x, y)
}
