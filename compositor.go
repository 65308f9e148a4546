package tilescroll

import (
	"fmt"

	"github.com/bodgit/tilescroll/tile"
	"github.com/bodgit/tilescroll/tilemap"
)

// Layer is one source of pixels in a composition.
type Layer interface {
	// Owns reports whether the layer claims pixel (x, y). Once claimed no
	// lower priority layer is consulted.
	Owns(x, y int) bool
	// ColorAt returns the color of pixel (x, y) at the given frame, or
	// false if the layer has no color for it.
	ColorAt(frame, x, y int) (tile.RGB, bool)
}

// Compositor resolves each pixel against its layers in priority order.
type Compositor struct {
	layers []Layer
}

// NewCompositor returns a compositor over layers, highest priority first.
func NewCompositor(layers ...Layer) *Compositor {
	return &Compositor{
		layers: layers,
	}
}

// ColorAt returns the color of pixel (x, y) at the given frame from the first
// layer that owns it. It reports false if no layer owns the pixel or the
// owning layer cannot color it; the caller picks a fallback.
func (c *Compositor) ColorAt(frame, x, y int) (tile.RGB, bool) {
	for _, l := range c.layers {
		if l.Owns(x, y) {
			return l.ColorAt(frame, x, y)
		}
	}
	return tile.RGB{}, false
}

// Overlay is a static grid of tiles drawn above everything else. Cells
// holding zero are transparent.
type Overlay struct {
	grid  *tilemap.Grid
	atlas *tile.Atlas
}

// NewOverlay returns an empty, fully transparent overlay.
func NewOverlay(rows, cols int, atlas *tile.Atlas) *Overlay {
	return &Overlay{
		grid:  tilemap.NewGrid(rows, cols),
		atlas: atlas,
	}
}

// Set stores id in the cell at the row-major index i.
func (o *Overlay) Set(i int, id uint16) bool {
	if i < 0 {
		return false
	}
	return o.grid.Set(i/o.grid.Cols(), i%o.grid.Cols(), id)
}

// PutText writes the glyphs of s into consecutive cells starting at the
// row-major index i.
func (o *Overlay) PutText(i int, s string) error {
	layout := o.atlas.GlyphLayout()
	for _, r := range s {
		id, ok := layout.ID(r)
		if !ok {
			return fmt.Errorf("tilescroll: no glyph for %q", r)
		}
		if !o.Set(i, uint16(id)) {
			return fmt.Errorf("tilescroll: text %q overflows overlay", s)
		}
		i++
	}
	return nil
}

func (o *Overlay) id(x, y int) uint16 {
	if x < 0 || y < 0 {
		return 0
	}
	id, _ := o.grid.At(y/o.atlas.Side(), x/o.atlas.Side())
	return id
}

// Owns implements Layer.
func (o *Overlay) Owns(x, y int) bool {
	return o.id(x, y) != 0
}

// ColorAt implements Layer.
func (o *Overlay) ColorAt(_, x, y int) (tile.RGB, bool) {
	side := o.atlas.Side()
	return o.atlas.Pixel(int(o.id(x, y)), x%side, y%side)
}

// Background draws a scrolling tile map. A StatelessDiagonal map is drawn
// straight from the frame number, any other map from its current state.
type Background struct {
	m     *tilemap.Map
	atlas *tile.Atlas
}

// NewBackground returns a layer drawing m with tiles from atlas.
func NewBackground(m *tilemap.Map, atlas *tile.Atlas) *Background {
	return &Background{
		m:     m,
		atlas: atlas,
	}
}

// Map returns the underlying tile map.
func (b *Background) Map() *tilemap.Map {
	return b.m
}

// Owns implements Layer.
func (b *Background) Owns(x, y int) bool {
	return b.m.Contains(x, y)
}

// ColorAt implements Layer.
func (b *Background) ColorAt(frame, x, y int) (tile.RGB, bool) {
	var (
		id int
		ok bool
	)
	if b.m.Config().Policy == tilemap.StatelessDiagonal {
		id, ok = b.m.TileIDAtFrame(frame, x, y)
	} else {
		id, ok = b.m.TileIDAt(x, y)
	}
	if !ok {
		return tile.RGB{}, false
	}
	side := b.atlas.Side()
	return b.atlas.Pixel(id, x%side, y%side)
}

// SpriteSheet draws atlases side by side, each as a grid of Cols by Rows
// tiles numbered down each column first.
type SpriteSheet struct {
	atlases    []*tile.Atlas
	cols, rows int
}

// NewSpriteSheet returns a layer drawing atlases left to right.
func NewSpriteSheet(cols, rows int, atlases ...*tile.Atlas) *SpriteSheet {
	return &SpriteSheet{
		atlases: atlases,
		cols:    cols,
		rows:    rows,
	}
}

func (s *SpriteSheet) side() int {
	if len(s.atlases) == 0 {
		return 0
	}
	return s.atlases[0].Side()
}

// Owns implements Layer.
func (s *SpriteSheet) Owns(x, y int) bool {
	side := s.side()
	return x >= 0 && y >= 0 && x < len(s.atlases)*s.cols*side && y < s.rows*side
}

// ColorAt implements Layer.
func (s *SpriteSheet) ColorAt(_, x, y int) (tile.RGB, bool) {
	if !s.Owns(x, y) {
		return tile.RGB{}, false
	}
	side := s.side()
	width := s.cols * side

	atlas := s.atlases[x/width]
	x %= width
	id := (x/side)*s.rows + y/side

	return atlas.Pixel(id, x%side, y%side)
}
