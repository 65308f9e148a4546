package tilescroll

import (
	"testing"

	"github.com/bodgit/tilescroll/tile"
	"github.com/bodgit/tilescroll/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositorPriority(t *testing.T) {
	assets := testAssets(t)

	overlay := NewOverlay(4, 4, assets.Tiles)
	require.True(t, overlay.Set(1, 0x42))
	require.NoError(t, overlay.PutText(4, "A1"))

	m, err := tilemap.New(tilemap.Config{Rows: 4, Cols: 4, Side: tile.DefaultSide}, []uint16{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})
	require.NoError(t, err)

	c := NewCompositor(overlay, NewBackground(m, assets.Tiles))

	tables := []struct {
		name string
		x, y int
		id   int
		ok   bool
	}{
		{"background under transparent overlay", 3, 2, 1, true},
		{"overlay tile", 9, 1, 0x42, true},
		{"overlay letter", 2, 12, 0x600, true},
		{"overlay digit", 12, 9, 0x61b, true},
		{"background row 1", 24, 15, 8, true},
		{"background zero cell", 30, 30, 0, true},
		{"outside", 32, 0, 0, false},
		{"negative", -1, 0, 0, false},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			got, ok := c.ColorAt(0, table.x, table.y)
			assert.Equal(t, table.ok, ok)
			if table.ok {
				assert.Equal(t, pixel(table.id, table.x%8, table.y%8), got)
			}
		})
	}
}

func TestOverlayErrors(t *testing.T) {
	assets := testAssets(t)

	overlay := NewOverlay(1, 4, assets.Tiles)
	assert.Error(t, overlay.PutText(0, "A!"))
	assert.Error(t, overlay.PutText(2, "ABC"))
	assert.False(t, overlay.Set(-1, 1))
}

func TestBackgroundMissingTile(t *testing.T) {
	assets := testAssets(t)

	m, err := tilemap.New(tilemap.Config{Rows: 1, Cols: 1, Side: tile.DefaultSide}, []uint16{0xffff})
	require.NoError(t, err)

	b := NewBackground(m, assets.Tiles)
	assert.True(t, b.Owns(0, 0))
	_, ok := b.ColorAt(0, 0, 0)
	assert.False(t, ok)
	assert.Equal(t, m, b.Map())
}

func TestSpriteSheet(t *testing.T) {
	assets := testAssets(t)
	s := NewSpriteSheet(8, 8, assets.Sprites...)

	tables := []struct {
		x, y int
		id   int
	}{
		{0, 0, 0},
		{0, 32, 1},
		{32, 0, 8},
		{255, 255, 63},
		{256, 0, sheetOffset},
		{256 + 64 + 5, 96 + 7, sheetOffset + 2*8 + 3},
	}

	for _, table := range tables {
		got, ok := s.ColorAt(0, table.x, table.y)
		require.True(t, ok)
		assert.Equal(t, pixel(table.id, table.x%32, table.y%32), got)
	}

	assert.False(t, s.Owns(512, 0))
	assert.False(t, s.Owns(0, 256))
	_, ok := s.ColorAt(0, 512, 0)
	assert.False(t, ok)

	assert.False(t, NewSpriteSheet(8, 8).Owns(0, 0))
}
