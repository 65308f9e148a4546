package tilescroll

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bodgit/tilescroll/tile"
	"github.com/stretchr/testify/require"
)

const (
	bgTiles     = 0x700
	spriteTiles = 64
	sheetOffset = 100
)

// pixelBytes returns n tiles stored as B, G, R, padding where pixel (x, y)
// of tile id decodes to pixel(base+id, x, y).
func pixelBytes(n, side, base int) []byte {
	b := make([]byte, 0, n*side*side*4)
	for id := base; id < base+n; id++ {
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				b = append(b, byte(x+y), byte(id>>8), byte(id), 0xff)
			}
		}
	}
	return b
}

func pixel(id, x, y int) tile.RGB {
	return tile.RGB{R: byte(id), G: byte(id >> 8), B: byte(x + y)}
}

// backing returns n map ids cycling through the first 0x500 tiles.
func backing(n int) []uint16 {
	ids := make([]uint16, n)
	for i := range ids {
		ids[i] = uint16(i % 0x500)
	}
	return ids
}

func testAssets(t *testing.T) *Assets {
	t.Helper()

	tiles, err := tile.NewAtlas(pixelBytes(bgTiles, tile.DefaultSide, 0), tile.DefaultSide)
	require.NoError(t, err)

	sheet1, err := tile.NewAtlas(pixelBytes(spriteTiles, tile.SpriteSide, 0), tile.SpriteSide)
	require.NoError(t, err)
	sheet2, err := tile.NewAtlas(pixelBytes(spriteTiles, tile.SpriteSide, sheetOffset), tile.SpriteSide)
	require.NoError(t, err)

	return &Assets{
		Tiles:   tiles,
		Map:     backing(30000),
		Sprites: []*tile.Atlas{sheet1, sheet2},
	}
}

// dbSource encodes b as assembler byte declarations, 16 per line.
func dbSource(b []byte) string {
	var sb strings.Builder
	for i := 0; i < len(b); i += 16 {
		end := i + 16
		if end > len(b) {
			end = len(b)
		}
		sb.WriteString("\tdb ")
		for j, v := range b[i:end] {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "0%02XH", v)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
