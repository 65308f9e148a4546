package tile

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solid returns n tiles of the given side where every pixel of tile i is
// stored as B=i, G=i+1, R=i+2.
func solid(n, side int) []byte {
	b := make([]byte, 0, n*side*side*bytesPerPixel)
	for i := 0; i < n; i++ {
		for p := 0; p < side*side; p++ {
			b = append(b, byte(i), byte(i+1), byte(i+2), 0xff)
		}
	}
	return b
}

func TestChannelOrder(t *testing.T) {
	raw := make([]byte, DefaultSide*DefaultSide*bytesPerPixel)
	copy(raw, []byte{0x10, 0x20, 0x30, 0xff})

	a, err := NewAtlas(raw, DefaultSide)
	require.NoError(t, err)
	require.Equal(t, 1, a.Len())

	c, ok := a.Pixel(0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, RGB{0x30, 0x20, 0x10}, c)

	c, ok = a.Pixel(0, 1, 0)
	require.True(t, ok)
	assert.Equal(t, RGB{}, c)
}

func TestPixelOrder(t *testing.T) {
	raw := make([]byte, 2*2*bytesPerPixel)
	for i := 0; i < 4; i++ {
		raw[i*bytesPerPixel+2] = byte(i + 1)
	}

	a, err := NewAtlas(raw, 2)
	require.NoError(t, err)

	tile, ok := a.Tile(0)
	require.True(t, ok)
	assert.Equal(t, 2, tile.Side())

	for i, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		c, ok := tile.At(p[0], p[1])
		require.True(t, ok)
		assert.Equal(t, uint8(i+1), c.R)
	}

	_, ok = tile.At(2, 0)
	assert.False(t, ok)
	_, ok = tile.At(0, -1)
	assert.False(t, ok)
}

func TestTrailingBytesDropped(t *testing.T) {
	raw := append(solid(3, DefaultSide), 1, 2, 3, 4, 5)

	a, err := NewAtlas(raw, DefaultSide)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 5, a.Dropped())

	c, ok := a.Pixel(2, 7, 7)
	require.True(t, ok)
	assert.Equal(t, RGB{4, 3, 2}, c)

	_, ok = a.Tile(3)
	assert.False(t, ok)
	_, ok = a.Tile(-1)
	assert.False(t, ok)

	a, err = NewAtlas([]byte{1, 2, 3}, DefaultSide)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
}

func TestBadSide(t *testing.T) {
	_, err := NewAtlas(nil, 0)
	assert.Equal(t, errBadSide, err)
}

func TestRGBColor(t *testing.T) {
	var c color.Color = RGB{0x12, 0x34, 0x56}
	assert.Equal(t, color.RGBA{0x12, 0x34, 0x56, 0xff}, color.RGBAModel.Convert(c))
}
