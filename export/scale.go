package export

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale returns m enlarged by factor using nearest neighbor sampling. A
// factor of one or less returns m unchanged.
func Scale(m image.Image, factor int) image.Image {
	if factor <= 1 {
		return m
	}
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
	return dst
}
