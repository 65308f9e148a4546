package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

var errNoFrames = errors.New("export: no frames to encode")

// EncodePNG writes m, enlarged by scale, to w as a PNG image.
func EncodePNG(w io.Writer, m image.Image, scale int) error {
	return png.Encode(w, Scale(m, scale))
}

// paletted reduces m to at most maxColors colors.
func paletted(m image.Image) *image.Paletted {
	b := m.Bounds()

	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= maxColors {
		return pm
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxColors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	return pm
}

// EncodeGIF writes frames, each enlarged by scale, to w as an animated GIF
// that loops forever with delay 100ths of a second between frames.
func EncodeGIF(w io.Writer, frames []image.Image, delay, scale int) error {
	if len(frames) == 0 {
		return errNoFrames
	}

	g := &gif.GIF{
		Image: make([]*image.Paletted, len(frames)),
		Delay: make([]int, len(frames)),
	}
	for i, m := range frames {
		g.Image[i] = paletted(Scale(m, scale))
		g.Delay[i] = delay
	}

	return gif.EncodeAll(w, g)
}
