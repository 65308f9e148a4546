package tilescroll

import (
	"image"
	"log"

	"github.com/bodgit/tilescroll/tile"
	"github.com/bodgit/tilescroll/tilemap"
)

// Renderer produces rasters for one composition. It is not safe for
// concurrent use; build one renderer per goroutine over shared Assets.
type Renderer struct {
	cfg    Config
	comp   *Compositor
	bg     *tilemap.Map
	frame  int
	logger *log.Logger
}

// NewRenderer builds the layers described by cfg over assets.
func NewRenderer(cfg Config, assets *Assets, logger *log.Logger) (*Renderer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:    cfg,
		logger: orDiscard(logger),
	}

	var layers []Layer

	if cfg.Background != nil {
		if assets == nil || assets.Tiles == nil {
			return nil, errMissingAssets
		}

		if o := cfg.Overlay; o != nil {
			overlay := NewOverlay(o.Rows, o.Cols, assets.Tiles)
			for _, t := range o.Texts {
				if err := overlay.PutText(t.Index, t.Text); err != nil {
					return nil, err
				}
			}
			for _, c := range o.Cells {
				if !overlay.Set(c.Index, c.ID) {
					return nil, errBadOverlay
				}
			}
			layers = append(layers, overlay)
		}

		m, err := tilemap.New(*cfg.Background, assets.Map)
		if err != nil {
			return nil, err
		}
		r.bg = m
		layers = append(layers, NewBackground(m, assets.Tiles))
	}

	if s := cfg.Sprites; s != nil {
		if assets == nil || len(assets.Sprites) == 0 {
			return nil, errMissingAssets
		}
		layers = append(layers, NewSpriteSheet(s.Cols, s.Rows, assets.Sprites...))
	}

	r.comp = NewCompositor(layers...)

	return r, nil
}

// Config returns the configuration of the renderer.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Bounds returns the bounds of the output raster.
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.cfg.Width, r.cfg.Height)
}

// Frame returns the number of ticks applied.
func (r *Renderer) Frame() int {
	return r.frame
}

// Compositor returns the compositor resolving unmasked pixels.
func (r *Renderer) Compositor() *Compositor {
	return r.comp
}

func (r *Renderer) stateful() bool {
	return r.bg != nil && r.cfg.Background.Policy == tilemap.WindowedConveyor
}

// Advance applies ticks frames of animation, each exactly once. Once
// LastFrame is reached further ticks are ignored.
func (r *Renderer) Advance(ticks int) {
	if r.cfg.LastFrame > 0 && ticks > r.cfg.LastFrame-r.frame {
		ticks = r.cfg.LastFrame - r.frame
	}
	for i := 0; i < ticks; i++ {
		r.frame++
		if r.stateful() && r.bg.Advance() {
			r.logger.Printf("Frame budget exhausted at frame %d, map reset\n", r.frame)
		}
	}
}

// Seek moves the renderer to the given absolute frame. The resulting state
// is the same as advancing a fresh renderer by that many frames, ignoring
// LastFrame.
func (r *Renderer) Seek(frame int) {
	if frame < 0 {
		frame = 0
	}
	r.frame = frame
	if r.stateful() {
		r.bg.Seek(frame)
	}
}

// ColorAt returns the color of output pixel (x, y). It reports false only
// for pixels outside Bounds; uncovered pixels inside use the fallback color.
func (r *Renderer) ColorAt(x, y int) (tile.RGB, bool) {
	if x < 0 || y < 0 || x >= r.cfg.Width || y >= r.cfg.Height {
		return tile.RGB{}, false
	}

	for _, m := range r.cfg.Masks {
		if m.covers(x, y) {
			return m.Color, true
		}
	}

	if r.cfg.MirrorWidth > 0 {
		x %= r.cfg.MirrorWidth
	}

	if c, ok := r.comp.ColorAt(r.frame, x, y); ok {
		return c, true
	}
	return r.cfg.Fallback, true
}

// RenderTo draws the current frame into m, which should cover Bounds.
func (r *Renderer) RenderTo(m *image.RGBA) {
	b := m.Bounds().Intersect(r.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, _ := r.ColorAt(x, y)
			i := m.PixOffset(x, y)
			m.Pix[i+0] = c.R
			m.Pix[i+1] = c.G
			m.Pix[i+2] = c.B
			m.Pix[i+3] = 0xff
		}
	}
}

// Render returns the current frame as a new image.
func (r *Renderer) Render() *image.RGBA {
	m := image.NewRGBA(r.Bounds())
	r.RenderTo(m)
	return m
}

// RenderFrame seeks to frame and renders it.
func (r *Renderer) RenderFrame(frame int) *image.RGBA {
	r.Seek(frame)
	return r.Render()
}
