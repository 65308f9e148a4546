package tilescroll

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bodgit/tilescroll/tile"
	"github.com/bodgit/tilescroll/tilemap"
)

// Mode names a composition preset.
type Mode int

const (
	// ModeSprites shows two sprite sheets side by side.
	ModeSprites Mode = iota
	// ModeConveyor shows the title overlay over a windowed conveyor
	// background with its trail, mirrored and masked.
	ModeConveyor
	// ModeDiagonal shows the title overlay over a diagonally scrolling
	// background.
	ModeDiagonal
	// ModeStatic shows the title overlay over a fixed background.
	ModeStatic
)

var modeNames = []string{"sprites", "conveyor", "diagonal", "static"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode with the given name.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return ModeSprites, fmt.Errorf("tilescroll: unknown mode %q", s)
}

// Modes returns the names of every mode.
func Modes() []string {
	return append([]string(nil), modeNames...)
}

// Text places a string of glyphs on an overlay starting at a row-major cell
// index.
type Text struct {
	Index int
	Text  string
}

// Cell places a single tile id on an overlay at a row-major cell index.
type Cell struct {
	Index int
	ID    uint16
}

// OverlayConfig describes a static overlay grid. Cells holding zero are
// transparent.
type OverlayConfig struct {
	Rows, Cols int
	Texts      []Text
	Cells      []Cell
}

// SpriteSheetConfig describes the geometry of each sprite sheet. Tiles are
// numbered down each column first.
type SpriteSheetConfig struct {
	Side       int
	Cols, Rows int
}

// Mask paints pixels with y >= MinY, MinX <= x < MaxX and y+x/2 > Limit in a
// solid color.
type Mask struct {
	MinY       int
	MinX, MaxX int
	Limit      int
	Color      tile.RGB
}

func (m Mask) covers(x, y int) bool {
	return y >= m.MinY && x >= m.MinX && x < m.MaxX && y+x/2 > m.Limit
}

// Config is the complete description of a composition.
type Config struct {
	Mode Mode
	// Width and Height are the size of the output raster.
	Width, Height int

	Overlay    *OverlayConfig
	Background *tilemap.Config
	Sprites    *SpriteSheetConfig

	// MirrorWidth, if positive, samples pixel (x, y) at (x mod MirrorWidth, y).
	MirrorWidth int
	Masks       []Mask
	// Fallback is used for pixels that no layer colors.
	Fallback tile.RGB

	// Tick is the duration of one frame, zero for a still image.
	Tick time.Duration
	// LastFrame, if positive, is the frame at which animation stops.
	LastFrame int
}

var (
	errBadOutput  = errors.New("tilescroll: output size must be positive")
	errNoLayers   = errors.New("tilescroll: configuration has no background or sprite sheet")
	errBadSprites = errors.New("tilescroll: invalid sprite sheet geometry")
	errBadOverlay = errors.New("tilescroll: invalid overlay geometry")
)

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errBadOutput
	}
	if c.Background == nil && c.Sprites == nil {
		return errNoLayers
	}
	if s := c.Sprites; s != nil && (s.Side <= 0 || s.Cols <= 0 || s.Rows <= 0) {
		return errBadSprites
	}
	if o := c.Overlay; o != nil && (o.Rows <= 0 || o.Cols <= 0 || c.Background == nil) {
		return errBadOverlay
	}
	return nil
}

const (
	conveyorTick = 100 * time.Millisecond
	conveyorLast = 7
	mirrorWidth  = 256
)

const (
	titleRow, titleCol = 0, 12
	titleText          = "SPACE GAME FOR X64"
)

var titleCells = []struct {
	row, col int
	id       uint16
}{
	{8, 2, 0x064d},
	{13, 2, 0x0643},
}

// titleOverlay places the title by row and column so it lands in the same
// spot whatever the overlay width.
func titleOverlay(rows, cols int) *OverlayConfig {
	o := &OverlayConfig{
		Rows: rows,
		Cols: cols,
		Texts: []Text{
			{Index: titleRow*cols + titleCol, Text: titleText},
		},
	}
	for _, c := range titleCells {
		o.Cells = append(o.Cells, Cell{Index: c.row*cols + c.col, ID: c.id})
	}
	return o
}

// SpritesConfig returns the configuration showing both 256 by 256 sprite
// sheets of 32 by 32 tiles side by side.
func SpritesConfig() Config {
	return Config{
		Mode:   ModeSprites,
		Width:  512,
		Height: 256,
		Sprites: &SpriteSheetConfig{
			Side: tile.SpriteSide,
			Cols: 8,
			Rows: 8,
		},
		Fallback: tile.Black,
	}
}

// ConveyorConfig returns the configuration of the conveyor animation: a 15
// by 20 window shifting down one row and left two columns per frame, with a
// 17 by 32 trail to its left, drawn twice across a 512 by 256 raster.
func ConveyorConfig() Config {
	return Config{
		Mode:    ModeConveyor,
		Width:   512,
		Height:  256,
		Overlay: titleOverlay(32, 32),
		Background: &tilemap.Config{
			Rows:      20,
			Cols:      15,
			Side:      tile.DefaultSide,
			Policy:    tilemap.WindowedConveyor,
			ShiftRows: 1,
			ShiftCols: 2,
			TrailRows: 32,
			TrailCols: 17,
			WindowRow: 1,
			Budget:    tilemap.DefaultBudget,
		},
		MirrorWidth: mirrorWidth,
		Masks: []Mask{
			{MinY: 160, MinX: 256, MaxX: 512, Limit: 356},
			{MinY: 160, MinX: 0, MaxX: 256, Limit: 228},
		},
		Fallback:  tile.Black,
		Tick:      conveyorTick,
		LastFrame: conveyorLast,
	}
}

// DiagonalConfig returns the configuration of the 600 by 600 diagonal
// scroll, moving one tile right per frame and one tile down every other
// frame.
func DiagonalConfig() Config {
	return Config{
		Mode:    ModeDiagonal,
		Width:   600,
		Height:  600,
		Overlay: titleOverlay(75, 75),
		Background: &tilemap.Config{
			Rows:      75,
			Cols:      75,
			Side:      tile.DefaultSide,
			Policy:    tilemap.StatelessDiagonal,
			RowPeriod: tilemap.DefaultRowPeriod,
			Budget:    tilemap.DefaultBudget,
		},
		Fallback: tile.Black,
		Tick:     conveyorTick,
	}
}

// StaticConfig returns the configuration of a fixed 32 by 32 tile
// background.
func StaticConfig() Config {
	return Config{
		Mode:    ModeStatic,
		Width:   256,
		Height:  256,
		Overlay: titleOverlay(32, 32),
		Background: &tilemap.Config{
			Rows:   32,
			Cols:   32,
			Side:   tile.DefaultSide,
			Policy: tilemap.Static,
		},
		Fallback: tile.Black,
	}
}

// ModeConfig returns the preset configuration for m.
func ModeConfig(m Mode) (Config, error) {
	switch m {
	case ModeSprites:
		return SpritesConfig(), nil
	case ModeConveyor:
		return ConveyorConfig(), nil
	case ModeDiagonal:
		return DiagonalConfig(), nil
	case ModeStatic:
		return StaticConfig(), nil
	}
	return Config{}, fmt.Errorf("tilescroll: unknown mode %s", m)
}
