package tilescroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	for _, name := range Modes() {
		m, err := ParseMode(name)
		assert.NoError(t, err)
		assert.Equal(t, name, m.String())
	}

	m, err := ParseMode("Conveyor")
	assert.NoError(t, err)
	assert.Equal(t, ModeConveyor, m)

	_, err = ParseMode("spiral")
	assert.Error(t, err)

	assert.Equal(t, "Mode(9)", Mode(9).String())
	_, err = ModeConfig(Mode(9))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tables := []struct {
		name string
		cfg  func() Config
		err  error
	}{
		{"sprites", SpritesConfig, nil},
		{"conveyor", ConveyorConfig, nil},
		{"diagonal", DiagonalConfig, nil},
		{"static", StaticConfig, nil},
		{"no size", func() Config { c := StaticConfig(); c.Width = 0; return c }, errBadOutput},
		{"no layers", func() Config { return Config{Width: 8, Height: 8} }, errNoLayers},
		{"bad sprites", func() Config { c := SpritesConfig(); c.Sprites.Rows = 0; return c }, errBadSprites},
		{"overlay without background", func() Config { c := SpritesConfig(); c.Overlay = titleOverlay(1, 1); return c }, errBadOverlay},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.err, table.cfg().validate())
		})
	}
}

func TestMaskCovers(t *testing.T) {
	m := Mask{MinY: 160, MinX: 0, MaxX: 256, Limit: 228}

	assert.True(t, m.covers(10, 250))
	assert.False(t, m.covers(10, 170))
	assert.False(t, m.covers(10, 150))
	assert.False(t, m.covers(256, 250))
}

func TestTitleOverlay(t *testing.T) {
	tables := []struct {
		name  string
		cfg   Config
		text  int
		cells []Cell
	}{
		{"conveyor", ConveyorConfig(), 12, []Cell{{258, 0x064d}, {418, 0x0643}}},
		{"static", StaticConfig(), 12, []Cell{{258, 0x064d}, {418, 0x0643}}},
		{"diagonal", DiagonalConfig(), 12, []Cell{{8*75 + 2, 0x064d}, {13*75 + 2, 0x0643}}},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			o := table.cfg.Overlay
			if assert.Len(t, o.Texts, 1) {
				assert.Equal(t, table.text, o.Texts[0].Index)
			}
			assert.Equal(t, table.cells, o.Cells)
		})
	}
}
