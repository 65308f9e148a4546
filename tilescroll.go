/*
Package tilescroll renders scrolling tile map animations from tile and map
data stored as assembler byte declarations.

A Renderer composites a static overlay, a scrolling background and sprite
sheets into an RGB raster for the current frame. The host application drives
it by calling Advance with the number of ticks elapsed, usually taken from a
Clock, and Render to obtain the raster to present.
*/
package tilescroll

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/bodgit/tilescroll/asm"
	"github.com/bodgit/tilescroll/tile"
	"github.com/bodgit/tilescroll/tilemap"
)

// Default asset file names within the asset directory.
const (
	BackgroundTilesFile = "bgTiles.inc"
	TileMapFile         = "tilemap.inc"
	SpriteTilesFile     = "spriteTiles.inc"
	SpriteTiles2File    = "spriteTiles2.inc"
)

var errMissingAssets = errors.New("tilescroll: assets required by the configuration are not loaded")

// Assets holds the immutable data decoded at startup. It may be shared by any
// number of renderers.
type Assets struct {
	// Tiles is the background tile atlas.
	Tiles *tile.Atlas
	// Map is the backing sequence of background tile ids.
	Map []uint16
	// Sprites are the sprite sheet atlases, drawn left to right.
	Sprites []*tile.Atlas
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return logger
}

func loadAtlas(file string, side int, logger *log.Logger) (*tile.Atlas, error) {
	raw, err := asm.DecodeFile(file)
	if err != nil {
		return nil, err
	}
	a, err := tile.NewAtlas(raw, side)
	if err != nil {
		return nil, err
	}
	logger.Printf("Loaded %d tiles from \"%s\" (%d bytes, %d dropped)\n", a.Len(), file, len(raw), a.Dropped())
	return a, nil
}

// LoadAssets decodes the asset files in dir that any of the given
// configurations need. Any file that cannot be read is a fatal error.
func LoadAssets(dir string, logger *log.Logger, cfgs ...Config) (*Assets, error) {
	logger = orDiscard(logger)
	a := new(Assets)

	for _, cfg := range cfgs {
		if cfg.Background != nil && a.Tiles == nil {
			atlas, err := loadAtlas(filepath.Join(dir, BackgroundTilesFile), cfg.Background.Side, logger)
			if err != nil {
				return nil, fmt.Errorf("tilescroll: %w", err)
			}
			a.Tiles = atlas

			file := filepath.Join(dir, TileMapFile)
			raw, err := asm.DecodeFile(file)
			if err != nil {
				return nil, fmt.Errorf("tilescroll: %w", err)
			}
			a.Map = tilemap.ParseIDs(raw)
			logger.Printf("Loaded %d tile ids from \"%s\"\n", len(a.Map), file)
		}

		if cfg.Sprites != nil && a.Sprites == nil {
			for _, name := range []string{SpriteTilesFile, SpriteTiles2File} {
				atlas, err := loadAtlas(filepath.Join(dir, name), cfg.Sprites.Side, logger)
				if err != nil {
					return nil, fmt.Errorf("tilescroll: %w", err)
				}
				a.Sprites = append(a.Sprites, atlas)
			}
		}
	}

	return a, nil
}
