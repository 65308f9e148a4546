package main

import (
	"image"
	"io"
	"log"
	"os"
	"time"

	"github.com/bodgit/tilescroll"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"
)

// game presents a Show in a resizable window.
type game struct {
	show   *tilescroll.Show
	screen *image.RGBA
}

func (g *game) Update() error {
	g.show.Update(time.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	r := g.show.Current()
	for i := range g.screen.Pix {
		g.screen.Pix[i] = 0
	}
	r.RenderTo(g.screen)
	// Pixels outside the current stage stay opaque black
	for i := 3; i < len(g.screen.Pix); i += 4 {
		g.screen.Pix[i] = 0xff
	}
	screen.WritePixels(g.screen.Pix)
}

func (g *game) Layout(_, _ int) (int, int) {
	b := g.screen.Bounds()
	return b.Dx(), b.Dy()
}

func run(c *cli.Context) error {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	assets, err := tilescroll.LoadAssets(c.String("assets"), logger, tilescroll.SpritesConfig(), tilescroll.ConveyorConfig())
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	show, err := tilescroll.DefaultShow(time.Now(), assets, logger)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	g := &game{
		show:   show,
		screen: image.NewRGBA(show.Bounds()),
	}

	b := show.Bounds()
	ebiten.SetWindowSize(b.Dx()*c.Int("scale"), b.Dy()*c.Int("scale"))
	ebiten.SetWindowTitle("tileview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "tileview"
	app.Usage = "Play the tile map show in a window"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "assets",
			EnvVars: []string{"TILESCROLL_ASSETS"},
			Value:   "graphics",
			Usage:   "directory holding the .inc asset files",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 2,
			Usage: "initial window scale",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
