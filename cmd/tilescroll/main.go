package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/bodgit/tilescroll"
	"github.com/bodgit/tilescroll/asm"
	"github.com/bodgit/tilescroll/export"
	"github.com/urfave/cli/v2"
)

const defaultAssets = "graphics"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func modeConfig(c *cli.Context) (tilescroll.Config, error) {
	m, err := tilescroll.ParseMode(c.String("mode"))
	if err != nil {
		return tilescroll.Config{}, err
	}
	return tilescroll.ModeConfig(m)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func create(file string) (io.WriteCloser, error) {
	if file == "" || file == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(file)
}

// writeOutput encodes to file, or standard output for "-". A file that
// could not be completely written is removed.
func writeOutput(file string, encode func(io.Writer) error) error {
	w, err := create(file)
	if err != nil {
		return err
	}

	err = encode(w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if _, ok := w.(*os.File); ok {
			os.Remove(file)
		}
		return err
	}

	return nil
}

func decodeAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	b, err := asm.DecodeFile(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if c.Bool("count") {
		fmt.Println(len(b))
		return nil
	}

	d := hex.Dumper(os.Stdout)
	defer d.Close()
	if _, err := d.Write(b); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func infoAction(c *cli.Context) error {
	cfg, err := modeConfig(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	assets, err := tilescroll.LoadAssets(c.String("assets"), newLogger(c), cfg)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Printf("Mode:   %s (%dx%d)\n", cfg.Mode, cfg.Width, cfg.Height)
	if assets.Tiles != nil {
		fmt.Printf("Tiles:  %d (%dx%d)\n", assets.Tiles.Len(), assets.Tiles.Side(), assets.Tiles.Side())
		fmt.Printf("Map:    %d ids\n", len(assets.Map))
	}
	if bg := cfg.Background; bg != nil {
		fmt.Printf("Window: %dx%d tiles, %s, budget %d\n", bg.Cols, bg.Rows, bg.Policy, bg.Budget)
	}
	for i, a := range assets.Sprites {
		fmt.Printf("Sheet %d: %d sprites (%dx%d)\n", i, a.Len(), a.Side(), a.Side())
	}

	return nil
}

func renderAction(c *cli.Context) error {
	cfg, err := modeConfig(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	logger := newLogger(c)

	assets, err := tilescroll.LoadAssets(c.String("assets"), logger, cfg)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	r, err := tilescroll.NewRenderer(cfg, assets, logger)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	m := r.RenderFrame(c.Int("frame"))
	if err := writeOutput(c.String("output"), func(w io.Writer) error {
		return export.EncodePNG(w, m, c.Int("scale"))
	}); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func animateAction(c *cli.Context) error {
	cfg, err := modeConfig(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	logger := newLogger(c)

	assets, err := tilescroll.LoadAssets(c.String("assets"), logger, cfg)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	frames := make([]int, c.Int("frames"))
	for i := range frames {
		frames[i] = c.Int("start") + i
	}

	rendered, err := tilescroll.RenderFrames(context.Background(), cfg, assets, frames, c.Int("workers"), logger)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	images := make([]image.Image, len(rendered))
	for i, m := range rendered {
		images[i] = m
	}

	delay := int(cfg.Tick.Milliseconds() / 10)
	if delay <= 0 {
		delay = export.DefaultDelay
	}

	if err := writeOutput(c.String("output"), func(w io.Writer) error {
		return export.EncodeGIF(w, images, delay, c.Int("scale"))
	}); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "tilescroll"
	app.Usage = "Scrolling tile map renderer"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "assets",
			EnvVars: []string{"TILESCROLL_ASSETS"},
			Value:   defaultAssets,
			Usage:   "directory holding the .inc asset files",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	modeFlag := &cli.StringFlag{
		Name:  "mode",
		Value: tilescroll.ModeConveyor.String(),
		Usage: fmt.Sprintf("composition mode %v", tilescroll.Modes()),
	}
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "-",
		Usage:   "output file",
	}
	scaleFlag := &cli.IntFlag{
		Name:  "scale",
		Value: 1,
		Usage: "enlarge each pixel by this factor",
	}

	app.Commands = []*cli.Command{
		{
			Name:        "decode",
			Usage:       "Decode an asset file and dump its bytes",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "count",
					Usage: "print only the number of bytes",
				},
			},
			Action: decodeAction,
		},
		{
			Name:        "info",
			Usage:       "Summarise the assets used by a mode",
			Description: "",
			Flags:       []cli.Flag{modeFlag},
			Action:      infoAction,
		},
		{
			Name:        "render",
			Usage:       "Render one frame as PNG",
			Description: "",
			Flags: []cli.Flag{
				modeFlag,
				outputFlag,
				scaleFlag,
				&cli.IntFlag{
					Name:  "frame",
					Usage: "frame number to render",
				},
			},
			Action: renderAction,
		},
		{
			Name:        "animate",
			Usage:       "Render a run of frames as an animated GIF",
			Description: "",
			Flags: []cli.Flag{
				modeFlag,
				outputFlag,
				scaleFlag,
				&cli.IntFlag{
					Name:  "start",
					Usage: "first frame number",
				},
				&cli.IntFlag{
					Name:  "frames",
					Value: 161,
					Usage: "number of frames",
				},
				&cli.IntFlag{
					Name:  "workers",
					Value: 4,
					Usage: "number of frames rendered in parallel",
				},
			},
			Action: animateAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
