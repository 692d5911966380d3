package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/urfave/cli/v2"

	"github.com/bodgit/xfab"
	"github.com/bodgit/xfab/chr"
)

const defaultDB = "xfab.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func logger(c *cli.Context) *log.Logger {
	l := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		l.SetOutput(os.Stderr)
	}
	return l
}

func main() {
	app := cli.NewApp()

	app.Name = "xfab"
	app.Usage = "8x8Fab level project utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"XFAB_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to asset catalog",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "info",
			Usage:     "Summarize a project file",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p := xfab.New()
				if err := p.ReadFile(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("palettes: %d\n", p.Palette.Num)
				fmt.Printf("chr sources: %d\n", len(p.ChrFiles))
				fmt.Printf("object classes: %d\n", len(p.ObjectClasses))
				fmt.Printf("levels: %d\n", len(p.Levels))
				for _, level := range p.Levels {
					d := level.Dimen()
					fmt.Printf("  %s: %dx%d, %d objects, %d metatiles\n",
						level.Name, d.W, d.H, len(level.Objects),
						level.CountMetatiles(p.MetatileSize, 0))
				}

				return nil
			},
		},
		{
			Name:      "chr",
			Usage:     "Convert an image to packed CHR tiles",
			ArgsUsage: "IN OUT",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "quantize, q",
					Usage: "reduce the image to four colors first",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				m, _, err := image.Decode(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if c.Bool("quantize") {
					m = chr.Quantize(m)
				}

				p, err := chr.Encode(m)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := os.WriteFile(c.Args().Get(1), p.Data, 0o644); err != nil {
					return cli.NewExitError(err, 1)
				}

				logger(c).Printf("%d tiles written\n", p.Tiles())

				return nil
			},
		},
		{
			Name:      "render",
			Usage:     "Render a level's CHR canvas to a PNG",
			ArgsUsage: "FILE OUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "level, l",
					Usage: "level name, defaulting to the first level",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p := xfab.New()
				if err := p.ReadFile(c.Args().Get(0)); err != nil {
					return cli.NewExitError(err, 1)
				}

				level := p.Levels[0]
				if name := c.String("level"); name != "" {
					if level = p.Level(name); level == nil {
						return cli.NewExitError(fmt.Errorf("no level named %q", name), 1)
					}
				}

				m, err := xfab.RenderLevel(p, level)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := gg.SavePNG(c.Args().Get(1), m); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Scan filesystem and catalog tile assets",
			ArgsUsage: "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := xfab.NewAssetDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				s := xfab.NewScanner(db, logger(c))
				if err := s.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "lookup",
			Usage:     "Look a tile asset up in the catalog by content",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := xfab.NewAssetDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				a, err := db.Lookup(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if a == nil {
					return cli.NewExitError("no match", 1)
				}

				fmt.Printf("%s: %s (%d tiles, %d unique)\n", a.Name, a.Path, a.Tiles, a.UniqueTiles)

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
