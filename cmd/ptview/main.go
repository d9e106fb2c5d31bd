// Package main is the point cloud viewer command.
package main

import (
	"fmt"
	"os"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"ptview/internal/cloud"
	"ptview/internal/config"
	"ptview/internal/ingest"
	"ptview/internal/render"
	"ptview/internal/tui"
)

const (
	// Flags.
	flagConfig     = "config"
	flagFormat     = "format"
	flagMinRange   = "min-range"
	flagMaxRange   = "max-range"
	flagMaxPoints  = "max-points"
	flagTitle      = "title"
	flagWidth      = "width"
	flagHeight     = "height"
	flagBackground = "background"
	flagLogFile    = "log-file"
	flagDebug      = "debug"
	flagSnapshot   = "snapshot"
	flagDemo       = "demo"

	usageText = "ptview [flags] <pointFile>"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// viewer carries state from the Before hook into the action.
type viewer struct {
	logger golog.Logger
	// quiet is the logger used while the terminal UI owns the screen
	quiet golog.Logger
}

func newApp() *cli.App {
	v := &viewer{}
	return &cli.App{
		Name:      "ptview",
		Usage:     "view a point cloud in the terminal",
		UsageText: usageText,
		Flags: []cli.Flag{
			&cli.PathFlag{Name: flagConfig, Usage: "YAML settings `FILE`"},
			&cli.StringFlag{Name: flagFormat, Usage: "input format: plain, fixed-header, csv, pcd, las or auto"},
			&cli.Float64Flag{Name: flagMinRange, Usage: "depth mapped to the first color"},
			&cli.Float64Flag{Name: flagMaxRange, Usage: "depth mapped to the last color"},
			&cli.IntFlag{Name: flagMaxPoints, Usage: "store capacity, 0 for unbounded"},
			&cli.StringFlag{Name: flagTitle, Usage: "window title"},
			&cli.IntFlag{Name: flagWidth, Usage: "surface width in dots"},
			&cli.IntFlag{Name: flagHeight, Usage: "surface height in dots"},
			&cli.StringFlag{Name: flagBackground, Usage: "background color as #rrggbb"},
			&cli.PathFlag{Name: flagLogFile, Usage: "write logs to `FILE`"},
			&cli.BoolFlag{Name: flagDebug, Usage: "debug logging"},
			&cli.PathFlag{Name: flagSnapshot, Usage: "render a PNG to `FILE` and exit"},
			&cli.BoolFlag{Name: flagDemo, Usage: "show a generated elliptic cylinder"},
		},
		Before: v.setupLogging,
		Action: v.run,
		After: func(*cli.Context) error {
			if v.logger != nil {
				_ = v.logger.Sync()
			}
			return nil
		},
	}
}

func (v *viewer) setupLogging(c *cli.Context) error {
	path := c.Path(flagLogFile)
	if path == "" {
		if c.Bool(flagDebug) {
			v.logger = golog.NewDebugLogger("ptview")
		} else {
			v.logger = golog.NewDevelopmentLogger("ptview")
		}
		v.quiet = v.logger.Desugar().WithOptions(zap.IncreaseLevel(zap.WarnLevel)).Sugar()
		return nil
	}

	cfg := zap.NewDevelopmentConfig()
	if !c.Bool(flagDebug) {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	l, err := cfg.Build()
	if err != nil {
		return cli.Exit(errors.Wrapf(err, "opening log file %s", path), 1)
	}
	v.logger = l.Sugar().Named("ptview")
	v.quiet = v.logger
	return nil
}

// settings merges the config file (if any) with the flags that were given.
func settings(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.Path(flagConfig); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	if c.IsSet(flagFormat) {
		cfg.Format = c.String(flagFormat)
	}
	if c.IsSet(flagMinRange) {
		cfg.MinRange = c.Float64(flagMinRange)
	}
	if c.IsSet(flagMaxRange) {
		cfg.MaxRange = c.Float64(flagMaxRange)
	}
	if c.IsSet(flagMaxPoints) {
		cfg.MaxNumPoints = c.Int(flagMaxPoints)
	}
	if c.IsSet(flagTitle) {
		cfg.Title = c.String(flagTitle)
	}
	if c.IsSet(flagWidth) {
		cfg.Width = c.Int(flagWidth)
	}
	if c.IsSet(flagHeight) {
		cfg.Height = c.Int(flagHeight)
	}
	if c.IsSet(flagBackground) {
		cfg.Background = c.String(flagBackground)
	}
	return cfg, cfg.Validate()
}

func (v *viewer) run(c *cli.Context) error {
	path := c.Args().First()
	// exactly one of a point file or --demo
	if c.NArg() > 1 || (path == "" && !c.Bool(flagDemo)) || (path != "" && c.Bool(flagDemo)) {
		return cli.Exit("usage: "+usageText, 2)
	}

	cfg, err := settings(c)
	if err != nil {
		return cli.Exit(err, 2)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return cli.Exit(err, 2)
	}

	fmt.Fprintf(c.App.Writer, "%s (%dx%d)\n", cfg.Title, cfg.Width, cfg.Height)

	store, err := v.loadStore(path, cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}
	r := render.Build(store)

	if out := c.Path(flagSnapshot); out != "" {
		if err := tui.SavePNG(out, r, cfg.Width, cfg.Height, bg); err != nil {
			return cli.Exit(errors.Wrapf(err, "writing snapshot %s", out), 1)
		}
		v.logger.Infow("snapshot written", "path", out, "points", r.Len())
		return nil
	}

	err = tui.Run(r, tui.Config{
		Title:        cfg.Title,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Background:   bg,
		SnapshotPath: cfg.SnapshotPath,
	}, v.quiet)
	if err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Fprintln(c.App.Writer, "Adios")
	return nil
}

func (v *viewer) loadStore(path string, cfg config.Config) (*cloud.Store, error) {
	if path == "" {
		store := cloud.New(cfg.StoreOptions())
		if err := cloud.Ellipse(store); err != nil {
			return nil, errors.Wrap(err, "generating demo cloud")
		}
		v.logger.Infof("generated %d points", store.Len())
		return store, nil
	}
	format, err := cfg.IngestFormat(path)
	if err != nil {
		return nil, err
	}
	res, err := ingest.Load(path, format, cfg.StoreOptions(), v.logger)
	if err != nil {
		return nil, err
	}
	return res.Store, nil
}
