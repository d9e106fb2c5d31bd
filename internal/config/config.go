// Package config holds viewer settings: defaults, an optional YAML file, and validation.
package config

import (
	"bytes"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"ptview/internal/cloud"
	"ptview/internal/ingest"
)

// DefaultTitle is the window title used when none is configured.
const DefaultTitle = "Simple PointCloud Renderer"

// MaxSurfaceSize bounds each side of the display surface, in dots.
const MaxSurfaceSize = 8192

type Config struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`

	MinRange     float64 `yaml:"min_range"`
	MaxRange     float64 `yaml:"max_range"`
	MaxNumPoints int     `yaml:"max_points"`

	// Format is an ingest format name, or "auto" to pick one from the file extension.
	Format  string `yaml:"format"`
	LogFile string `yaml:"log_file"`
	// SnapshotPath is where the interactive snapshot key writes.
	SnapshotPath string `yaml:"snapshot_path"`
}

func Default() Config {
	opts := cloud.DefaultOptions()
	return Config{
		Title:        DefaultTitle,
		Width:        600,
		Height:       600,
		Background:   "#000000",
		MinRange:     opts.MinRange,
		MaxRange:     opts.MaxRange,
		MaxNumPoints: opts.MaxNumPoints,
		Format:       ingest.FixedHeaderXYZ.String(),
		SnapshotPath: "ptview.png",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("surface size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Width > MaxSurfaceSize || c.Height > MaxSurfaceSize {
		return errors.Errorf("surface size %dx%d exceeds %d per side", c.Width, c.Height, MaxSurfaceSize)
	}
	if c.MaxRange <= c.MinRange {
		return errors.Errorf("max_range (%g) must be greater than min_range (%g)", c.MaxRange, c.MinRange)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if c.Format != "auto" {
		if _, err := ingest.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) BackgroundColor() (colorful.Color, error) {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return colorful.Color{}, errors.Wrapf(err, "background %q", c.Background)
	}
	return col, nil
}

// StoreOptions returns the geometry store settings.
func (c Config) StoreOptions() cloud.Options {
	return cloud.Options{
		MinRange:     c.MinRange,
		MaxRange:     c.MaxRange,
		MaxNumPoints: c.MaxNumPoints,
	}
}

// IngestFormat resolves the configured format for path.
func (c Config) IngestFormat(path string) (ingest.Format, error) {
	if c.Format == "auto" {
		return ingest.DetectFormat(path), nil
	}
	return ingest.ParseFormat(c.Format)
}
