package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"go.viam.com/test"

	"ptview/internal/cloud"
	"ptview/internal/ingest"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "ptview.yaml")
	test.That(t, os.WriteFile(p, []byte(content), 0o644), test.ShouldBeNil)
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()
	test.That(t, cfg.Validate(), test.ShouldBeNil)
	test.That(t, cfg.Width, test.ShouldEqual, 600)
	test.That(t, cfg.Height, test.ShouldEqual, 600)
	test.That(t, cfg.SnapshotPath, test.ShouldEqual, "ptview.png")
	test.That(t, cfg.StoreOptions(), test.ShouldResemble, cloud.DefaultOptions())

	bg, err := cfg.BackgroundColor()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, bg, test.ShouldResemble, colorful.Color{})

	f, err := cfg.IngestFormat("scan.xyz")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, f, test.ShouldEqual, ingest.FixedHeaderXYZ)
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, `
title: lidar
width: 320
background: "#ffffff"
min_range: 0
max_range: 50
format: auto
snapshot_path: view.png
`)
	cfg, err := Load(p)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Title, test.ShouldEqual, "lidar")
	test.That(t, cfg.Width, test.ShouldEqual, 320)
	test.That(t, cfg.Height, test.ShouldEqual, 600)
	test.That(t, cfg.MaxRange, test.ShouldEqual, 50.0)
	test.That(t, cfg.MaxNumPoints, test.ShouldEqual, 800000)
	test.That(t, cfg.SnapshotPath, test.ShouldEqual, "view.png")

	f, err := cfg.IngestFormat("scan.csv")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, f, test.ShouldEqual, ingest.CSV)

	bg, err := cfg.BackgroundColor()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, bg.AlmostEqualRgb(colorful.Color{R: 1, G: 1, B: 1}), test.ShouldBeTrue)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	test.That(t, err, test.ShouldNotBeNil)

	testCases := map[string]string{
		"UnknownKey":    "colour: red\n",
		"BadRange":      "min_range: 5\nmax_range: 5\n",
		"BadSize":       "width: 0\n",
		"HugeSize":      "width: 1000000\nheight: 1000000\n",
		"BadBackground": "background: black\n",
		"BadFormat":     "format: ply\n",
		"NotYAML":       "width: [\n",
	}
	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			test.That(t, err, test.ShouldNotBeNil)
		})
	}
}
