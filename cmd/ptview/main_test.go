package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.viam.com/test"
)

func runApp(t *testing.T, args ...string) (string, int, error) {
	t.Helper()
	code := 0
	prevExiter, prevErrWriter := cli.OsExiter, cli.ErrWriter
	cli.OsExiter = func(c int) { code = c }
	cli.ErrWriter = &bytes.Buffer{}
	t.Cleanup(func() {
		cli.OsExiter, cli.ErrWriter = prevExiter, prevErrWriter
	})

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	logFile := filepath.Join(t.TempDir(), "ptview.log")
	err := app.Run(append([]string{"ptview", "--log-file", logFile}, args...))
	return out.String(), code, err
}

func exitCode(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}

func TestMissingArgument(t *testing.T) {
	_, code, err := runApp(t)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "usage")
	test.That(t, exitCode(err), test.ShouldEqual, 2)
	test.That(t, code, test.ShouldEqual, 2)

	for _, args := range [][]string{
		{"a.xyz", "b.xyz"},
		{"--demo", "a.xyz"},
	} {
		_, code, err := runApp(t, args...)
		test.That(t, exitCode(err), test.ShouldEqual, 2)
		test.That(t, code, test.ShouldEqual, 2)
	}
}

func TestDemoSnapshot(t *testing.T) {
	png := filepath.Join(t.TempDir(), "demo.png")
	out, _, err := runApp(t, "--demo", "--snapshot", png, "--width", "64", "--height", "48", "--title", "demo")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "demo (64x48)")

	info, err := os.Stat(png)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Size(), test.ShouldBeGreaterThan, 0)
}

func TestFileSnapshot(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cloud.xyz")
	test.That(t, os.WriteFile(src, []byte("# x y z\n0 0 1\n1 0 2\n0 1 3\n"), 0o644), test.ShouldBeNil)
	cfg := filepath.Join(dir, "ptview.yaml")
	test.That(t, os.WriteFile(cfg, []byte("format: auto\nbackground: \"#202020\"\n"), 0o644), test.ShouldBeNil)

	png := filepath.Join(dir, "cloud.png")
	_, _, err := runApp(t, "--config", cfg, "--max-range", "3", "--snapshot", png, src)
	test.That(t, err, test.ShouldBeNil)
	_, err = os.Stat(png)
	test.That(t, err, test.ShouldBeNil)
}

func TestLoadFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.xyz")
	test.That(t, os.WriteFile(src, []byte("1 2\n"), 0o644), test.ShouldBeNil)

	_, code, err := runApp(t, "--format", "plain", "--snapshot", filepath.Join(dir, "x.png"), src)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "line 1")
	test.That(t, code, test.ShouldEqual, 1)

	_, code, err = runApp(t, "--min-range", "10", "--max-range", "1", "--demo")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, code, test.ShouldEqual, 2)

	huge := filepath.Join(dir, "huge.png")
	_, code, err = runApp(t, "--width", "1000000", "--height", "1000000", "--snapshot", huge, "--demo")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, code, test.ShouldEqual, 2)
	_, err = os.Stat(huge)
	test.That(t, errors.Is(err, os.ErrNotExist), test.ShouldBeTrue)
}
