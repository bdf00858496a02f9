// Package testutils holds helpers shared by command tests.
package testutils

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/davix-build/genversion/internal/cliflags"
	"github.com/davix-build/genversion/internal/config"
	"github.com/davix-build/genversion/internal/printer"
	"github.com/urfave/cli/v3"
)

// BuildCLIForTests returns a root command carrying the global flags and the
// given subcommands. Primary output goes to the returned buffer.
func BuildCLIForTests(cfg *config.Config, commands []*cli.Command) (*cli.Command, *bytes.Buffer) {
	var stdout bytes.Buffer
	return &cli.Command{
		Name:     "genversion",
		Flags:    cliflags.GlobalFlags(cfg),
		Commands: commands,
		Writer:   &stdout,
	}, &stdout
}

// RunCLITest runs app in dir and fails the test on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string, dir string) {
	t.Helper()
	if err := RunCLITestAllowError(t, app, args, dir); err != nil {
		t.Fatalf("CLI run failed: %v", err)
	}
}

// RunCLITestAllowError runs app in dir and returns its error.
func RunCLITestAllowError(t *testing.T, app *cli.Command, args []string, dir string) error {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(origDir) }()

	return app.Run(context.Background(), args)
}

// CaptureStatus redirects printer output to a buffer until the test ends.
func CaptureStatus(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := printer.SetOutput(&buf)
	printer.SetNoColor(true)
	t.Cleanup(func() { printer.SetOutput(prev) })
	return &buf
}
