// Package cliflags defines flags shared by every command and the helpers that
// turn them into pipeline inputs.
package cliflags

import (
	"context"
	"io"
	"os"

	"github.com/davix-build/genversion/internal/config"
	"github.com/davix-build/genversion/internal/pipeline"
	"github.com/davix-build/genversion/internal/render"
	"github.com/urfave/cli/v3"
)

// Flag names.
const (
	CustomVersion = "custom-version"
	SourceDir     = "source-dir"
	DryRun        = "dry-run"
	Verbose       = "verbose"
	NoColor       = "no-color"
)

// GlobalFlags returns flags accepted by every command. Defaults come from cfg.
func GlobalFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    CustomVersion,
			Usage:   "Don't run git; extract the version from the given string",
			Value:   cfg.CustomVersion,
			Sources: cli.EnvVars("GENVERSION_CUSTOM_VERSION"),
		},
		&cli.StringFlag{
			Name:        SourceDir,
			Usage:       "Directory the git repository root must match",
			Value:       cfg.SourceDir,
			DefaultText: "config directory, else current directory",
			Sources:     cli.EnvVars("GENVERSION_SOURCE_DIR"),
		},
		&cli.BoolFlag{
			Name:  DryRun,
			Usage: "Report what would change without writing files",
		},
		&cli.BoolFlag{
			Name:  Verbose,
			Usage: "Log parsing and git steps to stderr",
		},
		&cli.BoolFlag{
			Name:  NoColor,
			Usage: "Disable colored output",
		},
	}
}

// Resolve builds the version source from the global flags and resolves it.
func Resolve(ctx context.Context, cmd *cli.Command, cfg *config.Config) (pipeline.Result, error) {
	src := pipeline.Source{CustomVersion: cmd.String(CustomVersion)}
	if src.CustomVersion == "" {
		root, err := config.Options{SourceDir: cmd.String(SourceDir)}.ExpectedRoot(cfg)
		if err != nil {
			return pipeline.Result{}, err
		}
		src.ExpectedRoot = root
	}
	return pipeline.Resolve(ctx, src)
}

// RenderOptions returns the write options selected by the global flags.
func RenderOptions(cmd *cli.Command) render.Options {
	return render.Options{DryRun: cmd.Bool(DryRun)}
}

// Stdout returns the writer for primary output.
func Stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
