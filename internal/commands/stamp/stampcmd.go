package stamp

import (
	"context"
	"errors"
	"fmt"

	"github.com/davix-build/genversion/internal/cliflags"
	"github.com/davix-build/genversion/internal/config"
	"github.com/davix-build/genversion/internal/core"
	"github.com/davix-build/genversion/internal/gitrepo"
	"github.com/davix-build/genversion/internal/printer"
	"github.com/davix-build/genversion/internal/render"
	"github.com/davix-build/genversion/internal/stampfile"
	"github.com/urfave/cli/v3"
)

// Run returns the "stamp" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "stamp",
		Usage: "Write the version into a manifest field (package.json, Cargo.toml, ...)",
		UsageText: `genversion stamp --file <path> [options]

The format is detected from the file extension and the field from the file
name unless --format and --field are given. The value is a template and
defaults to @VERSION_FULL@. The file is only written when the stored value
differs.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Manifest file to update",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "File format: json, yaml, toml, raw, regex",
			},
			&cli.StringFlag{
				Name:  "field",
				Usage: "Dot-notation path of the version field",
			},
			&cli.StringFlag{
				Name:  "pattern",
				Usage: "Regular expression with one capturing group (regex format)",
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "Template for the stored value",
				Value: render.PlaceholderFull,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runStampCmd(ctx, cmd, cfg)
		},
	}
}

func runStampCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	target := stampfile.Target{
		Path:    cmd.String("file"),
		Format:  stampfile.Format(cmd.String("format")),
		Field:   cmd.String("field"),
		Pattern: cmd.String("pattern"),
	}
	if target.Format != "" && !target.Format.IsValid() {
		return &config.ConfigError{Reason: fmt.Sprintf("unknown format %q", target.Format)}
	}

	res, err := cliflags.Resolve(ctx, cmd, cfg)
	if errors.Is(err, gitrepo.ErrNotInRepository) {
		printer.PrintNotice(fmt.Sprintf("Cannot regenerate %s from git", target.Path))
		return nil
	}
	if err != nil {
		return err
	}

	value := render.Apply(cmd.String("value"), render.Replacements(res.Descriptor, res.Version))
	stamper := stampfile.NewStamper(core.NewOSFileSystem(), cliflags.RenderOptions(cmd))

	status, err := stamper.Stamp(ctx, target, value)
	if err != nil {
		return err
	}

	switch status {
	case render.Unchanged:
		printer.PrintUpToDate(target.Path)
	case render.Updated:
		printer.PrintUpdated(target.Path, value)
	case render.WouldUpdate:
		printer.PrintWouldUpdate(target.Path, value)
	}
	return nil
}
