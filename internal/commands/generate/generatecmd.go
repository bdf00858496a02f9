package generate

import (
	"context"
	"errors"
	"fmt"

	"github.com/davix-build/genversion/internal/cliflags"
	"github.com/davix-build/genversion/internal/config"
	"github.com/davix-build/genversion/internal/core"
	"github.com/davix-build/genversion/internal/gitrepo"
	"github.com/davix-build/genversion/internal/logging"
	"github.com/davix-build/genversion/internal/printer"
	"github.com/davix-build/genversion/internal/render"
	"github.com/urfave/cli/v3"
)

// Flags returns the template and output flags of the root command.
func Flags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "template",
			Aliases: []string{"t"},
			Usage:   "The template input file",
			Value:   cfg.Template,
			Local:   true,
		},
		&cli.StringFlag{
			Name:    "template-string",
			Aliases: []string{"s"},
			Usage:   "The template string",
			Value:   cfg.TemplateString,
			Local:   true,
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "The file to output; stdout is used when not given",
			Value:   cfg.Out,
			Local:   true,
		},
	}
}

// Action returns the root action, which renders the template.
func Action(cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return runGenerateCmd(ctx, cmd, cfg)
	}
}

func runGenerateCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	opts := config.Options{
		TemplateFile:   cmd.String("template"),
		TemplateString: cmd.String("template-string"),
		Out:            cmd.String("out"),
	}
	// A template input given on the command line replaces whichever one the
	// config file supplied. Both inputs from the same layer still conflict.
	switch {
	case cmd.IsSet("template") && !cmd.IsSet("template-string"):
		opts.TemplateString = ""
	case cmd.IsSet("template-string") && !cmd.IsSet("template"):
		opts.TemplateFile = ""
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	res, err := cliflags.Resolve(ctx, cmd, cfg)
	if errors.Is(err, gitrepo.ErrNotInRepository) {
		// Expected when building from an exported source tarball.
		logging.Logger().Debug("skipping generation", "reason", err)
		printer.PrintNotice(fmt.Sprintf("Cannot regenerate %s from git", destLabel(opts.Out)))
		return nil
	}
	if err != nil {
		return err
	}

	fs := core.NewOSFileSystem()
	tpl, err := opts.Template(ctx, fs)
	if err != nil {
		return err
	}

	content := render.Apply(tpl, render.Replacements(res.Descriptor, res.Version))
	output := render.NewOutput(fs, cliflags.Stdout(cmd), cliflags.RenderOptions(cmd))

	status, err := output.Write(ctx, opts.Out, content)
	if err != nil {
		return err
	}
	logging.Logger().Debug("render complete", "dest", destLabel(opts.Out), "status", status)

	full := res.Version.String()
	switch status {
	case render.Unchanged:
		printer.PrintUpToDate(opts.Out)
	case render.Updated:
		printer.PrintUpdated(opts.Out, full)
	case render.WouldUpdate:
		printer.PrintWouldUpdate(opts.Out, full)
	}
	return nil
}

func destLabel(dest string) string {
	if dest == "" {
		return "output"
	}
	return dest
}
