package cli

import (
	"context"

	"github.com/davix-build/genversion/internal/cliflags"
	"github.com/davix-build/genversion/internal/commands/generate"
	"github.com/davix-build/genversion/internal/commands/show"
	"github.com/davix-build/genversion/internal/commands/stamp"
	"github.com/davix-build/genversion/internal/config"
	"github.com/davix-build/genversion/internal/logging"
	"github.com/davix-build/genversion/internal/printer"
	"github.com/davix-build/genversion/internal/tui"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command. Running it without a
// subcommand renders the template.
func New(cfg *config.Config, version string) *urfavecli.Command {
	flags := append(generate.Flags(cfg), cliflags.GlobalFlags(cfg)...)

	return &urfavecli.Command{
		Name:    "genversion",
		Version: version,
		Usage:   "Generate version files from git describe output",
		UsageText: `genversion (--template <file> | --template-string <text>) [--out <file>] [options]

Placeholders: @GIT_DESCRIBE@ @VERSION_MAJOR@ @VERSION_MINOR@ @VERSION_PATCH@
              @VERSION_MINIPATCH@ @VERSION_FULL@`,
		EnableShellCompletion: true,
		Flags:                 flags,
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool(cliflags.NoColor) || !tui.WantsColor())
			logging.SetVerbose(cmd.Bool(cliflags.Verbose))
			return ctx, nil
		},
		Action: generate.Action(cfg),
		Commands: []*urfavecli.Command{
			show.Run(cfg),
			stamp.Run(cfg),
		},
	}
}
