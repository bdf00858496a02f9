package show

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/davix-build/genversion/internal/cliflags"
	"github.com/davix-build/genversion/internal/config"
	"github.com/davix-build/genversion/internal/gitrepo"
	"github.com/davix-build/genversion/internal/pipeline"
	"github.com/davix-build/genversion/internal/printer"
	"github.com/tidwall/sjson"
	"github.com/urfave/cli/v3"
)

// Run returns the "show" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the descriptor and the version derived from it",
		UsageText: "genversion show [--json] [--custom-version <describe>]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print a JSON object instead of text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runShowCmd(ctx, cmd, cfg)
		},
	}
}

func runShowCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	res, err := cliflags.Resolve(ctx, cmd, cfg)
	if errors.Is(err, gitrepo.ErrNotInRepository) {
		printer.PrintNotice("Cannot determine version from git")
		return nil
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		data, err := toJSON(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cliflags.Stdout(cmd), string(data))
		return err
	}

	printText(res)
	return nil
}

// toJSON builds the JSON document field by field so that absent optional
// values are omitted rather than rendered as zero values.
func toJSON(res pipeline.Result) ([]byte, error) {
	d, v := res.Descriptor, res.Version
	doc := []byte("{}")

	type field struct {
		path  string
		value any
	}
	fields := []field{
		{"describe", d.Raw()},
		{"version", v.String()},
		{"major", v.Major()},
		{"minor", v.Minor()},
	}
	if patch, ok := v.Patch(); ok {
		fields = append(fields, field{"patch", patch})
	}
	if mini, ok := v.MiniPatch(); ok {
		fields = append(fields, field{"miniPatch", mini})
	}
	if hash, ok := d.CommitHash(); ok {
		distance, _ := d.CommitsSinceTag()
		fields = append(fields, field{"commit", hash}, field{"commitsSinceTag", distance})
	}
	fields = append(fields, field{"dirty", d.Dirty()})

	for _, f := range fields {
		var err error
		doc, err = sjson.SetBytes(doc, f.path, f.value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", f.path, err)
		}
	}
	return doc, nil
}

func printText(res pipeline.Result) {
	d, v := res.Descriptor, res.Version

	printer.PrintField("Describe", d.Raw())
	printer.PrintField("Version", v.String())
	printer.PrintField("Release", v.Triplet())
	if mini, ok := v.MiniPatch(); ok {
		printer.PrintField("Mini-patch", mini)
	}
	if hash, ok := d.CommitHash(); ok {
		distance, _ := d.CommitsSinceTag()
		printer.PrintField("Commit", hash)
		printer.PrintField("Commits since tag", strconv.Itoa(distance))
	}
	printer.PrintField("Dirty", strconv.FormatBool(d.Dirty()))
}
