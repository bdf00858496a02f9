package main

import (
	"context"
	"os"

	"github.com/davix-build/genversion/internal/cli"
	"github.com/davix-build/genversion/internal/config"
	"github.com/davix-build/genversion/internal/printer"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.SetOutput(os.Stderr)
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the command tree with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn(os.Getenv("GENVERSION_CONFIG"))
	if err != nil {
		return err
	}

	app := cli.New(cfg, version)
	return app.Run(context.Background(), args)
}
