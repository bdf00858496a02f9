package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davix-build/genversion/internal/core"
)

// ConfigError reports invalid or conflicting options. It is raised before any
// version lookup or parsing takes place.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// Options are the resolved inputs of a render run.
type Options struct {
	// TemplateFile is a path to read the template from.
	TemplateFile string

	// TemplateString is a literal template.
	TemplateString string

	// Out is the destination file; empty means stdout.
	Out string

	// CustomVersion, when set, is parsed instead of querying git.
	CustomVersion string

	// SourceDir is the expected repository root.
	SourceDir string
}

// Validate checks that exactly one template input is given.
func (o Options) Validate() error {
	switch {
	case o.TemplateFile == "" && o.TemplateString == "":
		return &ConfigError{Reason: "no input specified; use either --template or --template-string"}
	case o.TemplateFile != "" && o.TemplateString != "":
		return &ConfigError{Reason: "argument --template-string is incompatible with argument --template"}
	}
	return nil
}

// Template returns the template text from whichever input was given.
func (o Options) Template(ctx context.Context, fs core.FileSystem) (string, error) {
	if o.TemplateString != "" {
		return o.TemplateString, nil
	}
	data, err := fs.ReadFile(ctx, o.TemplateFile)
	if err != nil {
		return "", fmt.Errorf("failed to read template %q: %w", o.TemplateFile, err)
	}
	return string(data), nil
}

// ExpectedRoot returns the directory the git repository root must match:
// SourceDir when set, otherwise the config directory, otherwise the
// working directory.
func (o Options) ExpectedRoot(cfg *Config) (string, error) {
	dir := o.SourceDir
	if dir == "" {
		dir = cfg.Dir()
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = wd
	}
	return filepath.Abs(dir)
}
