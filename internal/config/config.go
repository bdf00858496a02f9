package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = ".genversion.yaml"

// Config mirrors the command-line options so that a project can pin them in
// a checked-in file. Flags and environment variables take precedence.
type Config struct {
	Template       string `yaml:"template,omitempty"`
	TemplateString string `yaml:"template-string,omitempty"`
	Out            string `yaml:"out,omitempty"`
	CustomVersion  string `yaml:"custom-version,omitempty"`
	SourceDir      string `yaml:"source-dir,omitempty"`

	// dir is the directory the configuration was loaded from.
	dir string
}

// Dir returns the directory containing the loaded configuration file, or ""
// when no file was loaded.
func (c *Config) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// LoadConfigFn is the loader used by the CLI. Tests replace it to simulate
// load failures.
var LoadConfigFn = loadConfig

// loadConfig reads path with strict decoding so that misspelled keys are
// reported instead of silently ignored. A missing file yields an empty Config.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %q: %w", path, err)
	}
	cfg.dir = filepath.Dir(abs)
	cfg.resolveRelative()

	return &cfg, nil
}

// resolveRelative makes file paths in the config relative to the config's
// own directory rather than the caller's working directory.
func (c *Config) resolveRelative() {
	for _, p := range []*string{&c.Template, &c.Out, &c.SourceDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(c.dir, *p)
		}
	}
}
