package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"template: include/version.h.in",
		"out: include/version.h",
		"custom-version: v1.2.3",
		"",
	}, "\n"))
	dir := filepath.Dir(path)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}

	if cfg.Template != filepath.Join(dir, "include", "version.h.in") {
		t.Errorf("Template = %q", cfg.Template)
	}
	if cfg.Out != filepath.Join(dir, "include", "version.h") {
		t.Errorf("Out = %q", cfg.Out)
	}
	if cfg.CustomVersion != "v1.2.3" {
		t.Errorf("CustomVersion = %q", cfg.CustomVersion)
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), dir)
	}
}

func TestLoadConfig_AbsolutePathsKept(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "out.txt")
	path := writeConfig(t, "out: "+abs+"\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}
	if cfg.Out != abs {
		t.Errorf("Out = %q, want %q", cfg.Out, abs)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected empty config, got nil")
	}
	if cfg.Dir() != "" {
		t.Errorf("Dir() = %q, want empty", cfg.Dir())
	}
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := writeConfig(t, "templat: typo.in\n")
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "template: [unclosed\n")
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestConfig_DirNil(t *testing.T) {
	var cfg *Config
	if cfg.Dir() != "" {
		t.Error("nil Config should have empty Dir()")
	}
}
