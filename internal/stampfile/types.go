package stampfile

import (
	"path/filepath"
	"strings"
)

// Format is a manifest file format.
type Format string

const (
	// FormatJSON is for JSON files (package.json, composer.json).
	FormatJSON Format = "json"

	// FormatYAML is for YAML files (Chart.yaml, pubspec.yaml).
	FormatYAML Format = "yaml"

	// FormatTOML is for TOML files (Cargo.toml, pyproject.toml).
	FormatTOML Format = "toml"

	// FormatRaw is for files whose whole content is the version.
	FormatRaw Format = "raw"

	// FormatRegex is for files where a capturing group locates the version.
	FormatRegex Format = "regex"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTOML, FormatRaw, FormatRegex:
		return true
	default:
		return false
	}
}

// Target describes where a version lives inside a file.
type Target struct {
	// Path is the file path.
	Path string

	// Format is the file format. When empty it is detected from Path.
	Format Format

	// Field is the dot-notation path to the version (JSON/YAML/TOML).
	// When empty it is derived from the file name.
	Field string

	// Pattern is a regular expression with one capturing group (regex format).
	Pattern string
}

// resolved fills in Format and Field defaults.
func (t Target) resolved() Target {
	if t.Format == "" {
		t.Format = FormatForFile(t.Path)
	}
	if t.Field == "" && t.Format != FormatRaw && t.Format != FormatRegex {
		t.Field = FieldForFile(t.Path)
	}
	return t
}

// knownFields maps common manifest names to their version field.
var knownFields = map[string]string{
	"package.json":   "version",
	"composer.json":  "version",
	"Cargo.toml":     "package.version",
	"pyproject.toml": "project.version",
	"Chart.yaml":     "version",
	"pubspec.yaml":   "version",
}

// FieldForFile returns the usual version field for a manifest file name.
func FieldForFile(path string) string {
	if field, ok := knownFields[filepath.Base(path)]; ok {
		return field
	}
	return "version"
}

// FormatForFile detects the format from the file extension.
func FormatForFile(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatRaw
	}
}
