package stampfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/davix-build/genversion/internal/core"
	"github.com/davix-build/genversion/internal/render"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"
)

// Stamper writes versions into manifest files.
type Stamper struct {
	fs   core.FileSystem
	opts render.Options
}

// NewStamper creates a Stamper. A nil fs uses the OS filesystem.
func NewStamper(fs core.FileSystem, opts render.Options) *Stamper {
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &Stamper{fs: fs, opts: opts}
}

// Stamp stores version at t unless it is already there. Raw targets that do
// not exist yet are created; other formats must already exist.
func (s *Stamper) Stamp(ctx context.Context, t Target, version string) (render.Status, error) {
	t, err := validate(t)
	if err != nil {
		return render.Unchanged, err
	}

	data, err := s.fs.ReadFile(ctx, t.Path)
	if err != nil && !(core.IsNotExist(err) && t.Format == FormatRaw) {
		return render.Unchanged, fmt.Errorf("failed to read file %q: %w", t.Path, err)
	}

	if err == nil {
		current, err := currentValue(data, t)
		if err != nil {
			return render.Unchanged, err
		}
		if current == version {
			return render.Unchanged, nil
		}
	}

	if s.opts.DryRun {
		return render.WouldUpdate, nil
	}

	updated, err := updateContent(data, t, version)
	if err != nil {
		return render.Unchanged, err
	}
	if err := s.fs.WriteFile(ctx, t.Path, updated, core.PermStamp); err != nil {
		return render.Unchanged, fmt.Errorf("failed to write file %q: %w", t.Path, err)
	}
	return render.Updated, nil
}

func validate(t Target) (Target, error) {
	if t.Path == "" {
		return t, fmt.Errorf("file path is required")
	}
	t = t.resolved()
	if !t.Format.IsValid() {
		return t, fmt.Errorf("invalid format: %s", t.Format)
	}
	return t, nil
}

func updateContent(data []byte, t Target, version string) ([]byte, error) {
	switch t.Format {
	case FormatJSON:
		// sjson edits in place, keeping key order and indentation.
		updated, err := sjson.SetBytes(data, t.Field, version)
		if err != nil {
			return nil, fmt.Errorf("failed to set version in %q: %w", t.Path, err)
		}
		return ensureTrailingNewline(updated), nil
	case FormatYAML:
		var obj map[string]any
		if err := yaml.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse YAML in %q: %w", t.Path, err)
		}
		if err := setNestedValue(obj, t.Field, version); err != nil {
			return nil, fmt.Errorf("in file %q: %w", t.Path, err)
		}
		updated, err := yaml.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML for %q: %w", t.Path, err)
		}
		return updated, nil
	case FormatTOML:
		var obj map[string]any
		if err := toml.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse TOML in %q: %w", t.Path, err)
		}
		if err := setNestedValue(obj, t.Field, version); err != nil {
			return nil, fmt.Errorf("in file %q: %w", t.Path, err)
		}
		updated, err := toml.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal TOML for %q: %w", t.Path, err)
		}
		return updated, nil
	case FormatRaw:
		return ensureTrailingNewline([]byte(version)), nil
	case FormatRegex:
		return replaceGroup(data, t, version)
	default:
		return nil, fmt.Errorf("unsupported format: %s", t.Format)
	}
}

// replaceGroup swaps the first capturing group of the first match for version,
// leaving the rest of the file untouched.
func replaceGroup(data []byte, t Target, version string) ([]byte, error) {
	re, err := compilePattern(t.Pattern)
	if err != nil {
		return nil, err
	}
	loc := re.FindSubmatchIndex(data)
	if loc == nil || loc[2] < 0 {
		return nil, fmt.Errorf("pattern %q does not match contents of %q", t.Pattern, t.Path)
	}

	out := make([]byte, 0, len(data)+len(version))
	out = append(out, data[:loc[2]]...)
	out = append(out, version...)
	out = append(out, data[loc[3]:]...)
	return out, nil
}

// setNestedValue sets a value in a nested map using dot notation, creating
// intermediate maps as needed.
func setNestedValue(obj map[string]any, field string, value any) error {
	parts := strings.Split(field, ".")
	current := obj

	for i := 0; i < len(parts)-1; i++ {
		next, exists := current[parts[i]]
		if !exists {
			m := make(map[string]any)
			current[parts[i]] = m
			current = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q is not an object", strings.Join(parts[:i+1], "."))
		}
		current = m
	}

	current[parts[len(parts)-1]] = value
	return nil
}

func ensureTrailingNewline(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] != '\n' {
		return append(b, '\n')
	}
	return b
}
