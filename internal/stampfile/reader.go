package stampfile

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// currentValue extracts the version currently stored in data.
func currentValue(data []byte, t Target) (string, error) {
	switch t.Format {
	case FormatJSON:
		var obj map[string]any
		if err := json.Unmarshal(data, &obj); err != nil {
			return "", fmt.Errorf("failed to parse JSON in %q: %w", t.Path, err)
		}
		return stringField(obj, t)
	case FormatYAML:
		var obj map[string]any
		if err := yaml.Unmarshal(data, &obj); err != nil {
			return "", fmt.Errorf("failed to parse YAML in %q: %w", t.Path, err)
		}
		return stringField(obj, t)
	case FormatTOML:
		var obj map[string]any
		if err := toml.Unmarshal(data, &obj); err != nil {
			return "", fmt.Errorf("failed to parse TOML in %q: %w", t.Path, err)
		}
		return stringField(obj, t)
	case FormatRaw:
		return strings.TrimSpace(string(data)), nil
	case FormatRegex:
		re, err := compilePattern(t.Pattern)
		if err != nil {
			return "", err
		}
		m := re.FindSubmatch(data)
		if m == nil {
			return "", fmt.Errorf("pattern %q does not match contents of %q", t.Pattern, t.Path)
		}
		return string(m[1]), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", t.Format)
	}
}

// stringField reads a dot-notation field. A missing field reads as "" so the
// stamp creates it.
func stringField(obj map[string]any, t Target) (string, error) {
	current := any(obj)
	parts := strings.Split(t.Field, ".")
	for i, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return "", fmt.Errorf("field %q is not an object in %q", strings.Join(parts[:i], "."), t.Path)
		}
		v, exists := m[part]
		if !exists {
			return "", nil
		}
		current = v
	}

	s, ok := current.(string)
	if !ok {
		return "", fmt.Errorf("field %q in %q is not a string", t.Field, t.Path)
	}
	return s, nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern is required for regex format")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("regex pattern %q must have a capturing group", pattern)
	}
	return re, nil
}
