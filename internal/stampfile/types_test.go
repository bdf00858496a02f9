package stampfile

import "testing"

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, true},
		{FormatYAML, true},
		{FormatTOML, true},
		{FormatRaw, true},
		{FormatRegex, true},
		{Format("invalid"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsValid(); got != tt.want {
				t.Errorf("Format(%q).IsValid() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatForFile(t *testing.T) {
	tests := map[string]Format{
		"package.json":        FormatJSON,
		"charts/a/Chart.yaml": FormatYAML,
		"config.yml":          FormatYAML,
		"Cargo.toml":          FormatTOML,
		"VERSION":             FormatRaw,
		"version.txt":         FormatRaw,
	}
	for path, want := range tests {
		if got := FormatForFile(path); got != want {
			t.Errorf("FormatForFile(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestFieldForFile(t *testing.T) {
	tests := map[string]string{
		"package.json":        "version",
		"rust/Cargo.toml":     "package.version",
		"pyproject.toml":      "project.version",
		"charts/a/Chart.yaml": "version",
		"other.json":          "version",
	}
	for path, want := range tests {
		if got := FieldForFile(path); got != want {
			t.Errorf("FieldForFile(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestTarget_Resolved(t *testing.T) {
	got := Target{Path: "Cargo.toml"}.resolved()
	if got.Format != FormatTOML || got.Field != "package.version" {
		t.Errorf("resolved() = %+v", got)
	}

	raw := Target{Path: "VERSION"}.resolved()
	if raw.Format != FormatRaw || raw.Field != "" {
		t.Errorf("resolved() = %+v", raw)
	}
}
