package semver

import (
	"errors"
	"testing"

	"github.com/davix-build/genversion/internal/describe"
)

func mustAssemble(t *testing.T, raw string) Version {
	t.Helper()
	d, err := describe.Parse(raw)
	if err != nil {
		t.Fatalf("describe.Parse(%q) unexpected error: %v", raw, err)
	}
	v, err := Assemble(d)
	if err != nil {
		t.Fatalf("Assemble(%q) unexpected error: %v", raw, err)
	}
	return v
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		input         string
		wantMajor     int
		wantMinor     int
		wantPatch     int
		wantMiniPatch string
		wantString    string
	}{
		{"1.2.3", 1, 2, 3, "", "1.2.3"},
		{"1.2", 1, 2, 0, "", "1.2.0"},
		{"R_0_6_3", 0, 6, 3, "", "0.6.3"},
		{"v1.2.3-5-gabcdef", 1, 2, 3, "5.abcdef", "1.2.3.5.abcdef"},
		{"1.2.3-dirty", 1, 2, 3, "dirty", "1.2.3.dirty"},
		{"1.2.3-5-gabcdef-dirty", 1, 2, 3, "5.abcdef.dirty", "1.2.3.5.abcdef.dirty"},
		{"v0.4-2-g1234567", 0, 4, 0, "2.1234567", "0.4.0.2.1234567"},
		{"010.02.3", 10, 2, 3, "", "10.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := mustAssemble(t, tt.input)

			if v.Major() != tt.wantMajor || v.Minor() != tt.wantMinor {
				t.Errorf("got %d.%d, want %d.%d", v.Major(), v.Minor(), tt.wantMajor, tt.wantMinor)
			}
			patch, ok := v.Patch()
			if !ok {
				t.Error("Patch() should always be present after Assemble")
			}
			if patch != tt.wantPatch {
				t.Errorf("Patch() = %d, want %d", patch, tt.wantPatch)
			}
			mini, hasMini := v.MiniPatch()
			if mini != tt.wantMiniPatch {
				t.Errorf("MiniPatch() = %q, want %q", mini, tt.wantMiniPatch)
			}
			if hasMini != (tt.wantMiniPatch != "") {
				t.Errorf("MiniPatch() present = %v, want %v", hasMini, tt.wantMiniPatch != "")
			}
			if got := v.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
		})
	}
}

func TestVersion_Triplet(t *testing.T) {
	v := mustAssemble(t, "1.2.3-5-gabcdef-dirty")
	if got := v.Triplet(); got != "1.2.3" {
		t.Errorf("Triplet() = %q, want %q", got, "1.2.3")
	}
}

func TestNew(t *testing.T) {
	patch := 7

	t.Run("with patch and mini-patch", func(t *testing.T) {
		v, err := New(1, 0, &patch, "dirty")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := v.String(); got != "1.0.7.dirty" {
			t.Errorf("String() = %q", got)
		}
	})

	t.Run("without patch", func(t *testing.T) {
		v, err := New(1, 0, nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := v.Patch(); ok {
			t.Error("Patch() should be absent")
		}
		if got := v.String(); got != "1.0" {
			t.Errorf("String() = %q, want %q", got, "1.0")
		}
	})

	t.Run("mini-patch without patch", func(t *testing.T) {
		_, err := New(1, 0, nil, "dirty")
		if !errors.Is(err, errMiniPatchWithoutPatch) {
			t.Errorf("expected errMiniPatchWithoutPatch, got %v", err)
		}
	})
}

func TestTriplet_Errors(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
	}{
		{"too few", []string{"1"}},
		{"too many", []string{"1", "2", "3", "4"}},
		{"non numeric", []string{"1", "x"}},
		{"negative", []string{"1", "-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := Triplet(tt.fragments)
			if !errors.Is(err, errInvalidFragments) {
				t.Errorf("Triplet(%q) err = %v, want errInvalidFragments", tt.fragments, err)
			}
		})
	}
}
