package render

import (
	"strconv"
	"strings"

	"github.com/davix-build/genversion/internal/describe"
	"github.com/davix-build/genversion/internal/semver"
)

// Recognized placeholders. None is a substring of another.
const (
	PlaceholderDescribe  = "@GIT_DESCRIBE@"
	PlaceholderMajor     = "@VERSION_MAJOR@"
	PlaceholderMinor     = "@VERSION_MINOR@"
	PlaceholderPatch     = "@VERSION_PATCH@"
	PlaceholderMiniPatch = "@VERSION_MINIPATCH@"
	PlaceholderFull      = "@VERSION_FULL@"
)

// Placeholders lists every recognized placeholder in substitution order.
var Placeholders = []string{
	PlaceholderDescribe,
	PlaceholderMajor,
	PlaceholderMinor,
	PlaceholderPatch,
	PlaceholderMiniPatch,
	PlaceholderFull,
}

// Replacement pairs a placeholder with an optional value.
type Replacement struct {
	Placeholder string
	Value       string
	present     bool
}

// Set returns a replacement that substitutes value for placeholder.
func Set(placeholder, value string) Replacement {
	return Replacement{Placeholder: placeholder, Value: value, present: true}
}

// Unset returns a replacement that leaves placeholder untouched.
func Unset(placeholder string) Replacement {
	return Replacement{Placeholder: placeholder}
}

// Present reports whether the replacement carries a value.
func (r Replacement) Present() bool { return r.present }

// Replacements returns the values for every placeholder, in substitution order.
func Replacements(d describe.Descriptor, v semver.Version) []Replacement {
	reps := []Replacement{
		Set(PlaceholderDescribe, d.String()),
		Set(PlaceholderMajor, strconv.Itoa(v.Major())),
		Set(PlaceholderMinor, strconv.Itoa(v.Minor())),
	}

	if patch, ok := v.Patch(); ok {
		reps = append(reps, Set(PlaceholderPatch, strconv.Itoa(patch)))
	} else {
		reps = append(reps, Unset(PlaceholderPatch))
	}

	if mini, ok := v.MiniPatch(); ok {
		reps = append(reps, Set(PlaceholderMiniPatch, mini))
	} else {
		reps = append(reps, Unset(PlaceholderMiniPatch))
	}

	return append(reps, Set(PlaceholderFull, v.String()))
}

// Apply replaces every occurrence of each present placeholder, in order, using
// plain substring replacement. Absent placeholders are left as they are.
func Apply(template string, reps []Replacement) string {
	out := template
	for _, r := range reps {
		if !r.present {
			continue
		}
		out = strings.ReplaceAll(out, r.Placeholder, r.Value)
	}
	return out
}
