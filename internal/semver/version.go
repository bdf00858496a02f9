package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/davix-build/genversion/internal/describe"
)

// Version is a major.minor[.patch][.miniPatch] version derived from a
// describe string. The zero value is "0.0".
type Version struct {
	major     int
	minor     int
	patch     int
	hasPatch  bool
	miniPatch string
}

var (
	// errInvalidFragments is returned when the fragment list cannot form a version.
	errInvalidFragments = errors.New("invalid version fragments")

	// errMiniPatchWithoutPatch guards the rule that a miniPatch needs a patch.
	errMiniPatchWithoutPatch = errors.New("mini-patch requires a patch component")
)

// New builds a Version. A nil patch means the patch component is absent, in
// which case miniPatch must be empty.
func New(major, minor int, patch *int, miniPatch string) (Version, error) {
	v := Version{major: major, minor: minor, miniPatch: miniPatch}
	if patch != nil {
		v.patch = *patch
		v.hasPatch = true
	}
	// Unreachable through Assemble, which always supplies a patch.
	if !v.hasPatch && v.miniPatch != "" {
		return Version{}, errMiniPatchWithoutPatch
	}
	return v, nil
}

// Assemble derives the Version described by d. Two fragments yield a patch of 0.
func Assemble(d describe.Descriptor) (Version, error) {
	major, minor, patch, err := Triplet(d.Fragments())
	if err != nil {
		return Version{}, fmt.Errorf("%w in %q", err, d.Raw())
	}
	return New(major, minor, &patch, MiniPatch(d))
}

// Triplet converts 2 or 3 numeric fragments to major, minor and patch.
func Triplet(fragments []string) (major, minor, patch int, err error) {
	if len(fragments) != 2 && len(fragments) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: expected 2 or 3, got %d", errInvalidFragments, len(fragments))
	}

	nums := make([]int, 3)
	for i, f := range fragments {
		n, convErr := strconv.Atoi(f)
		if convErr != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("%w: %q is not a non-negative integer", errInvalidFragments, f)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// MiniPatch builds the provenance component for d:
//   - "<distance>.<hash>" when a commit hash is present
//   - with ".dirty" appended when the tree was also dirty
//   - "dirty" alone for a dirty tree sitting exactly on a tag
//
// It returns "" when neither applies.
func MiniPatch(d describe.Descriptor) string {
	var parts []string
	if hash, ok := d.CommitHash(); ok {
		distance, _ := d.CommitsSinceTag()
		parts = append(parts, strconv.Itoa(distance), hash)
	}
	if d.Dirty() {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, ".")
}

// Major returns the major component.
func (v Version) Major() int { return v.major }

// Minor returns the minor component.
func (v Version) Minor() int { return v.minor }

// Patch returns the patch component and whether it is present.
func (v Version) Patch() (int, bool) { return v.patch, v.hasPatch }

// MiniPatch returns the provenance component and whether it is present.
func (v Version) MiniPatch() (string, bool) { return v.miniPatch, v.miniPatch != "" }

// String returns the dot-joined version, e.g. "1.2.3" or "1.2.3.5.abcdef.dirty".
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(24)
	sb.WriteString(v.Triplet())
	if v.miniPatch != "" {
		sb.WriteByte('.')
		sb.WriteString(v.miniPatch)
	}
	return sb.String()
}

// Triplet returns the version without its miniPatch.
func (v Version) Triplet() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(strconv.Itoa(v.major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.minor))
	if v.hasPatch {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(v.patch))
	}
	return sb.String()
}
