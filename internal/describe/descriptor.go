package describe

import (
	"strconv"
)

// Descriptor is a parsed `git describe` string. It is immutable once built.
type Descriptor struct {
	raw             string
	dirty           bool
	prefix          string
	commitHash      string
	commitsSinceTag int
	fragments       []string
}

// Parse tokenizes raw and validates the result into a Descriptor.
// It fails with *ParseError when the grammar cannot be matched, when the
// number of version fragments is not 2 or 3, or when a fragment is not numeric.
func Parse(raw string) (Descriptor, error) {
	tokens, err := Tokenize(raw)
	if err != nil {
		return Descriptor{}, err
	}
	return fromTokens(raw, tokens)
}

func fromTokens(raw string, tokens []Token) (Descriptor, error) {
	d := Descriptor{raw: raw}
	hasDistance := false

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenDirty:
			d.dirty = true
		case TokenPrefix:
			d.prefix = tok.Value
		case TokenHash:
			d.commitHash = tok.Value
		case TokenDistance:
			n, err := strconv.Atoi(tok.Value)
			if err != nil {
				return Descriptor{}, parseErrorf(raw, "commit distance %q: %v", tok.Value, err)
			}
			d.commitsSinceTag = n
			hasDistance = true
		case TokenFragment:
			d.fragments = append(d.fragments, tok.Value)
		}
	}

	if (d.commitHash != "") != hasDistance {
		return Descriptor{}, parseErrorf(raw, "commit hash and commit distance must appear together")
	}

	if len(d.fragments) != 2 && len(d.fragments) != 3 {
		return Descriptor{}, parseErrorf(raw, "expected 2 or 3 version fragments, got %d %q", len(d.fragments), d.fragments)
	}

	for _, f := range d.fragments {
		if !isAllDigits(f) {
			return Descriptor{}, parseErrorf(raw, "version fragment %q is not a number", f)
		}
		if _, err := strconv.Atoi(f); err != nil {
			return Descriptor{}, parseErrorf(raw, "version fragment %q is out of range", f)
		}
	}

	return d, nil
}

// Raw returns the descriptor string exactly as it was given to Parse.
func (d Descriptor) Raw() string { return d.raw }

// String returns the raw descriptor string, not the derived version.
func (d Descriptor) String() string { return d.raw }

// Dirty reports whether the working tree had uncommitted changes.
func (d Descriptor) Dirty() bool { return d.dirty }

// Prefix returns the stripped tag prefix, or "" if there was none.
func (d Descriptor) Prefix() string { return d.prefix }

// CommitHash returns the abbreviated commit id, if the descriptor carried one.
func (d Descriptor) CommitHash() (string, bool) {
	return d.commitHash, d.commitHash != ""
}

// CommitsSinceTag returns the distance from the tag. It is present exactly
// when CommitHash is.
func (d Descriptor) CommitsSinceTag() (int, bool) {
	return d.commitsSinceTag, d.commitHash != ""
}

// Fragments returns a copy of the 2 or 3 version fragments.
func (d Descriptor) Fragments() []string {
	return append([]string(nil), d.fragments...)
}
