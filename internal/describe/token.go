package describe

import (
	"strings"
)

// TokenKind identifies the grammar rule that produced a Token.
type TokenKind int

const (
	// TokenDirty marks an uncommitted-changes suffix.
	TokenDirty TokenKind = iota + 1
	// TokenPrefix is a stripped tag prefix ("v" or "R_").
	TokenPrefix
	// TokenHash is the abbreviated commit id, without its "g" marker.
	TokenHash
	// TokenDistance is the number of commits since the tag.
	TokenDistance
	// TokenFragment is one numeric version component.
	TokenFragment
)

// String returns the name of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenDirty:
		return "dirty"
	case TokenPrefix:
		return "prefix"
	case TokenHash:
		return "hash"
	case TokenDistance:
		return "distance"
	case TokenFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Token is a single typed piece of a descriptor string.
type Token struct {
	Kind  TokenKind
	Value string
}

const (
	dirtySuffix = "-dirty"
	hashMarker  = "g"

	// maxDescriptorLength bounds the input accepted by Tokenize.
	maxDescriptorLength = 256
)

var (
	// tagPrefixes are tried in order; at most one is stripped.
	tagPrefixes = []string{"v", "R_"}

	// fragmentDelimiters are tried in priority order; the first one present wins.
	fragmentDelimiters = []string{"_", ".", "-"}
)

// Tokenize splits a descriptor string into typed tokens. Surrounding whitespace
// is ignored. Tokens are returned in the order their rules ran, so fragments
// always come last.
func Tokenize(raw string) ([]Token, error) {
	input := strings.TrimSpace(raw)
	if len(input) > maxDescriptorLength {
		return nil, parseErrorf(raw, "descriptor exceeds maximum length of %d", maxDescriptorLength)
	}

	var tokens []Token
	rest := input

	if tok, remaining, ok := scanDirty(rest); ok {
		tokens = append(tokens, tok)
		rest = remaining
	}

	if tok, remaining, ok := scanPrefix(rest); ok {
		tokens = append(tokens, tok)
		rest = remaining
	}

	tok, remaining, ok, err := scanHash(raw, rest)
	if err != nil {
		return nil, err
	}
	if ok {
		tokens = append(tokens, tok)
		rest = remaining

		tok, remaining, err = scanDistance(raw, rest)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		rest = remaining
	}

	fragments, err := scanFragments(raw, rest)
	if err != nil {
		return nil, err
	}
	return append(tokens, fragments...), nil
}

func scanDirty(s string) (Token, string, bool) {
	if !strings.HasSuffix(s, dirtySuffix) {
		return Token{}, s, false
	}
	return Token{Kind: TokenDirty, Value: dirtySuffix[1:]}, strings.TrimSuffix(s, dirtySuffix), true
}

func scanPrefix(s string) (Token, string, bool) {
	for _, prefix := range tagPrefixes {
		if strings.HasPrefix(s, prefix) {
			return Token{Kind: TokenPrefix, Value: prefix}, s[len(prefix):], true
		}
	}
	return Token{}, s, false
}

func scanHash(raw, s string) (Token, string, bool, error) {
	head, last := splitLast(s, "-")
	if !strings.HasPrefix(last, hashMarker) {
		return Token{}, s, false, nil
	}
	hash := last[len(hashMarker):]
	if hash == "" {
		return Token{}, s, false, parseErrorf(raw, "empty commit hash after %q marker", hashMarker)
	}
	return Token{Kind: TokenHash, Value: hash}, head, true, nil
}

func scanDistance(raw, s string) (Token, string, error) {
	head, last := splitLast(s, "-")
	if !isAllDigits(last) {
		return Token{}, s, parseErrorf(raw, "commit distance %q is not a number", last)
	}
	return Token{Kind: TokenDistance, Value: last}, head, nil
}

func scanFragments(raw, s string) ([]Token, error) {
	for _, delim := range fragmentDelimiters {
		if !strings.Contains(s, delim) {
			continue
		}
		parts := strings.Split(s, delim)
		tokens := make([]Token, len(parts))
		for i, p := range parts {
			tokens[i] = Token{Kind: TokenFragment, Value: p}
		}
		return tokens, nil
	}
	return nil, parseErrorf(raw, "no version delimiter found in %q", s)
}

// splitLast splits s at the last occurrence of sep. When sep does not occur,
// head is empty and last is s.
func splitLast(s, sep string) (head, last string) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return "", s
	}
	return s[:i], s[i+len(sep):]
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
