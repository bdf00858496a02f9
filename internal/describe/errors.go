package describe

import "fmt"

// ParseError reports a descriptor string that does not match the describe grammar.
type ParseError struct {
	// Input is the descriptor string as given by the caller.
	Input string

	// Reason describes the rule that failed.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse version descriptor %q: %s", e.Input, e.Reason)
}

func parseErrorf(input, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
