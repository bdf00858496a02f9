package gitrepo

import (
	"fmt"
	"regexp"
	"strings"
)

// gitErrorPattern maps recognizable git stderr output to a hint for the user.
type gitErrorPattern struct {
	pattern *regexp.Regexp
	message string
	hint    string
}

// Order matters: more specific patterns come first.
var gitErrorPatterns = []gitErrorPattern{
	{
		pattern: regexp.MustCompile(`(?i)No names found|No tags can describe`),
		message: "no tags found to describe",
		hint:    "create a version tag (e.g. v1.0.0) or pass --custom-version",
	},
	{
		pattern: regexp.MustCompile(`(?i)detected dubious ownership`),
		message: "repository ownership check failed",
		hint:    "add the repository to git's safe.directory list",
	},
	{
		pattern: regexp.MustCompile(`(?i)not a git repository`),
		message: "not a git repository",
		hint:    "run inside the source checkout or pass --custom-version",
	},
}

// CommandError is a failed git invocation.
type CommandError struct {
	Command string
	Stderr  string
	Message string
	Hint    string
	Err     error
}

func (e *CommandError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s failed", e.Command)
	switch {
	case e.Message != "":
		fmt.Fprintf(&sb, ": %s", e.Message)
	case e.Stderr != "":
		fmt.Fprintf(&sb, ": %s", e.Stderr)
	default:
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	if e.Hint != "" {
		fmt.Fprintf(&sb, " (hint: %s)", e.Hint)
	}
	return sb.String()
}

func (e *CommandError) Unwrap() error { return e.Err }

// FormatGitError wraps err with the command that produced it and, when the
// stderr output is recognized, a user-facing hint.
func FormatGitError(err error, command, stderr string) error {
	if err == nil {
		return nil
	}
	ce := &CommandError{
		Command: command,
		Stderr:  strings.TrimSpace(stderr),
		Err:     err,
	}
	for _, p := range gitErrorPatterns {
		if p.pattern.MatchString(stderr) {
			ce.Message = p.message
			ce.Hint = p.hint
			break
		}
	}
	return ce
}
