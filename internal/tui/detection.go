package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI systems.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_HOME",
	"BUILDKITE",
	"TF_BUILD",
}

// isTerminal is replaced in tests.
var isTerminal = term.IsTerminal

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return isTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// IsCI reports whether a known CI environment variable is set.
func IsCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// WantsColor reports whether styled output should be used: stdout must be a
// terminal, NO_COLOR must be unset, and the run must not be inside CI, where
// build logs are usually captured as plain text.
func WantsColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTTY() && !IsCI()
}
