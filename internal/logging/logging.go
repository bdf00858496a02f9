// Package logging provides the process-wide debug logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "genversion",
		Level:  log.WarnLevel,
	})
}

// Logger returns the shared logger.
func Logger() *log.Logger {
	return logger
}

// SetVerbose switches between debug and warning level output.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.WarnLevel)
}

// SetOutput redirects log output, for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}
