package render

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/davix-build/genversion/internal/core"
)

// Status describes what Output.Write did with a destination.
type Status int

const (
	// Unchanged means the destination already held the rendered content.
	Unchanged Status = iota
	// Updated means the destination was written.
	Updated
	// WouldUpdate means the destination differs but DryRun suppressed the write.
	WouldUpdate
	// Printed means the content went to the fallback writer.
	Printed
)

// String returns a short description of the status.
func (s Status) String() string {
	switch s {
	case Unchanged:
		return "up-to-date"
	case Updated:
		return "updated"
	case WouldUpdate:
		return "would update"
	case Printed:
		return "printed"
	default:
		return "unknown"
	}
}

// Options control how Output writes.
type Options struct {
	// DryRun reports what would change without writing anything.
	DryRun bool
}

// Output writes rendered content to a file destination or, when no destination
// is given, to Stdout.
type Output struct {
	fs     core.FileSystem
	stdout io.Writer
	opts   Options
}

// NewOutput creates an Output. A nil fs uses the OS filesystem.
func NewOutput(fs core.FileSystem, stdout io.Writer, opts Options) *Output {
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &Output{fs: fs, stdout: stdout, opts: opts}
}

// Write stores content at dest unless dest already holds exactly that content.
// A missing dest counts as empty. An empty dest prints content followed by a
// newline.
func (o *Output) Write(ctx context.Context, dest string, content string) (Status, error) {
	if dest == "" {
		if _, err := fmt.Fprintln(o.stdout, content); err != nil {
			return Printed, fmt.Errorf("failed to write output: %w", err)
		}
		return Printed, nil
	}

	// A missing dest reads as empty, so empty content never creates it.
	existing, err := o.fs.ReadFile(ctx, dest)
	if err != nil && !core.IsNotExist(err) {
		return Unchanged, fmt.Errorf("failed to read %q: %w", dest, err)
	}
	if bytes.Equal(existing, []byte(content)) {
		return Unchanged, nil
	}

	if o.opts.DryRun {
		return WouldUpdate, nil
	}

	if err := o.fs.WriteFile(ctx, dest, []byte(content), core.PermStamp); err != nil {
		return Unchanged, fmt.Errorf("failed to write %q: %w", dest, err)
	}
	return Updated, nil
}
