package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/davix-build/genversion/internal/logging"
)

// ErrNotInRepository means the tool is not running from inside the git
// repository it expects, typically because it is building from an exported
// release tarball. Callers should treat it as a clean early exit.
var ErrNotInRepository = errors.New("not inside the expected git repository")

// Git runs git commands in a working directory.
type Git struct {
	dir         string
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// New creates a Git that runs commands in dir. An empty dir means the
// current working directory.
func New(dir string) *Git {
	return &Git{dir: dir, execCommand: exec.CommandContext}
}

// Toplevel returns the root of the working tree containing the Git directory.
func (g *Git) Toplevel(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("git rev-parse returned an empty top-level path")
	}
	return out, nil
}

// Describe returns the output of `git describe --dirty`, trimmed.
func (g *Git) Describe(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "describe", "--dirty")
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("git describe returned no output")
	}
	return out, nil
}

// Locate verifies that the Git directory is inside a git working tree whose root is
// expectedRoot and returns a Git rooted there. Failure to find a repository,
// or finding a different one, yields an error wrapping ErrNotInRepository.
func (g *Git) Locate(ctx context.Context, expectedRoot string) (*Git, error) {
	top, err := g.Toplevel(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrNotInRepository, err)
	}

	want := normalizePath(expectedRoot)
	got := normalizePath(top)
	if got != want {
		return nil, fmt.Errorf("%w: repository root %s differs from %s", ErrNotInRepository, got, want)
	}

	return &Git{dir: top, execCommand: g.execCommand}, nil
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	logging.Logger().Debug("running git", "args", args, "dir", g.dir)
	cmd := g.execCommand(ctx, "git", args...)
	cmd.Dir = g.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", FormatGitError(err, "git "+strings.Join(args, " "), stderr.String())
	}
	return strings.TrimSpace(stdout.String()), nil
}

// normalizePath makes two spellings of the same directory compare equal.
func normalizePath(p string) string {
	p = filepath.Clean(filepath.FromSlash(p))
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return p
}

// DescribeRepository locates the repository rooted at expectedRoot and
// describes its HEAD.
func (g *Git) DescribeRepository(ctx context.Context, expectedRoot string) (string, error) {
	located, err := g.Locate(ctx, expectedRoot)
	if err != nil {
		return "", err
	}
	return located.Describe(ctx)
}
