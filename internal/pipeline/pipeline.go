// Package pipeline obtains a descriptor string from its source and turns it
// into a parsed descriptor and an assembled version.
package pipeline

import (
	"context"
	"fmt"

	"github.com/davix-build/genversion/internal/describe"
	"github.com/davix-build/genversion/internal/gitrepo"
	"github.com/davix-build/genversion/internal/logging"
	"github.com/davix-build/genversion/internal/semver"
)

// GitDescriber produces a describe string for the repository at expectedRoot.
type GitDescriber interface {
	DescribeRepository(ctx context.Context, expectedRoot string) (string, error)
}

// NewGitFn creates the describer used when no custom version is given.
// Tests replace it to avoid running git.
var NewGitFn = func(dir string) GitDescriber {
	return gitrepo.New(dir)
}

// Source selects where the descriptor string comes from.
type Source struct {
	// CustomVersion bypasses git when non-empty.
	CustomVersion string

	// ExpectedRoot is the directory the git repository root must match.
	ExpectedRoot string
}

// Result is a parsed descriptor and the version derived from it.
type Result struct {
	Descriptor describe.Descriptor
	Version    semver.Version
}

// Resolve reads the descriptor string from src, parses and assembles it.
// Errors wrapping gitrepo.ErrNotInRepository are returned unchanged in kind.
func Resolve(ctx context.Context, src Source) (Result, error) {
	logger := logging.Logger()

	raw := src.CustomVersion
	if raw == "" {
		logger.Debug("querying git", "root", src.ExpectedRoot)
		out, err := NewGitFn(src.ExpectedRoot).DescribeRepository(ctx, src.ExpectedRoot)
		if err != nil {
			return Result{}, err
		}
		raw = out
	} else {
		logger.Debug("using custom version", "value", raw)
	}

	d, err := describe.Parse(raw)
	if err != nil {
		return Result{}, err
	}
	hash, _ := d.CommitHash()
	distance, _ := d.CommitsSinceTag()
	logger.Debug("parsed descriptor",
		"raw", d.Raw(),
		"dirty", d.Dirty(),
		"prefix", d.Prefix(),
		"hash", hash,
		"distance", distance,
		"fragments", d.Fragments(),
	)

	v, err := semver.Assemble(d)
	if err != nil {
		return Result{}, fmt.Errorf("failed to assemble version: %w", err)
	}
	logger.Debug("assembled version", "version", v.String())

	return Result{Descriptor: d, Version: v}, nil
}
