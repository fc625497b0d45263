// Package gitsource materializes documentation from a remote git repository
// into a temporary workspace so CI can check docs it does not have locally.
package gitsource

import (
	"context"
	"log/slog"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	dcerrors "git.home.luguber.info/inful/doccheck/internal/errors"
	"git.home.luguber.info/inful/doccheck/internal/logfields"
)

// Checkout is a cloned repository on local disk.
type Checkout struct {
	URL  string
	Path string // workspace directory holding the clone
}

// Clone fetches the repository at url (optionally a specific branch) into a
// fresh temporary directory. The caller owns cleanup via Remove.
func Clone(ctx context.Context, url, branch string) (*Checkout, error) {
	dir, err := os.MkdirTemp("", "doccheck-repo-")
	if err != nil {
		return nil, dcerrors.GitClone(url, err)
	}

	opts := &git.CloneOptions{
		URL: url,
	}
	if branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(branch)
		opts.SingleBranch = true
	}

	repo, err := git.PlainCloneContext(ctx, dir, false, opts)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, dcerrors.GitClone(url, err)
	}

	if ref, err := repo.Head(); err == nil {
		slog.Info("Repository cloned",
			slog.String("url", url),
			slog.String("commit", ref.Hash().String()[:8]),
			logfields.File(dir))
	}
	return &Checkout{URL: url, Path: dir}, nil
}

// Remove deletes the temporary workspace.
func (c *Checkout) Remove() error {
	return os.RemoveAll(c.Path)
}
