package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/doccheck/internal/check"
	"git.home.luguber.info/inful/doccheck/internal/gitsource"
)

// CheckCmd implements the 'check' command: one full scan-and-check run with a
// CI-consumable exit code.
type CheckCmd struct {
	Format string `short:"f" help:"Output format (text or json); overrides config" enum:",text,json" default:""`
	Repo   string `help:"Check documentation cloned from this git URL instead of the local tree"`
	Branch string `help:"Branch to clone (requires --repo)"`
}

// ErrChecksFailed signals per-block failures or infrastructure errors; the
// summary was already printed.
var ErrChecksFailed = errors.New("documentation check failed")

func (cc *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if cc.Format != "" {
		cfg.Check.Format = cc.Format
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cc.Repo != "" {
		checkout, err := gitsource.Clone(ctx, cc.Repo, cc.Branch)
		if err != nil {
			return err
		}
		defer func() { _ = checkout.Remove() }()
		cfg.Content.Root = filepath.Join(checkout.Path, cfg.Content.Root)
	}

	summary, err := check.NewRunner(cfg).Run(ctx)
	if err != nil {
		// A cancelled run is incomplete: no summary is printed at all.
		return err
	}

	if err := check.NewFormatter(cfg.Check.Format).Format(os.Stdout, summary); err != nil {
		return err
	}
	if summary.ExitCode() != 0 {
		return ErrChecksFailed
	}
	return nil
}
