package commands

import (
	"context"
	"fmt"
	"time"

	dcerrors "git.home.luguber.info/inful/doccheck/internal/errors"
	"git.home.luguber.info/inful/doccheck/internal/history"
)

// RunsCmd implements the 'runs' command: list recent check runs recorded in
// the watch-mode history database, newest first.
type RunsCmd struct {
	Limit int `help:"Maximum number of runs to list" default:"10"`
}

func (rc *RunsCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.Watch.HistoryDB)
	if err != nil {
		return dcerrors.HistoryStore("open", err)
	}
	defer func() { _ = store.Close() }()

	records, err := store.RecentRuns(context.Background(), rc.Limit)
	if err != nil {
		return dcerrors.HistoryStore("list", err)
	}
	if len(records) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	for _, r := range records {
		fmt.Printf("%s  %s  total=%d checked=%d passed=%d failed=%d exit=%d\n",
			r.StartedAt.Format(time.RFC3339), r.RunID,
			r.Total, r.Checked, r.Passed, r.Failed, r.ExitCode)
	}
	return nil
}
