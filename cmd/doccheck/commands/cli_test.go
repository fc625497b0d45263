package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doccheck/internal/check"
	"git.home.luguber.info/inful/doccheck/internal/config"
	"git.home.luguber.info/inful/doccheck/internal/history"
)

// writeProject lays out a complete project: config, boilerplate, docs tree,
// and a fake compiler script.
func writeProject(t *testing.T, compilerScript, docContent string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake compiler scripts require a POSIX shell")
	}
	dir := t.TempDir()

	compiler := filepath.Join(dir, "fakec")
	require.NoError(t, os.WriteFile(compiler, []byte("#!/bin/sh\n"+compilerScript), 0o755))

	prelude := filepath.Join(dir, "prelude.mylang")
	require.NoError(t, os.WriteFile(prelude, []byte("stub a\nstub b\nstub c\nstub d\nstub e\n"), 0o644))

	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(docs, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "guide.md"), []byte(docContent), 0o644))

	cfgPath := filepath.Join(dir, "doccheck.yaml")
	cfgContent := fmt.Sprintf(`
content:
  root: %s
language:
  tag: mylang
boilerplate:
  path: %s
compiler:
  path: %s
  timeout: 10s
watch:
  history_db: %s
`, docs, prelude, compiler, filepath.Join(dir, "history.db"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0o644))
	return cfgPath
}

const cleanDoc = "# Guide\n\n```mylang\nlet x = 1\n```\n"

func TestCheckCommandCleanRun(t *testing.T) {
	cfgPath := writeProject(t, "exit 0\n", cleanDoc)
	root := &CLI{Config: cfgPath}

	cmd := &CheckCmd{}
	assert.NoError(t, cmd.Run(&Global{}, root))
}

func TestCheckCommandFailingRun(t *testing.T) {
	// Boilerplate is 5 lines; raw line 7 is the snippet's first line.
	cfgPath := writeProject(t, `echo "$2:7:1: type mismatch"`+"\nexit 1\n", cleanDoc)
	root := &CLI{Config: cfgPath}

	err := (&CheckCmd{}).Run(&Global{}, root)
	assert.ErrorIs(t, err, ErrChecksFailed)
}

func TestCheckCommandMissingConfig(t *testing.T) {
	root := &CLI{Config: filepath.Join(t.TempDir(), "absent.yaml")}
	assert.Error(t, (&CheckCmd{}).Run(&Global{}, root))
}

func TestBlocksCommand(t *testing.T) {
	cfgPath := writeProject(t, "exit 0\n", cleanDoc+"\n```mylang nocheck\npseudo\n```\n")
	root := &CLI{Config: cfgPath}

	assert.NoError(t, (&BlocksCmd{}).Run(&Global{}, root))
	assert.NoError(t, (&BlocksCmd{Rendered: true}).Run(&Global{}, root))
}

func TestRunsCommand(t *testing.T) {
	cfgPath := writeProject(t, "exit 0\n", cleanDoc)
	root := &CLI{Config: cfgPath}

	// Empty history lists cleanly.
	require.NoError(t, (&RunsCmd{Limit: 5}).Run(&Global{}, root))

	// Record one run the way watch mode does, then list it.
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	store, err := history.Open(cfg.Watch.HistoryDB)
	require.NoError(t, err)
	summary := &check.RunSummary{RunID: "run-1", StartedAt: time.Now()}
	summary.Add(check.BlockResult{Status: check.StatusPassed})
	require.NoError(t, store.RecordRun(context.Background(), summary))
	require.NoError(t, store.Close())

	assert.NoError(t, (&RunsCmd{Limit: 5}).Run(&Global{}, root))
}

func TestInitCommand(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "doccheck.yaml")
	root := &CLI{Config: cfgPath}

	require.NoError(t, (&InitCmd{}).Run(&Global{}, root))
	assert.FileExists(t, cfgPath)

	// A second init without --force must refuse to overwrite.
	assert.Error(t, (&InitCmd{}).Run(&Global{}, root))
	assert.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, root))
}
