package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doccheck/internal/check"
	"git.home.luguber.info/inful/doccheck/internal/compiler"
	"git.home.luguber.info/inful/doccheck/internal/config"
	"git.home.luguber.info/inful/doccheck/internal/history"
)

type passInvoker struct{}

func (passInvoker) Invoke(context.Context, string) (compiler.Result, error) {
	return compiler.Result{ExitCode: 0}, nil
}

func serviceFixture(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	root := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guide.md"),
		[]byte("```mylang\nlet x = 1\n```\n"), 0o644))

	prelude := filepath.Join(dir, "prelude.mylang")
	require.NoError(t, os.WriteFile(prelude, []byte("stub\n"), 0o644))

	cfg := &config.Config{
		Content:     config.ContentConfig{Root: root},
		Language:    config.LanguageConfig{Tag: "mylang"},
		Boilerplate: config.BoilerplateConfig{Path: prelude},
		Compiler:    config.CompilerConfig{Path: "unused"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestRunOnceRecordsHistory(t *testing.T) {
	cfg := serviceFixture(t)

	store, err := history.Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	svc := &Service{
		cfg:       cfg,
		runner:    check.NewRunner(cfg).WithInvoker(passInvoker{}),
		store:     store,
		publisher: NoopPublisher{},
	}
	svc.runOnce(context.Background())

	records, err := store.RecentRuns(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 0, records[0].ExitCode)
}

// A broken history store must not stop watch mode: the run completes and the
// store failure is only logged.
func TestRunOnceSurvivesStoreFailure(t *testing.T) {
	cfg := serviceFixture(t)

	store, err := history.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Close()) // every write now fails

	svc := &Service{
		cfg:       cfg,
		runner:    check.NewRunner(cfg).WithInvoker(passInvoker{}),
		store:     store,
		publisher: NoopPublisher{},
	}
	svc.runOnce(context.Background())
}
