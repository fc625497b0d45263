package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doccheck/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"doccheck.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Check  CheckCmd  `cmd:"" help:"Check all documentation code samples against the compiler"`
	Blocks BlocksCmd `cmd:"" help:"List code samples found in the documentation without checking them"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
	Watch  WatchCmd  `cmd:"" help:"Watch the documentation tree and re-check on change"`
	Runs   RunsCmd   `cmd:"" help:"List recent check runs recorded by watch mode"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads and validates configuration, honoring the verbose flag
// over the configured log level.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if !root.Verbose {
		level := config.NormalizeLogLevel(cfg.Logging.Level).SlogLevel()
		var handler slog.Handler
		if config.NormalizeLogFormat(cfg.Logging.Format) == config.LogFormatJSON {
			handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		} else {
			handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		}
		slog.SetDefault(slog.New(handler))
	}
	return cfg, nil
}
