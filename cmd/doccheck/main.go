package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doccheck/cmd/doccheck/commands"
	"git.home.luguber.info/inful/doccheck/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("doccheck"),
		kong.Description("Validates code samples embedded in documentation against the real compiler."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := ctx.Run(global, cli); err != nil {
		if !errors.Is(err, commands.ErrChecksFailed) {
			slog.Error("Command failed", "error", err)
		}
		os.Exit(1)
	}
}
