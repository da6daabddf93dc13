package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/kubasejdak/sitehooks/cmd/sitehooks/commands"
	"github.com/kubasejdak/sitehooks/internal/foundation/errors"
	"github.com/kubasejdak/sitehooks/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("sitehooks"),
		kong.Description("Build hooks for the documentation site: copyright stamping and asset redirects."),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Logger: slog.Default(), Out: os.Stdout}
	if err := ctx.Run(global); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
