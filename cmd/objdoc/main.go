// Command objdoc renders YAML object-class descriptions into Markdown pages.
//
// Usage:
//
//	objdoc [flags] [path ...]
//
// Without paths every *.yml file in the working directory is rendered. Each
// page is written to <class.name>.md using the template _template.mdt.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/objdoc/cmd/objdoc/commands"
	derrors "git.home.luguber.info/inful/objdoc/internal/errors"
	"git.home.luguber.info/inful/objdoc/internal/version"
)

func main() {
	// Optional; variables already set in the environment win.
	_ = godotenv.Load()

	var cli commands.CLI
	global := &commands.Global{Stdout: os.Stdout, Stderr: os.Stderr}

	ctx := kong.Parse(&cli,
		kong.Name("objdoc"),
		kong.Description("Render object class descriptions into Markdown pages."),
		kong.UsageOnError(),
		kong.Bind(global),
		commands.Vars(version.String()),
	)

	err := ctx.Run()
	derrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
}
