package app

import (
	"github.com/urfave/cli/v2"

	cli2 "github.com/SipengXie/txkit/turbo/cli"
)

// MakeApp builds the application shell. Commands are attached by the caller.
func MakeApp(name string, before cli.BeforeFunc, cliFlags []cli.Flag, commands []*cli.Command) *cli.App {
	app := cli2.NewApp()
	app.Name = name
	app.Usage = "build, validate, hash and sign legacy EVM transactions"
	app.UsageText = app.Name + ` [command] [flags]`
	app.Flags = cliFlags
	app.Before = before
	app.Commands = commands
	return app
}
