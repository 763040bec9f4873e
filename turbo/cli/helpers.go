package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/SipengXie/txkit/cmd/utils"
)

const VERSION = "0.1.0"

// DefaultFlags are accepted by every command.
var DefaultFlags = []cli.Flag{
	&utils.ConfigFlag,
	&utils.ChainIDFlag,
	&utils.LanguageFlag,
	&utils.VerbosityFlag,
}

// InputFlags select where a command reads its transaction from.
var InputFlags = []cli.Flag{
	&utils.RawTxFlag,
	&utils.JSONTxFlag,
	&utils.TxFileFlag,
}

// NewApp creates an app with sane defaults.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Version = VERSION
	return app
}
