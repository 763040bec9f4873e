package main

import (
	"fmt"
	"os"

	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"

	"github.com/SipengXie/txkit/turbo/app"
	txkitcli "github.com/SipengXie/txkit/turbo/cli"
)

func main() {
	defer func() {
		panicRes := recover()
		if panicRes == nil {
			return
		}
		log.Error("catch panic", "err", panicRes)
		os.Exit(1)
	}()
	app := app.MakeApp("txkit", setupLogging, txkitcli.DefaultFlags, commands)
	if err := app.Run(os.Args); err != nil {
		_, printErr := fmt.Fprintln(os.Stderr, err)
		if printErr != nil {
			log.Warn("Fprintln error", "err", printErr)
		}
		os.Exit(1)
	}
}

func setupLogging(cliCtx *cli.Context) error {
	lvl, err := log.LvlFromString(cliCtx.String("verbosity"))
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StderrHandler))
	return nil
}
