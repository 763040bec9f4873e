package utils

import (
	"github.com/urfave/cli/v2"
)

var (
	// General settings
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML config file",
	}
	ChainIDFlag = cli.Uint64Flag{
		Name:  "chainid",
		Usage: "Chain id used when the input carries none (overrides the config file)",
	}
	LanguageFlag = cli.StringFlag{
		Name:  "lang",
		Usage: "Message language, Accept-Language syntax",
	}
	VerbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "Log level (crit, error, warn, info, debug, trace)",
		Value: "info",
	}

	// Transaction input
	RawTxFlag = cli.StringFlag{
		Name:  "raw",
		Usage: "RLP encoded transaction as 0x prefixed hex",
	}
	JSONTxFlag = cli.StringFlag{
		Name:  "json",
		Usage: `Transaction fields as a JSON object, e.g. {"to":"0x..","value":"0x1","gasLimit":21000}`,
	}
	TxFileFlag = cli.PathFlag{
		Name:  "file",
		Usage: "File holding the transaction fields as a JSON object",
	}

	// Command specific
	BalanceFlag = cli.StringFlag{
		Name:     "balance",
		Usage:    "Sender balance in wei",
		Required: true,
	}
	OfflineFlag = cli.BoolFlag{
		Name:  "offline",
		Usage: "Skip checks that need network context",
	}
	GasPriceFlag = cli.StringFlag{
		Name:     "gasprice",
		Usage:    "Gas price in wei",
		Required: true,
	}
	GasLimitFlag = cli.Uint64Flag{
		Name:     "gaslimit",
		Usage:    "Gas limit",
		Required: true,
	}
	KeyFlag = cli.StringFlag{
		Name:     "key",
		Usage:    "Hex encoded private key to sign with",
		EnvVars:  []string{"TXKIT_KEY"},
		Required: true,
	}
)
