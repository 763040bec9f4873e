package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"

	"github.com/SipengXie/txkit/accounts/keywallet"
	"github.com/SipengXie/txkit/cmd/utils"
	"github.com/SipengXie/txkit/core"
	"github.com/SipengXie/txkit/core/types"
	"github.com/SipengXie/txkit/i18n"
	"github.com/SipengXie/txkit/node/nodecfg"
	"github.com/SipengXie/txkit/params"
	txkitcli "github.com/SipengXie/txkit/turbo/cli"
)

var commands = []*cli.Command{
	{
		Name:   "fields",
		Usage:  "Print the hex string form of a transaction",
		Flags:  txkitcli.InputFlags,
		Action: runFields,
	},
	{
		Name:   "hash",
		Usage:  "Print the indexing hash of the unsigned transaction",
		Flags:  txkitcli.InputFlags,
		Action: runHash,
	},
	{
		Name:   "fee",
		Usage:  "Print gas price * gas limit in wei",
		Flags:  []cli.Flag{&utils.GasPriceFlag, &utils.GasLimitFlag},
		Action: runFee,
	},
	{
		Name:   "validate",
		Usage:  "Check a transaction against the configured guard rails and a balance",
		Flags:  append([]cli.Flag{&utils.BalanceFlag, &utils.OfflineFlag}, txkitcli.InputFlags...),
		Action: runValidate,
	},
	{
		Name:   "sign",
		Usage:  "Validate offline and sign a transaction with a private key",
		Flags:  append([]cli.Flag{&utils.KeyFlag, &utils.BalanceFlag}, txkitcli.InputFlags...),
		Action: runSign,
	},
}

func loadConfig(cliCtx *cli.Context) (*nodecfg.Config, error) {
	cfg := nodecfg.Default()
	if path := cliCtx.String(utils.ConfigFlag.Name); path != "" {
		var err error
		if cfg, err = nodecfg.Load(path); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}
	if cliCtx.IsSet(utils.ChainIDFlag.Name) {
		cfg.Chain = params.ChainConfigByID(cliCtx.Uint64(utils.ChainIDFlag.Name))
	}
	if lang := cliCtx.String(utils.LanguageFlag.Name); lang != "" {
		cfg.Language = lang
	}
	return cfg, nil
}

// readInput picks the transaction input from the command flags. Field sets
// without a chainId take the configured chain.
func readInput(cliCtx *cli.Context, cfg *nodecfg.Config) (types.TxInput, error) {
	if raw := cliCtx.String(utils.RawTxFlag.Name); raw != "" {
		return types.RawHexTx(raw), nil
	}
	var blob []byte
	switch {
	case cliCtx.String(utils.JSONTxFlag.Name) != "":
		blob = []byte(cliCtx.String(utils.JSONTxFlag.Name))
	case cliCtx.Path(utils.TxFileFlag.Name) != "":
		var err error
		if blob, err = os.ReadFile(cliCtx.Path(utils.TxFileFlag.Name)); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("one of --raw, --json or --file is required")
	}
	fields, err := types.ParseFieldValues(blob)
	if err != nil {
		return nil, err
	}
	if _, ok := fields["chainId"]; !ok {
		fields["chainId"] = cfg.Chain.ChainID
	}
	return fields, nil
}

func parseWei(name, s string) (*uint256.Int, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok || b.Sign() < 0 {
		return nil, fmt.Errorf("--%s: invalid amount %q", name, s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("--%s: %q exceeds 256 bits", name, s)
	}
	return v, nil
}

func newValidator(cfg *nodecfg.Config) *core.Validator {
	return core.NewValidator(cfg.Guard, core.WithTranslator(i18n.NewCatalog().Localizer(cfg.Language)))
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runFields(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	in, err := readInput(cliCtx, cfg)
	if err != nil {
		return err
	}
	fields, err := types.GetTransactionFields(in)
	if err != nil {
		return err
	}
	return printJSON(fields)
}

func runHash(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	in, err := readInput(cliCtx, cfg)
	if err != nil {
		return err
	}
	hash, err := types.ComputeIndexingHash(in)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

func runFee(cliCtx *cli.Context) error {
	price, err := parseWei(utils.GasPriceFlag.Name, cliCtx.String(utils.GasPriceFlag.Name))
	if err != nil {
		return err
	}
	fee, err := core.GetTransactionFee(price, cliCtx.Uint64(utils.GasLimitFlag.Name))
	if err != nil {
		return err
	}
	fmt.Println(fee.ToBig().String())
	return nil
}

func runValidate(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	in, err := readInput(cliCtx, cfg)
	if err != nil {
		return err
	}
	balance, err := parseWei(utils.BalanceFlag.Name, cliCtx.String(utils.BalanceFlag.Name))
	if err != nil {
		return err
	}
	offline := cliCtx.Bool(utils.OfflineFlag.Name)
	tx, err := newValidator(cfg).ValidateInput(in, balance, offline)
	if err != nil {
		log.Debug("Transaction rejected", "err", err)
		return err
	}
	log.Info("Transaction valid", "hash", tx.SigningHash(), "offline", offline)
	return nil
}

func runSign(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	in, err := readInput(cliCtx, cfg)
	if err != nil {
		return err
	}
	balance, err := parseWei(utils.BalanceFlag.Name, cliCtx.String(utils.BalanceFlag.Name))
	if err != nil {
		return err
	}
	tx, err := newValidator(cfg).ValidateInput(in, balance, true)
	if err != nil {
		return err
	}
	wallet, err := keywallet.FromHex(cliCtx.String(utils.KeyFlag.Name), nil)
	if err != nil {
		return err
	}
	signed, err := core.SignTx(context.Background(), tx, wallet)
	if err != nil {
		return err
	}
	log.Info("Signed transaction", "from", wallet.Address(), "hash", tx.SigningHash())
	fmt.Println(hexutil.Encode(signed))
	return nil
}
