package nodecfg

import (
	"fmt"
	"math/big"

	"github.com/c2h5oh/datasize"
	"github.com/holiman/uint256"
	"github.com/pelletier/go-toml"

	"github.com/SipengXie/txkit/params"
)

// Config is the tool configuration. Everything not present in a config
// file keeps its default.
type Config struct {
	Chain    *params.ChainConfig
	Language string
	Guard    params.GuardConfig
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Chain:    params.MainnetChainConfig,
		Language: "en",
		Guard:    params.DefaultGuardConfig.Copy(),
	}
}

// Load reads a TOML config file on top of the defaults. Recognised keys:
//
//	chain_id = 1
//	language = "en"
//
//	[guard]
//	min_gas_limit = 21000
//	max_gas_limit = 5000000
//	max_gas_price = "1000000000000"
//	max_data_size = "128KB"
//	istanbul_data_gas = true
//	allow_contract_creation = false
func Load(path string) (*Config, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return FromTree(tree)
}

// fileConfig mirrors the TOML layout. Pointer fields stay nil when a key is
// absent so the defaults survive.
type fileConfig struct {
	ChainID  *uint64     `toml:"chain_id"`
	Language *string     `toml:"language"`
	Guard    guardConfig `toml:"guard"`
}

type guardConfig struct {
	MinGasLimit           *uint64 `toml:"min_gas_limit"`
	MaxGasLimit           *uint64 `toml:"max_gas_limit"`
	MaxGasPrice           *string `toml:"max_gas_price"`
	MaxDataSize           *string `toml:"max_data_size"`
	IstanbulDataGas       *bool   `toml:"istanbul_data_gas"`
	AllowContractCreation *bool   `toml:"allow_contract_creation"`
}

// FromTree applies a parsed TOML document on top of the defaults.
func FromTree(tree *toml.Tree) (*Config, error) {
	var fc fileConfig
	if err := tree.Unmarshal(&fc); err != nil {
		return nil, err
	}

	cfg := Default()
	if fc.ChainID != nil {
		cfg.Chain = params.ChainConfigByID(*fc.ChainID)
	}
	if fc.Language != nil {
		cfg.Language = *fc.Language
	}

	g, fg := &cfg.Guard, fc.Guard
	if fg.MinGasLimit != nil {
		g.MinGasLimit = *fg.MinGasLimit
	}
	if fg.MaxGasLimit != nil {
		g.MaxGasLimit = *fg.MaxGasLimit
	}
	if fg.MaxGasPrice != nil {
		price, ok := new(big.Int).SetString(*fg.MaxGasPrice, 10)
		if !ok || price.Sign() < 0 {
			return nil, fmt.Errorf("guard.max_gas_price: invalid amount %q", *fg.MaxGasPrice)
		}
		p, overflow := uint256.FromBig(price)
		if overflow {
			return nil, fmt.Errorf("guard.max_gas_price: %q exceeds 256 bits", *fg.MaxGasPrice)
		}
		g.MaxGasPrice = p
	}
	if fg.MaxDataSize != nil {
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(*fg.MaxDataSize)); err != nil {
			return nil, fmt.Errorf("guard.max_data_size: %w", err)
		}
		g.MaxDataSize = size
	}
	if fg.IstanbulDataGas != nil {
		g.IstanbulDataGas = *fg.IstanbulDataGas
	}
	if fg.AllowContractCreation != nil {
		g.AllowContractCreation = *fg.AllowContractCreation
	}
	if g.MinGasLimit > g.MaxGasLimit {
		return nil, fmt.Errorf("guard: min_gas_limit %d above max_gas_limit %d", g.MinGasLimit, g.MaxGasLimit)
	}
	return cfg, nil
}
