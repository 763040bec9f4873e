package params

import (
	"github.com/c2h5oh/datasize"
	"github.com/holiman/uint256"
)

// ChainConfig holds the per-network settings the transaction core cares about.
type ChainConfig struct {
	ChainID uint64 `json:"chainId"` // chainId identifies the current chain and is used for replay protection
	Name    string `json:"name"`

	// ChecksumEIP1191 marks networks whose mixed-case addresses carry a
	// chain-bound checksum instead of the plain EIP-55 one.
	ChecksumEIP1191 bool `json:"checksumEIP1191"`
}

var (
	MainnetChainConfig = &ChainConfig{ChainID: 1, Name: "mainnet"}
	GoerliChainConfig  = &ChainConfig{ChainID: 5, Name: "goerli"}
	SepoliaChainConfig = &ChainConfig{ChainID: 11155111, Name: "sepolia"}
	ClassicChainConfig = &ChainConfig{ChainID: 61, Name: "classic"}
	RSKChainConfig     = &ChainConfig{ChainID: 30, Name: "rsk", ChecksumEIP1191: true}
	RSKTestChainConfig = &ChainConfig{ChainID: 31, Name: "rsk-testnet", ChecksumEIP1191: true}

	// TestChainConfig is used by tests.
	TestChainConfig = &ChainConfig{ChainID: 1337, Name: "test"}
)

var knownChains = map[uint64]*ChainConfig{
	MainnetChainConfig.ChainID: MainnetChainConfig,
	GoerliChainConfig.ChainID:  GoerliChainConfig,
	SepoliaChainConfig.ChainID: SepoliaChainConfig,
	ClassicChainConfig.ChainID: ClassicChainConfig,
	RSKChainConfig.ChainID:     RSKChainConfig,
	RSKTestChainConfig.ChainID: RSKTestChainConfig,
	TestChainConfig.ChainID:    TestChainConfig,
}

// ChainConfigByID returns the known config for chainID, or a bare config
// carrying only the id when the network is not known.
func ChainConfigByID(chainID uint64) *ChainConfig {
	if cfg, ok := knownChains[chainID]; ok {
		return cfg
	}
	return &ChainConfig{ChainID: chainID}
}

const (
	// DefaultMinGasLimit is the cost of a plain value transfer.
	DefaultMinGasLimit uint64 = 21000
	DefaultMaxGasLimit uint64 = 5000000

	DefaultMaxDataSize = 128 * datasize.KB
)

// DefaultMaxGasPrice is 1000 gwei.
var DefaultMaxGasPrice = uint256.NewInt(1000000000000)

// GuardConfig holds the sanity bounds applied to user supplied transactions.
// None of them are consensus rules.
type GuardConfig struct {
	MinGasLimit uint64
	MaxGasLimit uint64
	MaxGasPrice *uint256.Int

	// MaxDataSize caps the call payload. Zero disables the check.
	MaxDataSize datasize.ByteSize

	// IstanbulDataGas prices non-zero payload bytes at 16 gas (EIP-2028)
	// instead of 68 when computing the intrinsic gas.
	IstanbulDataGas bool

	AllowContractCreation bool
}

// DefaultGuardConfig contains the bounds used when nothing else is configured.
var DefaultGuardConfig = GuardConfig{
	MinGasLimit:     DefaultMinGasLimit,
	MaxGasLimit:     DefaultMaxGasLimit,
	MaxGasPrice:     DefaultMaxGasPrice,
	MaxDataSize:     DefaultMaxDataSize,
	IstanbulDataGas: true,
}

// Copy returns a deep copy of the config.
func (c GuardConfig) Copy() GuardConfig {
	cpy := c
	if c.MaxGasPrice != nil {
		cpy.MaxGasPrice = new(uint256.Int).Set(c.MaxGasPrice)
	}
	return cpy
}
