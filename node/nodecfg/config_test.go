package nodecfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/holiman/uint256"
	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SipengXie/txkit/params"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txkit.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
chain_id = 30
language = "de"

[guard]
max_gas_limit = 30000000
max_gas_price = "500000000000"
max_data_size = "64KB"
istanbul_data_gas = false
allow_contract_creation = true
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Same(t, params.RSKChainConfig, cfg.Chain)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, params.DefaultMinGasLimit, cfg.Guard.MinGasLimit)
	assert.Equal(t, uint64(30000000), cfg.Guard.MaxGasLimit)
	assert.Equal(t, uint256.NewInt(500000000000), cfg.Guard.MaxGasPrice)
	assert.Equal(t, 64*datasize.KB, cfg.Guard.MaxDataSize)
	assert.False(t, cfg.Guard.IstanbulDataGas)
	assert.True(t, cfg.Guard.AllowContractCreation)

	// Loading never touches the package defaults.
	assert.Equal(t, params.DefaultMaxGasPrice, params.DefaultGuardConfig.MaxGasPrice)
	assert.Equal(t, uint256.NewInt(1000000000000), params.DefaultMaxGasPrice)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestFromTreeDefaults(t *testing.T) {
	tree, err := toml.Load("")
	require.NoError(t, err)
	cfg, err := FromTree(tree)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromTreeInvalid(t *testing.T) {
	for name, doc := range map[string]string{
		"negative limit":  "[guard]\nmin_gas_limit = -1",
		"price type":      "[guard]\nmax_gas_price = 1",
		"price value":     "[guard]\nmax_gas_price = \"lots\"",
		"size":            "[guard]\nmax_data_size = \"huge\"",
		"bool type":       "[guard]\nistanbul_data_gas = \"yes\"",
		"chain type":      "chain_id = \"one\"",
		"inverted bounds": "[guard]\nmin_gas_limit = 100\nmax_gas_limit = 10",
	} {
		tree, err := toml.Load(doc)
		require.NoError(t, err, name)
		_, err = FromTree(tree)
		assert.Error(t, err, name)
	}
}

func TestFromTreePartialGuard(t *testing.T) {
	tree, err := toml.Load("language = \"de\"\n[guard]\nmin_gas_limit = 25000\n")
	require.NoError(t, err)
	cfg, err := FromTree(tree)
	require.NoError(t, err)

	want := Default()
	want.Language = "de"
	want.Guard.MinGasLimit = 25000
	assert.Equal(t, want, cfg)
}
