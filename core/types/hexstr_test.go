package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsEncoding(t *testing.T) {
	fields := eip155Fields()
	fields.Data = []byte{0x00, 0x01, 0xab}
	tx := mustMake(t, fields)

	assert.Equal(t, HexStrTransaction{
		Value:    "0xde0b6b3a7640000",
		Data:     "0x0001ab",
		To:       "0x3535353535353535353535353535353535353535",
		Nonce:    "0x9",
		GasPrice: "0x4a817c800",
		GasLimit: "0x5208",
		ChainID:  1,
	}, tx.Fields())
}

func TestFieldsZeroValues(t *testing.T) {
	hs := mustMake(t, TxFields{}).Fields()

	assert.Equal(t, "0x0", hs.Value)
	assert.Equal(t, "0x0", hs.Nonce)
	assert.Equal(t, "0x0", hs.GasPrice)
	assert.Equal(t, "0x0", hs.GasLimit)
	assert.Equal(t, "0x", hs.Data)
	assert.Equal(t, "0x", hs.To)
	assert.Zero(t, hs.ChainID)
}

func TestFieldsMixedCaseAddressIsLowercased(t *testing.T) {
	to := common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	hs := mustMake(t, TxFields{To: &to}).Fields()
	assert.Equal(t, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", hs.To)
}

func TestFieldsRoundTrip(t *testing.T) {
	maxWord := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	to := common.HexToAddress("0x00000000000000000000000000000000000000ff")
	inputs := []TxFields{
		{},
		eip155Fields(),
		{Nonce: u64(^uint64(0)), GasLimit: u64(^uint64(0)), ChainID: u64(^uint64(0)), GasPrice: maxWord, Value: maxWord},
		{To: &to, Data: []byte{0, 0, 0}, Value: big.NewInt(1)},
		{Data: make([]byte, 1024)},
	}
	for i, in := range inputs {
		tx := mustMake(t, in)
		back, err := MakeTransaction(tx.Fields())
		require.NoError(t, err, "input %d", i)
		assert.True(t, tx.Equal(back), "input %d: %+v", i, tx.Fields())
	}
}

func TestFieldsInjective(t *testing.T) {
	base := mustMake(t, eip155Fields())
	variants := []*Transaction{
		base,
		base.WithNonce(10),
		base.WithGasLimit(21001),
		base.WithGasPrice(base.GasPrice().AddUint64(base.GasPrice(), 1)),
		base.WithValue(nil),
		mustMake(t, TxFields{To: nil, Nonce: u64(9)}),
	}
	seen := make(map[HexStrTransaction]int)
	for i, tx := range variants {
		hs := tx.Fields()
		if j, ok := seen[hs]; ok {
			t.Fatalf("variants %d and %d encode identically: %+v", j, i, hs)
		}
		seen[hs] = i
	}
}

func TestHexStrTransactionJSON(t *testing.T) {
	out, err := json.Marshal(mustMake(t, eip155Fields()).Fields())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"value": "0xde0b6b3a7640000",
		"data": "0x",
		"to": "0x3535353535353535353535353535353535353535",
		"nonce": "0x9",
		"gasPrice": "0x4a817c800",
		"gasLimit": "0x5208",
		"chainId": 1
	}`, string(out))

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &fields))
	tx, err := MakeTransaction(FieldValues(fields))
	require.NoError(t, err)
	assert.True(t, tx.Equal(mustMake(t, eip155Fields())))
}

func TestGetTransactionFields(t *testing.T) {
	hs, err := GetTransactionFields(RawHexTx(eip155Signed))
	require.NoError(t, err)
	assert.Equal(t, "0x9", hs.Nonce)
	assert.Equal(t, uint64(1), hs.ChainID)

	_, err = GetTransactionFields(RawHexTx("0x"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}
