package core

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SipengXie/txkit/accounts/keywallet"
	"github.com/SipengXie/txkit/core/types"
)

type stubWallet struct {
	calls  int
	got    *types.Transaction
	signed []byte
	err    error
}

func (w *stubWallet) SignRawTransaction(ctx context.Context, tx *types.Transaction) ([]byte, error) {
	w.calls++
	w.got = tx
	return w.signed, w.err
}

func TestSignTxDelegatesOnce(t *testing.T) {
	w := &stubWallet{signed: []byte{0xf8, 0x01}}
	in := types.HexStrTransaction{Nonce: "0x1", GasLimit: "0x5208", ChainID: 1}

	signed, err := SignTx(context.Background(), in, w)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xf8, 0x01}, signed)
	assert.Equal(t, 1, w.calls)
	assert.Equal(t, uint64(1), w.got.Nonce())
	assert.Equal(t, uint64(21000), w.got.GasLimit())
}

func TestSignTxPassesWalletErrorsThrough(t *testing.T) {
	for _, walletErr := range []error{keywallet.ErrUserRejected, keywallet.ErrDeviceUnavailable, errors.New("custody timeout")} {
		w := &stubWallet{err: walletErr}
		_, err := SignTx(context.Background(), types.TxFields{}, w)
		assert.Same(t, walletErr, err)
		assert.Equal(t, 1, w.calls)
	}
}

func TestSignTxMalformedInputSkipsWallet(t *testing.T) {
	w := &stubWallet{}
	_, err := SignTx(context.Background(), types.RawTx{0x00}, w)
	assert.ErrorIs(t, err, types.ErrMalformedInput)
	assert.Zero(t, w.calls)
}

func TestSignTxWithKeyWallet(t *testing.T) {
	// Private key and expected output from the EIP-155 examples.
	key, err := crypto.HexToECDSA("4646464646464646464646464646464646464646464646464646464646464646")
	require.NoError(t, err)
	w := keywallet.New(key, nil)

	in := types.RawHexTx("0xec098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a764000080018080")
	signed, err := SignTx(context.Background(), in, w)
	require.NoError(t, err)
	assert.Equal(t,
		"0xf86c098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a76400008025a028ef61340bd939bc2195fe537567866003e1a15d3c71ff63e1590620aa636276a067cbe9d8997f761aecb703304b3800ccf555c9f3dc64214b297fb1966a3b6d83",
		hexutil.Encode(signed))

	// The unsigned record is recovered from the signed bytes.
	unsigned, err := types.MakeTransaction(in)
	require.NoError(t, err)
	decoded, err := types.MakeTransaction(types.RawTx(signed))
	require.NoError(t, err)
	assert.True(t, unsigned.Equal(decoded))
}

func TestSignTxWithoutWallet(t *testing.T) {
	_, err := SignTx(context.Background(), types.TxFields{}, nil)
	assert.ErrorIs(t, err, ErrNoWallet)
}
