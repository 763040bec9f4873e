// Package keywallet implements the signing capability on top of a secp256k1
// key held in memory by the caller.
package keywallet

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/SipengXie/txkit/core/types"
)

var (
	// ErrUserRejected is returned by wallets whose user declined to sign.
	ErrUserRejected = errors.New("user rejected the signing request")
	// ErrDeviceUnavailable is returned by wallets that cannot reach their
	// signing device.
	ErrDeviceUnavailable = errors.New("signing device unavailable")
)

// Approver is asked before each signature. Returning false rejects the
// request with ErrUserRejected.
type Approver func(ctx context.Context, tx *types.Transaction) bool

// Wallet signs legacy transactions with a single private key.
type Wallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
	approve Approver
}

// New returns a wallet for key. A nil approver signs everything.
func New(key *ecdsa.PrivateKey, approve Approver) *Wallet {
	return &Wallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		approve: approve,
	}
}

// FromHex parses a hex encoded private key.
func FromHex(hexkey string, approve Approver) (*Wallet, error) {
	key, err := crypto.HexToECDSA(hexkey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse private key")
	}
	return New(key, approve), nil
}

// Address returns the account the wallet signs for.
func (w *Wallet) Address() common.Address { return w.address }

// SignRawTransaction signs tx with EIP-155 replay protection when it
// carries a chain id and returns the RLP encoded signed transaction.
func (w *Wallet) SignRawTransaction(ctx context.Context, tx *types.Transaction) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w.approve != nil && !w.approve(ctx, tx) {
		return nil, ErrUserRejected
	}
	signed, err := gethtypes.SignTx(tx.Unsigned(), types.SignerForChainID(tx.ChainID()), w.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}
	raw, err := signed.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode signed transaction")
	}
	return raw, nil
}
