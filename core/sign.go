package core

import (
	"context"
	"errors"

	"github.com/ledgerwatch/log/v3"

	"github.com/SipengXie/txkit/core/types"
)

// ErrNoWallet is returned by SignTx when no wallet is supplied.
var ErrNoWallet = errors.New("no wallet to sign with")

// Wallet is the external signing capability. SignRawTransaction returns
// the serialized signed transaction. Implementations may block on user or
// device interaction; cancellation and retries are theirs to define.
type Wallet interface {
	SignRawTransaction(ctx context.Context, tx *types.Transaction) ([]byte, error)
}

// SignTx normalizes in and hands it to the wallet once. The signed bytes
// and any wallet error are returned unchanged. The unsigned form can be
// recovered with types.MakeTransaction(types.RawTx(signed)).
func SignTx(ctx context.Context, in types.TxInput, w Wallet) ([]byte, error) {
	if w == nil {
		return nil, ErrNoWallet
	}
	tx, err := types.MakeTransaction(in)
	if err != nil {
		return nil, err
	}
	log.Debug("Delegating transaction signing", "hash", tx.SigningHash(), "chainId", tx.ChainID(), "nonce", tx.Nonce())
	return w.SignRawTransaction(ctx, tx)
}
