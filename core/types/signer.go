// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
)

// rawLegacyTx mirrors the wire layout of a legacy transaction. The last
// three fields are absent for pre-EIP-155 unsigned encodings.
type rawLegacyTx struct {
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	To       []byte
	Value    *big.Int
	Data     []byte
	V        *big.Int `rlp:"optional"`
	R        *big.Int `rlp:"optional"`
	S        *big.Int `rlp:"optional"`
}

// SignerForChainID returns the signer whose hash covers the unsigned
// fields of a legacy transaction on chainID. Chain id zero selects the
// unprotected homestead encoding.
func SignerForChainID(chainID uint64) gethtypes.Signer {
	if chainID == 0 {
		return gethtypes.HomesteadSigner{}
	}
	return gethtypes.NewEIP155Signer(new(big.Int).SetUint64(chainID))
}

// SigningHash returns the hash a wallet signs for tx. It covers the unsigned
// fields only.
func (tx *Transaction) SigningHash() common.Hash {
	return SignerForChainID(tx.chainID).Hash(tx.Unsigned())
}

func decodeRaw(b []byte) (*Transaction, error) {
	if len(b) == 0 {
		return nil, malformed("empty raw transaction")
	}
	if b[0] <= 0x7f {
		return nil, malformed("typed transaction 0x%02x not supported", b[0])
	}
	var raw rawLegacyTx
	if err := rlp.DecodeBytes(b, &raw); err != nil {
		return nil, malformed("rlp: %v", err)
	}
	gasPrice, err := bigToUint256("gasPrice", raw.GasPrice)
	if err != nil {
		return nil, err
	}
	value, err := bigToUint256("value", raw.Value)
	if err != nil {
		return nil, err
	}
	to, err := bytesToAddress(raw.To)
	if err != nil {
		return nil, err
	}
	chainID, err := rawChainID(&raw)
	if err != nil {
		return nil, err
	}
	return newTransaction(raw.Nonce, gasPrice, raw.Gas, to, value, raw.Data, chainID), nil
}

// rawChainID resolves the chain id carried by the v, r, s slots. An
// unsigned EIP-155 encoding stores the chain id in v with r and s zero,
// a signed one folds it into v.
func rawChainID(raw *rawLegacyTx) (uint64, error) {
	if raw.V == nil {
		if raw.R != nil || raw.S != nil {
			return 0, malformed("incomplete signature values")
		}
		return 0, nil
	}
	if raw.R == nil || raw.S == nil {
		return 0, malformed("incomplete signature values")
	}
	var id *big.Int
	if raw.R.Sign() == 0 && raw.S.Sign() == 0 {
		id = raw.V
	} else {
		var err error
		if id, err = deriveChainId(raw.V); err != nil {
			return 0, err
		}
	}
	if !id.IsUint64() {
		return 0, malformed("chain id %s out of range", id)
	}
	return id.Uint64(), nil
}

// deriveChainId derives the chain id from the given v parameter
func deriveChainId(v *big.Int) (*big.Int, error) {
	if v.BitLen() <= 64 {
		v := v.Uint64()
		if v == 27 || v == 28 {
			return new(big.Int), nil
		}
		if v < 35 {
			return nil, malformed("invalid signature v %d", v)
		}
		return new(big.Int).SetUint64((v - 35) / 2), nil
	}
	v = new(big.Int).Sub(v, big.NewInt(35))
	return v.Div(v, big.NewInt(2)), nil
}
