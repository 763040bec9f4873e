package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// Transaction is the canonical, unsigned legacy transaction record.
// A Transaction is never modified after construction; the With* methods
// return adjusted copies.
type Transaction struct {
	nonce    uint64
	gasPrice uint256.Int
	gasLimit uint64
	to       *common.Address // nil means contract creation
	value    uint256.Int
	data     []byte
	chainID  uint64
}

func newTransaction(nonce uint64, gasPrice *uint256.Int, gasLimit uint64, to *common.Address, value *uint256.Int, data []byte, chainID uint64) *Transaction {
	tx := &Transaction{
		nonce:    nonce,
		gasLimit: gasLimit,
		to:       copyAddressPtr(to),
		data:     common.CopyBytes(data),
		chainID:  chainID,
	}
	if gasPrice != nil {
		tx.gasPrice.Set(gasPrice)
	}
	if value != nil {
		tx.value.Set(value)
	}
	return tx
}

// copy creates a deep copy of the transaction.
func (tx *Transaction) copy() *Transaction {
	return newTransaction(tx.nonce, &tx.gasPrice, tx.gasLimit, tx.to, &tx.value, tx.data, tx.chainID)
}

func (tx *Transaction) toTransaction() (*Transaction, error) {
	if tx == nil {
		return nil, malformed("nil transaction")
	}
	return tx, nil
}

func (tx *Transaction) Nonce() uint64            { return tx.nonce }
func (tx *Transaction) GasPrice() *uint256.Int   { return tx.gasPrice.Clone() }
func (tx *Transaction) GasLimit() uint64         { return tx.gasLimit }
func (tx *Transaction) To() *common.Address      { return copyAddressPtr(tx.to) }
func (tx *Transaction) Value() *uint256.Int      { return tx.value.Clone() }
func (tx *Transaction) Data() []byte             { return common.CopyBytes(tx.data) }
func (tx *Transaction) ChainID() uint64          { return tx.chainID }
func (tx *Transaction) IsContractCreation() bool { return tx.to == nil }

// WithNonce returns a copy of tx with the nonce replaced.
func (tx *Transaction) WithNonce(nonce uint64) *Transaction {
	cpy := tx.copy()
	cpy.nonce = nonce
	return cpy
}

// WithGasPrice returns a copy of tx with the gas price replaced.
func (tx *Transaction) WithGasPrice(price *uint256.Int) *Transaction {
	cpy := tx.copy()
	cpy.gasPrice.Clear()
	if price != nil {
		cpy.gasPrice.Set(price)
	}
	return cpy
}

// WithGasLimit returns a copy of tx with the gas limit replaced.
func (tx *Transaction) WithGasLimit(limit uint64) *Transaction {
	cpy := tx.copy()
	cpy.gasLimit = limit
	return cpy
}

// WithValue returns a copy of tx with the value replaced.
func (tx *Transaction) WithValue(value *uint256.Int) *Transaction {
	cpy := tx.copy()
	cpy.value.Clear()
	if value != nil {
		cpy.value.Set(value)
	}
	return cpy
}

// Equal reports whether both records carry identical field values.
func (tx *Transaction) Equal(o *Transaction) bool {
	if tx == nil || o == nil {
		return tx == o
	}
	if (tx.to == nil) != (o.to == nil) {
		return false
	}
	if tx.to != nil && *tx.to != *o.to {
		return false
	}
	return tx.nonce == o.nonce &&
		tx.gasPrice.Eq(&o.gasPrice) &&
		tx.gasLimit == o.gasLimit &&
		tx.value.Eq(&o.value) &&
		string(tx.data) == string(o.data) &&
		tx.chainID == o.chainID
}

// Unsigned converts the record into go-ethereum's legacy transaction
// without any signature values.
func (tx *Transaction) Unsigned() *gethtypes.Transaction {
	return gethtypes.NewTx(&gethtypes.LegacyTx{
		Nonce:    tx.nonce,
		GasPrice: tx.gasPrice.ToBig(),
		Gas:      tx.gasLimit,
		To:       copyAddressPtr(tx.to),
		Value:    tx.value.ToBig(),
		Data:     common.CopyBytes(tx.data),
	})
}

// MarshalUnsigned returns the RLP encoding of the unsigned fields. Replay
// protected records append [chainId, 0, 0] as described by EIP-155.
func (tx *Transaction) MarshalUnsigned() ([]byte, error) {
	fields := []interface{}{
		tx.nonce,
		tx.gasPrice.ToBig(),
		tx.gasLimit,
		tx.to,
		tx.value.ToBig(),
		tx.data,
	}
	if tx.chainID != 0 {
		fields = append(fields, tx.chainID, uint(0), uint(0))
	}
	return rlp.EncodeToBytes(fields)
}

func copyAddressPtr(a *common.Address) *common.Address {
	if a == nil {
		return nil
	}
	cpy := *a
	return &cpy
}

func bigToUint256(field string, b *big.Int) (*uint256.Int, error) {
	if b == nil {
		return new(uint256.Int), nil
	}
	if b.Sign() < 0 {
		return nil, malformed("%s is negative", field)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, malformed("%s exceeds 256 bits", field)
	}
	return v, nil
}
