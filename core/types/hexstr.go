package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// HexStrTransaction is the interchange form of a transaction used by RPC
// and display code. Quantities are minimal hex, data and to are full length
// hex, chainId is a plain integer.
type HexStrTransaction struct {
	Value    string `json:"value"`
	Data     string `json:"data"`
	To       string `json:"to"` // not checksummed
	Nonce    string `json:"nonce"`
	GasPrice string `json:"gasPrice"`
	GasLimit string `json:"gasLimit"`
	ChainID  uint64 `json:"chainId"`
}

// Fields returns the hex string form of tx.
func (tx *Transaction) Fields() HexStrTransaction {
	to := "0x"
	if tx.to != nil {
		to = hexutil.Encode(tx.to[:])
	}
	return HexStrTransaction{
		Value:    hexutil.EncodeBig(tx.value.ToBig()),
		Data:     hexutil.Encode(tx.data),
		To:       to,
		Nonce:    hexutil.EncodeUint64(tx.nonce),
		GasPrice: hexutil.EncodeBig(tx.gasPrice.ToBig()),
		GasLimit: hexutil.EncodeUint64(tx.gasLimit),
		ChainID:  tx.chainID,
	}
}

// GetTransactionFields normalizes in and returns its hex string form.
func GetTransactionFields(in TxInput) (HexStrTransaction, error) {
	tx, err := MakeTransaction(in)
	if err != nil {
		return HexStrTransaction{}, err
	}
	return tx.Fields(), nil
}

func (hs HexStrTransaction) toTransaction() (*Transaction, error) {
	value, err := decodeQuantity("value", hs.Value)
	if err != nil {
		return nil, err
	}
	gasPrice, err := decodeQuantity("gasPrice", hs.GasPrice)
	if err != nil {
		return nil, err
	}
	nonce, err := decodeUint64("nonce", hs.Nonce)
	if err != nil {
		return nil, err
	}
	gasLimit, err := decodeUint64("gasLimit", hs.GasLimit)
	if err != nil {
		return nil, err
	}
	data, err := decodeData("data", hs.Data)
	if err != nil {
		return nil, err
	}
	to, err := decodeData("to", hs.To)
	if err != nil {
		return nil, err
	}
	toAddr, err := bytesToAddress(to)
	if err != nil {
		return nil, err
	}
	return newTransaction(nonce, gasPrice, gasLimit, toAddr, value, data, hs.ChainID), nil
}

func decodeQuantity(field, s string) (*uint256.Int, error) {
	if s == "" {
		return new(uint256.Int), nil
	}
	b, err := hexutil.DecodeBig(s)
	if err != nil {
		return nil, malformed("%s: %v", field, err)
	}
	return bigToUint256(field, b)
}

func decodeUint64(field, s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := hexutil.DecodeUint64(s)
	if err != nil {
		return 0, malformed("%s: %v", field, err)
	}
	return v, nil
}

func decodeData(field, s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, malformed("%s: %v", field, err)
	}
	return b, nil
}

// bytesToAddress maps an empty destination to contract creation and
// rejects anything that is not exactly one address long.
func bytesToAddress(b []byte) (*common.Address, error) {
	switch len(b) {
	case 0:
		return nil, nil
	case common.AddressLength:
		addr := common.BytesToAddress(b)
		return &addr, nil
	default:
		return nil, malformed("to must be %d bytes, have %d", common.AddressLength, len(b))
	}
}
