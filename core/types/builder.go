package types

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mitchellh/mapstructure"
)

// TxInput is any value MakeTransaction knows how to normalize. The set of
// implementations is closed: RawTx, RawHexTx, TxFields, HexStrTransaction,
// FieldValues and *Transaction.
type TxInput interface {
	toTransaction() (*Transaction, error)
}

// MakeTransaction normalizes in into the canonical transaction record.
func MakeTransaction(in TxInput) (*Transaction, error) {
	if in == nil {
		return nil, malformed("no input")
	}
	return in.toTransaction()
}

// RawTx is an RLP encoded legacy transaction, signed or unsigned.
type RawTx []byte

func (raw RawTx) toTransaction() (*Transaction, error) {
	return decodeRaw(raw)
}

// RawHexTx is a 0x prefixed hex rendering of a RawTx.
type RawHexTx string

func (raw RawHexTx) toTransaction() (*Transaction, error) {
	b, err := hexutil.Decode(string(raw))
	if err != nil {
		return nil, malformed("raw transaction: %v", err)
	}
	return decodeRaw(b)
}

// TxFields is a partial set of transaction fields. Nil fields default to
// zero, a nil To means contract creation.
type TxFields struct {
	Nonce    *uint64
	GasPrice *big.Int
	GasLimit *uint64
	To       *common.Address
	Value    *big.Int
	Data     []byte
	ChainID  *uint64
}

func (f TxFields) toTransaction() (*Transaction, error) {
	gasPrice, err := bigToUint256("gasPrice", f.GasPrice)
	if err != nil {
		return nil, err
	}
	value, err := bigToUint256("value", f.Value)
	if err != nil {
		return nil, err
	}
	return newTransaction(derefUint64(f.Nonce), gasPrice, derefUint64(f.GasLimit), f.To, value, f.Data, derefUint64(f.ChainID)), nil
}

func derefUint64(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

// FieldValues is a loosely typed field set, typically decoded JSON. Keys
// follow the JSON names of HexStrTransaction. Quantities may be hex strings
// or numbers, chainId may be a number or a decimal or hex string. Numbers
// must be exact non-negative integers; decode JSON with ParseFieldValues so
// large amounts arrive as json.Number instead of float64.
type FieldValues map[string]interface{}

// ParseFieldValues decodes a JSON object into FieldValues, keeping numbers
// as json.Number.
func ParseFieldValues(blob []byte) (FieldValues, error) {
	dec := json.NewDecoder(bytes.NewReader(blob))
	dec.UseNumber()
	fields := make(map[string]interface{})
	if err := dec.Decode(&fields); err != nil {
		return nil, malformed("field values: %v", err)
	}
	if dec.More() {
		return nil, malformed("field values: trailing data")
	}
	return FieldValues(fields), nil
}

func (fv FieldValues) toTransaction() (*Transaction, error) {
	var hs HexStrTransaction
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  quantityHook,
		ErrorUnused: true,
		TagName:     "json",
		Result:      &hs,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(map[string]interface{}(fv)); err != nil {
		return nil, malformed("field values: %v", err)
	}
	return hs.toTransaction()
}

// maxExactFloat is the largest integer below which every float64 integer is
// exactly representable.
const maxExactFloat = 1 << 53

// quantityHook renders numeric inputs headed for string fields as hex
// quantities, so {"gasLimit": 21000} reads like {"gasLimit": "0x5208"}.
// Numbers and decimal or hex strings headed for uint64 fields must fit in
// 64 bits.
func quantityHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.String && to.Kind() != reflect.Uint64 {
		return data, nil
	}
	n, isNumber, err := toQuantity(data)
	if err != nil {
		return nil, err
	}
	if to.Kind() == reflect.String {
		if !isNumber {
			return data, nil
		}
		return hexutil.EncodeBig(n), nil
	}
	if !isNumber {
		s, ok := data.(string)
		if !ok {
			return nil, malformed("expected an integer, got %T", data)
		}
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, malformed("integer %q: %v", s, err)
		}
		return v, nil
	}
	if !n.IsUint64() {
		return nil, malformed("integer %s exceeds 64 bits", n)
	}
	return n.Uint64(), nil
}

// toQuantity converts numeric data to a non-negative big integer. The
// boolean is false for non-numeric data.
func toQuantity(data interface{}) (*big.Int, bool, error) {
	switch v := data.(type) {
	case json.Number:
		n, ok := new(big.Int).SetString(string(v), 10)
		if !ok {
			return nil, false, malformed("quantity %s is not an integer", v)
		}
		if n.Sign() < 0 {
			return nil, false, malformed("negative quantity %s", v)
		}
		return n, true, nil
	case *big.Int:
		if v == nil {
			return new(big.Int), true, nil
		}
		if v.Sign() < 0 {
			return nil, false, malformed("negative quantity %s", v)
		}
		return new(big.Int).Set(v), true, nil
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return nil, false, malformed("negative quantity %d", rv.Int())
		}
		return new(big.Int).SetInt64(rv.Int()), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), true, nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f < 0 || f != math.Trunc(f) {
			return nil, false, malformed("quantity %v is not a non-negative integer", f)
		}
		if f > maxExactFloat {
			return nil, false, malformed("quantity %v is not exact as a float", f)
		}
		return new(big.Int).SetUint64(uint64(f)), true, nil
	}
	return nil, false, nil
}
