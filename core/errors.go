package core

import (
	"errors"

	"github.com/SipengXie/txkit/i18n"
)

var (
	ErrGasLimitTooLow      = errors.New("gas limit too low")
	ErrGasLimitTooHigh     = errors.New("gas limit too high")
	ErrGasPriceTooHigh     = errors.New("gas price too high")
	ErrDataTooLarge        = errors.New("transaction data too large")
	ErrInsufficientGas     = errors.New("intrinsic gas too low")
	ErrInsufficientBalance = errors.New("insufficient funds for gas * price + value")
	ErrInvalidAddress      = errors.New("invalid address")

	// ErrFeeOverflow is returned when a fee does not fit 256 bits.
	ErrFeeOverflow = errors.New("fee overflows 256 bits")
)

// ErrorKind classifies a validation failure.
type ErrorKind uint8

const (
	KindGasLimitTooLow ErrorKind = iota + 1
	KindGasLimitTooHigh
	KindGasPriceTooHigh
	KindDataTooLarge
	KindInsufficientGas
	KindInsufficientBalance
	KindInvalidAddress
)

var kindInfo = map[ErrorKind]struct {
	err error
	key string
}{
	KindGasLimitTooLow:      {ErrGasLimitTooLow, i18n.KeyGasLimitLow},
	KindGasLimitTooHigh:     {ErrGasLimitTooHigh, i18n.KeyGasLimitHigh},
	KindGasPriceTooHigh:     {ErrGasPriceTooHigh, i18n.KeyGasPriceHigh},
	KindDataTooLarge:        {ErrDataTooLarge, i18n.KeyDataTooLarge},
	KindInsufficientGas:     {ErrInsufficientGas, i18n.KeyInsufficientGas},
	KindInsufficientBalance: {ErrInsufficientBalance, i18n.KeyInsufficientBalance},
	KindInvalidAddress:      {ErrInvalidAddress, i18n.KeyInvalidAddress},
}

func (k ErrorKind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.err.Error()
	}
	return "unknown"
}

// TxError is a validation failure. Msg is the translated, user facing
// text; errors.Is matches the kind's sentinel error.
type TxError struct {
	Kind ErrorKind
	Key  string
	Msg  string
}

func (e *TxError) Error() string { return e.Msg }

func (e *TxError) Unwrap() error { return kindInfo[e.Kind].err }

func newTxError(tr i18n.Translator, kind ErrorKind, subs map[string]string) *TxError {
	key := kindInfo[kind].key
	return &TxError{Kind: kind, Key: key, Msg: tr.Translate(key, subs)}
}
