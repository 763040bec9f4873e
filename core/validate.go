package core

import (
	"strconv"

	"github.com/c2h5oh/datasize"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethcore "github.com/ethereum/go-ethereum/core"
	"github.com/holiman/uint256"

	"github.com/SipengXie/txkit/accounts/addrcheck"
	"github.com/SipengXie/txkit/core/types"
	"github.com/SipengXie/txkit/i18n"
	"github.com/SipengXie/txkit/params"
)

// AddressOracle decides whether a hex address is valid on a chain.
type AddressOracle interface {
	IsValidAddress(address string, chainID uint64) bool
}

// Validator applies the economic and structural checks to transactions.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	cfg        params.GuardConfig
	translator i18n.Translator
	oracle     AddressOracle
}

// Option configures a Validator.
type Option func(*Validator)

// WithTranslator sets the translator used for error messages.
func WithTranslator(tr i18n.Translator) Option {
	return func(v *Validator) { v.translator = tr }
}

// WithAddressOracle replaces the default address oracle.
func WithAddressOracle(o AddressOracle) Option {
	return func(v *Validator) { v.oracle = o }
}

// NewValidator returns a validator enforcing cfg. A nil MaxGasPrice leaves
// the gas price unbounded.
func NewValidator(cfg params.GuardConfig, opts ...Option) *Validator {
	v := &Validator{
		cfg:        cfg.Copy(),
		translator: i18n.Default(),
		oracle:     addrcheck.Oracle{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// DefaultValidator returns a validator using params.DefaultGuardConfig.
func DefaultValidator() *Validator {
	return NewValidator(params.DefaultGuardConfig)
}

// GasParamsInRange checks the gas limit against the configured floor and
// ceiling, then the gas price against its ceiling.
func (v *Validator) GasParamsInRange(tx *types.Transaction) error {
	if limit := tx.GasLimit(); limit < v.cfg.MinGasLimit {
		return newTxError(v.translator, KindGasLimitTooLow, map[string]string{
			"limit": strconv.FormatUint(v.cfg.MinGasLimit, 10),
		})
	}
	if limit := tx.GasLimit(); limit > v.cfg.MaxGasLimit {
		return newTxError(v.translator, KindGasLimitTooHigh, map[string]string{
			"limit": strconv.FormatUint(v.cfg.MaxGasLimit, 10),
		})
	}
	if v.cfg.MaxGasPrice != nil && tx.GasPrice().Gt(v.cfg.MaxGasPrice) {
		return newTxError(v.translator, KindGasPriceTooHigh, map[string]string{
			"price": v.cfg.MaxGasPrice.ToBig().String(),
		})
	}
	return nil
}

// DataSizeInRange checks the payload against the configured maximum.
func (v *Validator) DataSizeInRange(tx *types.Transaction) error {
	if v.cfg.MaxDataSize == 0 {
		return nil
	}
	if size := datasize.ByteSize(len(tx.Data())); size > v.cfg.MaxDataSize {
		return newTxError(v.translator, KindDataTooLarge, map[string]string{
			"size":  size.HR(),
			"limit": v.cfg.MaxDataSize.HR(),
		})
	}
	return nil
}

// IntrinsicGas returns the gas a transaction consumes before any
// execution: the base cost, the contract creation surcharge and the per
// byte payload cost.
func (v *Validator) IntrinsicGas(tx *types.Transaction) (uint64, error) {
	return gethcore.IntrinsicGas(tx.Data(), nil, tx.IsContractCreation(), true, v.cfg.IstanbulDataGas, false)
}

// ValidGasLimit reports whether the gas limit covers the intrinsic gas.
func (v *Validator) ValidGasLimit(tx *types.Transaction) bool {
	gas, err := v.IntrinsicGas(tx)
	if err != nil {
		return false
	}
	return gas <= tx.GasLimit()
}

// GetTransactionFee returns gasPrice * gasLimit. A product that does not
// fit 256 bits yields ErrFeeOverflow.
func GetTransactionFee(gasPrice *uint256.Int, gasLimit uint64) (*uint256.Int, error) {
	if gasPrice == nil {
		return new(uint256.Int), nil
	}
	fee, overflow := new(uint256.Int).MulOverflow(gasPrice, uint256.NewInt(gasLimit))
	if overflow {
		return nil, ErrFeeOverflow
	}
	return fee, nil
}

// UpfrontCost returns value + gasPrice * gasLimit, the balance a sender
// needs before the transaction can be admitted.
func UpfrontCost(tx *types.Transaction) (*uint256.Int, error) {
	fee, err := GetTransactionFee(tx.GasPrice(), tx.GasLimit())
	if err != nil {
		return nil, err
	}
	cost, overflow := fee.AddOverflow(fee, tx.Value())
	if overflow {
		return nil, ErrFeeOverflow
	}
	return cost, nil
}

// EnoughBalanceViaTx reports whether balance covers the upfront cost of tx.
// A cost beyond 256 bits is never covered.
func (v *Validator) EnoughBalanceViaTx(tx *types.Transaction, balance *uint256.Int) bool {
	cost, err := UpfrontCost(tx)
	if err != nil || balance == nil {
		return false
	}
	return !cost.Gt(balance)
}

// ValidAddress checks the destination with the address oracle. Contract
// creation has no destination and only passes when the config allows it.
func (v *Validator) ValidAddress(tx *types.Transaction) error {
	to := tx.To()
	if to == nil && v.cfg.AllowContractCreation {
		return nil
	}
	address := "0x"
	if to != nil {
		address = hexutil.Encode(to[:])
	}
	if !v.oracle.IsValidAddress(address, tx.ChainID()) {
		return newTxError(v.translator, KindInvalidAddress, map[string]string{"address": address})
	}
	return nil
}

// ValidateTx runs every check and returns the first failure. The intrinsic
// gas check is skipped when isOffline is set; offline signers must
// validate again before broadcasting.
func (v *Validator) ValidateTx(tx *types.Transaction, balance *uint256.Int, isOffline bool) error {
	if err := v.GasParamsInRange(tx); err != nil {
		return err
	}
	if err := v.DataSizeInRange(tx); err != nil {
		return err
	}
	if !isOffline && !v.ValidGasLimit(tx) {
		gas, _ := v.IntrinsicGas(tx)
		return newTxError(v.translator, KindInsufficientGas, map[string]string{
			"gas": strconv.FormatUint(gas, 10),
		})
	}
	if !v.EnoughBalanceViaTx(tx, balance) {
		subs := map[string]string{"cost": "more than 2^256"}
		if cost, err := UpfrontCost(tx); err == nil {
			subs["cost"] = cost.ToBig().String()
		}
		return newTxError(v.translator, KindInsufficientBalance, subs)
	}
	return v.ValidAddress(tx)
}

// ValidateInput normalizes in and validates the result.
func (v *Validator) ValidateInput(in types.TxInput, balance *uint256.Int, isOffline bool) (*types.Transaction, error) {
	tx, err := types.MakeTransaction(in)
	if err != nil {
		return nil, err
	}
	if err := v.ValidateTx(tx, balance, isOffline); err != nil {
		return nil, err
	}
	return tx, nil
}
