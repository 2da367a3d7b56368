package types

import (
	"cosmossdk.io/math"
)

// Params holds the configurable rates of the AMM module. They are resolved from
// genesis configuration at initialization time rather than baked into logic.
type Params struct {
	// TradeFeeRate is deducted from the raw swap output and credited pro-rata
	// to liquidity providers.
	TradeFeeRate math.LegacyDec `json:"trade_fee_rate"`
	// WithdrawalFeeRate is deducted from each asset amount on liquidity removal.
	WithdrawalFeeRate math.LegacyDec `json:"withdrawal_fee_rate"`
	// RatioTolerance bounds the relative deviation allowed between the supplied
	// amount ratio and the pool reserve ratio on liquidity addition.
	RatioTolerance math.LegacyDec `json:"ratio_tolerance"`
	// FeeCreditDenom is the accounting asset in which earned-fee balances are
	// settled.
	FeeCreditDenom string `json:"fee_credit_denom"`
}

// DefaultParams returns default parameters for the amm module
func DefaultParams() Params {
	return Params{
		TradeFeeRate:      math.LegacyNewDecWithPrec(3, 3), // 0.3%
		WithdrawalFeeRate: math.LegacyNewDecWithPrec(1, 3), // 0.1%
		RatioTolerance:    math.LegacyNewDecWithPrec(1, 2), // 1%
		FeeCreditDenom:    "ufee",
	}
}

// Validate ensures the parameters are well-formed.
func (p Params) Validate() error {
	if p.TradeFeeRate.IsNil() || p.TradeFeeRate.IsNegative() || p.TradeFeeRate.GTE(math.LegacyOneDec()) {
		return ErrInvalidParams.Wrap("trade fee rate must be in [0,1)")
	}
	if p.WithdrawalFeeRate.IsNil() || p.WithdrawalFeeRate.IsNegative() || p.WithdrawalFeeRate.GTE(math.LegacyOneDec()) {
		return ErrInvalidParams.Wrap("withdrawal fee rate must be in [0,1)")
	}
	if p.RatioTolerance.IsNil() || p.RatioTolerance.IsNegative() {
		return ErrInvalidParams.Wrap("ratio tolerance cannot be negative")
	}
	if p.FeeCreditDenom == "" {
		return ErrInvalidParams.Wrap("fee credit denom cannot be empty")
	}
	return nil
}
