package types

import (
	"cosmossdk.io/errors"
)

// Basket module sentinel errors
var (
	ErrBasketAlreadyExists = errors.Register(ModuleName, 1, "basket already exists")
	ErrBasketNotFound      = errors.Register(ModuleName, 2, "basket not found")
	ErrAssetNotSupported   = errors.Register(ModuleName, 3, "asset not supported by basket")
	ErrLengthMismatch      = errors.Register(ModuleName, 4, "amounts length does not match basket assets")
	ErrInvalidAmount       = errors.Register(ModuleName, 5, "invalid amount")
	ErrInvalidPercentage   = errors.Register(ModuleName, 6, "percentage must be in (0,100]")
	ErrInsufficientFunds   = errors.Register(ModuleName, 7, "insufficient basket reserves")
	ErrOracleUnavailable   = errors.Register(ModuleName, 8, "oracle unavailable")
	ErrExternalCall        = errors.Register(ModuleName, 9, "external call failed")
	ErrOverflow            = errors.Register(ModuleName, 10, "arithmetic overflow")
	ErrInvalidBasketState  = errors.Register(ModuleName, 11, "invalid basket state")
)
