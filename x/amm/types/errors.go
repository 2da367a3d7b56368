package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrPoolAlreadyInitialized = errors.Register(ModuleName, 1, "pool already initialized")
	ErrPoolUninitialized      = errors.Register(ModuleName, 2, "pool not initialized")
	ErrPoolNotFound           = errors.Register(ModuleName, 3, "pool not found")
	ErrInvalidAmount          = errors.Register(ModuleName, 4, "invalid amount")
	ErrRatioMismatch          = errors.Register(ModuleName, 5, "supplied amounts do not match pool ratio")
	ErrAssetNotInPool         = errors.Register(ModuleName, 6, "asset not in pool")
	ErrPositionNotFound       = errors.Register(ModuleName, 7, "provider position not found")
	ErrInsufficientShares     = errors.Register(ModuleName, 8, "insufficient lp shares")
	ErrExternalCall           = errors.Register(ModuleName, 9, "external call failed")
	ErrOverflow               = errors.Register(ModuleName, 10, "arithmetic overflow")
	ErrInvalidPoolState       = errors.Register(ModuleName, 11, "invalid pool state")
	ErrInvalidParams          = errors.Register(ModuleName, 12, "invalid module parameters")
)
