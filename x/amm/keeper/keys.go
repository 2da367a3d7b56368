package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// PositionKeyPrefix is the prefix for provider position store keys
	PositionKeyPrefix = []byte{0x02}

	// EarnedFeeKeyPrefix is the prefix for earned fee balance store keys
	EarnedFeeKeyPrefix = []byte{0x03}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x04}
)

// PoolKey returns the store key for a pool by ID
func PoolKey(poolID string) []byte {
	return append(PoolKeyPrefix, []byte(poolID)...)
}

// PositionKey returns the store key for a provider position
func PositionKey(poolID string, provider sdk.AccAddress) []byte {
	return append(PositionKeyPoolPrefix(poolID), provider.Bytes()...)
}

// PositionKeyPoolPrefix returns the prefix for all positions in a pool
func PositionKeyPoolPrefix(poolID string) []byte {
	key := append(PositionKeyPrefix, []byte(poolID)...)
	return append(key, []byte("/")...)
}

// EarnedFeeKey returns the store key for a provider's earned fee balance
func EarnedFeeKey(provider sdk.AccAddress) []byte {
	return append(EarnedFeeKeyPrefix, provider.Bytes()...)
}
