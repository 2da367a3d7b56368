package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Pool is a two-asset constant-product market maker. ReserveA * ReserveB is the
// pool invariant K: unchanged by a swap before fee extraction, increased by
// liquidity addition, decreased by liquidity removal.
type Pool struct {
	Id          string         `json:"id"`
	AssetA      string         `json:"asset_a"`
	AssetB      string         `json:"asset_b"`
	ReserveA    math.LegacyDec `json:"reserve_a"`
	ReserveB    math.LegacyDec `json:"reserve_b"`
	TotalShares math.LegacyDec `json:"total_shares"`
}

// Validate checks the pool record read back from the store.
func (p Pool) Validate() error {
	if p.Id == "" {
		return ErrInvalidPoolState.Wrap("pool id cannot be empty")
	}
	if p.AssetA == "" || p.AssetB == "" {
		return ErrInvalidPoolState.Wrap("pool asset identifiers cannot be empty")
	}
	if p.AssetA == p.AssetB {
		return ErrInvalidPoolState.Wrap("pool assets must be distinct")
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("pool record is missing fields")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() {
		return ErrInvalidPoolState.Wrap("pool reserves cannot be negative")
	}
	if p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("total shares cannot be negative")
	}
	return nil
}

// IsEmpty reports whether the pool holds no reserves yet.
func (p Pool) IsEmpty() bool {
	return p.ReserveA.IsZero() && p.ReserveB.IsZero()
}

// HasAsset reports whether asset is one of the pool's designated slots.
func (p Pool) HasAsset(asset string) bool {
	return asset == p.AssetA || asset == p.AssetB
}

// ProviderPosition records a liquidity provider's cumulative contributions and
// LP share claim on a pool. The sum of LpShares across all positions equals the
// pool's TotalShares. A position is logically retired once LpShares reaches
// zero; the record is not required to be deleted.
type ProviderPosition struct {
	PoolId        string         `json:"pool_id"`
	Provider      string         `json:"provider"`
	ContributionA math.LegacyDec `json:"contribution_a"`
	ContributionB math.LegacyDec `json:"contribution_b"`
	LpShares      math.LegacyDec `json:"lp_shares"`
}

// Validate checks the position record read back from the store.
func (p ProviderPosition) Validate() error {
	if p.PoolId == "" {
		return ErrInvalidPoolState.Wrap("position pool id cannot be empty")
	}
	if p.Provider == "" {
		return ErrInvalidPoolState.Wrap("position provider cannot be empty")
	}
	if p.ContributionA.IsNil() || p.ContributionB.IsNil() || p.LpShares.IsNil() {
		return ErrInvalidPoolState.Wrap("position record is missing fields")
	}
	if p.ContributionA.IsNegative() || p.ContributionB.IsNegative() || p.LpShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("position amounts cannot be negative")
	}
	return nil
}

// EarnedFeeBalance is a provider's accumulated, unpaid fee credit. Created on
// first credit, zeroed on settlement, never negative.
type EarnedFeeBalance struct {
	Provider string         `json:"provider"`
	Amount   math.LegacyDec `json:"amount"`
}
