// Package keeper provides shared keeper interfaces for cross-module communication.
// Versioned interfaces allow stable API contracts between modules.
package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// =============================================================================
// Oracle Keeper Interfaces (Versioned)
// =============================================================================

// OracleKeeperV1 defines the minimal price oracle interface for cross-module use.
// Version 1.0 - Initial release
// Modules should depend on this interface rather than the concrete keeper, which
// lives outside this repository together with the rest of the price-source logic.
type OracleKeeperV1 interface {
	// GetPrice returns the latest observed price for an asset. A missing feed or
	// an unreachable source surfaces as an error so callers can abort without
	// committing partial state.
	GetPrice(ctx context.Context, asset string) (sdkmath.LegacyDec, error)
}

// =============================================================================
// Rewards Keeper Interfaces (Versioned)
// =============================================================================

// RewardsKeeperV1 defines the earned-fee ledger interface for cross-module use.
// Version 1.0 - Initial release
// The amm module owns the underlying store; the basket module settles provider
// fee credit through this interface during liquidity withdrawal.
type RewardsKeeperV1 interface {
	// GetEarnedFees returns the accumulated, unpaid fee credit for a provider.
	GetEarnedFees(ctx context.Context, provider sdk.AccAddress) (sdkmath.LegacyDec, error)

	// CreditEarnedFees adds delta to a provider's fee credit, creating the
	// balance on first credit.
	CreditEarnedFees(ctx context.Context, provider sdk.AccAddress, delta sdkmath.LegacyDec) error

	// SettleEarnedFees pays out and zeroes a provider's fee credit, returning
	// the amount paid. A zero balance settles to zero without a transfer.
	SettleEarnedFees(ctx context.Context, provider sdk.AccAddress) (sdkmath.LegacyDec, error)
}
