package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/mtfs-network/mtfs/x/shared/keeper"
)

// SettlementKeeper is the expected settlement ledger used to move asset
// quantities between accounts, keyed by each asset's own ledger identifier.
type SettlementKeeper interface {
	Transfer(ctx context.Context, assetID string, from, to sdk.AccAddress, amount sdkmath.LegacyDec) error
}

// OracleKeeper is the expected price oracle, resolved through the shared
// versioned interface.
type OracleKeeper = sharedkeeper.OracleKeeperV1

// RewardsKeeper settles provider earned-fee credit held by the amm module.
type RewardsKeeper = sharedkeeper.RewardsKeeperV1
