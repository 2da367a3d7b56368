package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SettlementKeeper is the expected settlement ledger used to actually move
// asset quantities between accounts. The ledger itself lives outside this
// repository; the keeper only depends on this boundary. A failed transfer must
// leave both accounts untouched.
type SettlementKeeper interface {
	// Transfer moves amount of assetID from one account to another. It fails
	// with a ledger-specific error when funds are insufficient or the ledger
	// for assetID is unreachable.
	Transfer(ctx context.Context, assetID string, from, to sdk.AccAddress, amount sdkmath.LegacyDec) error
}
