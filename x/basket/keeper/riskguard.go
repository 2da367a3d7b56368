package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/mtfs-network/mtfs/x/basket/types"
)

// Read-only risk predicates over basket state, consumed by operational and
// governance callers before admitting risk-sensitive operations. None of them
// mutate state.

// CheckReserveThreshold reports whether every reserve is at least threshold.
// A reserve exactly equal to the threshold passes.
func (k Keeper) CheckReserveThreshold(ctx context.Context, basketID string, threshold math.LegacyDec) (bool, error) {
	basket, err := k.GetBasket(ctx, basketID)
	if err != nil {
		return false, err
	}

	for _, reserve := range basket.Reserves {
		if reserve.LT(threshold) {
			return false, nil
		}
	}
	return true, nil
}

// CheckBasketExposure reports whether no single reserve exceeds limit as a
// fraction of total reserves. An empty basket carries no exposure.
func (k Keeper) CheckBasketExposure(ctx context.Context, basketID string, limit math.LegacyDec) (bool, error) {
	basket, err := k.GetBasket(ctx, basketID)
	if err != nil {
		return false, err
	}

	total := basket.TotalReserves()
	if total.IsZero() {
		return true, nil
	}

	for _, reserve := range basket.Reserves {
		if reserve.Quo(total).GT(limit) {
			return false, nil
		}
	}
	return true, nil
}

// CheckAssetVolatility reports whether no asset's relative price change
// between the last observation and the current oracle price exceeds
// threshold. Any failed lookup, including a missing previous observation,
// fails the whole check with ErrOracleUnavailable; there is no partial
// evaluation.
func (k Keeper) CheckAssetVolatility(ctx context.Context, basketID string, threshold math.LegacyDec) (bool, error) {
	basket, err := k.GetBasket(ctx, basketID)
	if err != nil {
		return false, err
	}

	for i, asset := range basket.Assets {
		previous := basket.LastPrices[i]
		if previous.IsZero() {
			return false, types.ErrOracleUnavailable.Wrapf("no previous observation for %q", asset)
		}

		current, err := k.oracleKeeper.GetPrice(ctx, asset)
		if err != nil {
			return false, types.ErrOracleUnavailable.Wrapf("price lookup for %q: %v", asset, err)
		}

		change := current.Sub(previous).Abs().Quo(previous)
		if change.GT(threshold) {
			return false, nil
		}
	}
	return true, nil
}
