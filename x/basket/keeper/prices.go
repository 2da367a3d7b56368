package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mtfs-network/mtfs/x/basket/types"
)

// UpdateBasketPrices refreshes the last-observed price of every basket asset
// from the oracle. If any lookup fails the whole operation fails and no price
// is partially updated.
func (k Keeper) UpdateBasketPrices(ctx context.Context, basketID string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.updateBasketPrices(cacheCtx, basketID); err != nil {
		return err
	}

	write()
	return nil
}

func (k Keeper) updateBasketPrices(ctx sdk.Context, basketID string) error {
	basket, err := k.GetBasket(ctx, basketID)
	if err != nil {
		return err
	}

	// Query every price before mutating anything.
	prices := make([]math.LegacyDec, len(basket.Assets))
	for i, asset := range basket.Assets {
		price, err := k.oracleKeeper.GetPrice(ctx, asset)
		if err != nil {
			return types.ErrOracleUnavailable.Wrapf("price lookup for %q: %v", asset, err)
		}
		prices[i] = price
	}

	basket.LastPrices = prices
	if err := k.setBasket(ctx, basket); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBasketPricesUpdated,
			sdk.NewAttribute(types.AttributeKeyBasketID, basketID),
		),
	)
	return nil
}
