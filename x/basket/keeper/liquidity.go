package keeper

import (
	"context"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mtfs-network/mtfs/x/basket/types"
)

// AddLiquidity transfers amounts[i] of each basket asset from the user into
// the reserve wallet and increments the matching reserve. The amounts list
// must be parallel to the basket's asset list.
func (k Keeper) AddLiquidity(ctx context.Context, user sdk.AccAddress, basketID string, amounts []math.LegacyDec) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.addLiquidity(cacheCtx, user, basketID, amounts); err != nil {
		return err
	}

	write()
	return nil
}

func (k Keeper) addLiquidity(ctx sdk.Context, user sdk.AccAddress, basketID string, amounts []math.LegacyDec) error {
	basket, err := k.GetBasket(ctx, basketID)
	if err != nil {
		return err
	}

	if len(amounts) != len(basket.Assets) {
		return types.ErrLengthMismatch.Wrapf("got %d amounts for %d assets", len(amounts), len(basket.Assets))
	}
	for i, amount := range amounts {
		if amount.IsNil() || amount.IsNegative() {
			return types.ErrInvalidAmount.Wrapf("amount for %q cannot be negative", basket.Assets[i])
		}
	}

	rendered := make([]string, len(amounts))
	for i, amount := range amounts {
		rendered[i] = amount.String()
		if amount.IsZero() {
			continue
		}
		if err := k.settlementKeeper.Transfer(ctx, basket.Assets[i], user, k.moduleAddress, amount); err != nil {
			return types.ErrExternalCall.Wrapf("transfer %s %s: %v", amount, basket.Assets[i], err)
		}
		basket.Reserves[i] = basket.Reserves[i].Add(amount)
	}

	if err := k.setBasket(ctx, basket); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBasketLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyBasketID, basketID),
			sdk.NewAttribute(types.AttributeKeyUser, user.String()),
			sdk.NewAttribute(types.AttributeKeyAmounts, strings.Join(rendered, ",")),
		),
	)
	return nil
}

// RemoveLiquidity withdraws percentage (in (0,100]) of every reserve to the
// user and settles any earned fee credit owed to the caller in the same
// operation.
func (k Keeper) RemoveLiquidity(ctx context.Context, user sdk.AccAddress, basketID string, percentage math.LegacyDec) error {
	if percentage.IsNil() || !percentage.IsPositive() || percentage.GT(math.LegacyNewDec(100)) {
		return types.ErrInvalidPercentage.Wrapf("got %s", percentage)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.removeLiquidity(cacheCtx, user, basketID, percentage); err != nil {
		return err
	}

	write()
	return nil
}

func (k Keeper) removeLiquidity(ctx sdk.Context, user sdk.AccAddress, basketID string, percentage math.LegacyDec) error {
	basket, err := k.GetBasket(ctx, basketID)
	if err != nil {
		return err
	}

	fraction := percentage.Quo(math.LegacyNewDec(100))
	rendered := make([]string, len(basket.Assets))
	for i := range basket.Assets {
		removal := basket.Reserves[i].Mul(fraction)
		rendered[i] = removal.String()
		if removal.IsZero() {
			continue
		}
		if err := k.settlementKeeper.Transfer(ctx, basket.Assets[i], k.moduleAddress, user, removal); err != nil {
			return types.ErrExternalCall.Wrapf("transfer %s %s: %v", removal, basket.Assets[i], err)
		}
		basket.Reserves[i] = basket.Reserves[i].Sub(removal)
	}

	if err := k.setBasket(ctx, basket); err != nil {
		return err
	}

	if _, err := k.rewardsKeeper.SettleEarnedFees(ctx, user); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBasketLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyBasketID, basketID),
			sdk.NewAttribute(types.AttributeKeyUser, user.String()),
			sdk.NewAttribute(types.AttributeKeyPercentage, percentage.String()),
			sdk.NewAttribute(types.AttributeKeyAmounts, strings.Join(rendered, ",")),
		),
	)
	return nil
}
