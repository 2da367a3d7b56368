package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mtfs-network/mtfs/x/basket/types"
)

// BasketInvariant computes the generalized invariant
//
//	D = Σ_i reserve_i * Π_{j≠i} (1 + reserve_i / reserve_j)
//
// over the given reserve vector. Every reserve must be positive; the protocol
// defines no invariant value for a drained slot.
func BasketInvariant(reserves []math.LegacyDec) (math.LegacyDec, error) {
	d := math.LegacyZeroDec()
	for i, ri := range reserves {
		term := ri
		for j, rj := range reserves {
			if j == i {
				continue
			}
			ratio, err := safeQuo(ri, rj)
			if err != nil {
				return math.LegacyDec{}, err
			}
			term, err = safeMul(term, math.LegacyOneDec().Add(ratio))
			if err != nil {
				return math.LegacyDec{}, err
			}
		}
		d = d.Add(term)
	}
	return d, nil
}

// Swap trades amount of fromAsset for toAsset. The output is defined as the
// drop in the generalized invariant caused by removing amount from the input
// reserve: toAmount = D_before - D_after, which is then added to the output
// reserve. The involved assets' last-observed prices are refreshed from the
// oracle in the same operation. Transfers and state updates commit atomically.
func (k Keeper) Swap(ctx context.Context, user sdk.AccAddress, basketID, fromAsset, toAsset string, amount math.LegacyDec) (math.LegacyDec, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.LegacyDec{}, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}
	if fromAsset == toAsset {
		return math.LegacyDec{}, types.ErrInvalidAmount.Wrap("cannot swap identical assets")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	toAmount, err := k.swap(cacheCtx, user, basketID, fromAsset, toAsset, amount)
	if err != nil {
		return math.LegacyDec{}, err
	}

	write()
	return toAmount, nil
}

func (k Keeper) swap(ctx sdk.Context, user sdk.AccAddress, basketID, fromAsset, toAsset string, amount math.LegacyDec) (math.LegacyDec, error) {
	basket, err := k.GetBasket(ctx, basketID)
	if err != nil {
		return math.LegacyDec{}, err
	}

	fromIdx, ok := basket.AssetIndex(fromAsset)
	if !ok {
		return math.LegacyDec{}, types.ErrAssetNotSupported.Wrapf("asset %q not in basket %q", fromAsset, basketID)
	}
	toIdx, ok := basket.AssetIndex(toAsset)
	if !ok {
		return math.LegacyDec{}, types.ErrAssetNotSupported.Wrapf("asset %q not in basket %q", toAsset, basketID)
	}

	if basket.Reserves[fromIdx].LT(amount) {
		return math.LegacyDec{}, types.ErrInsufficientFunds.Wrapf(
			"reserve %s of %q below swap amount %s", basket.Reserves[fromIdx], fromAsset, amount)
	}

	// Refresh the two involved assets' observations; an unreachable oracle
	// aborts the swap before any reserve mutation.
	for _, idx := range []int{fromIdx, toIdx} {
		price, err := k.oracleKeeper.GetPrice(ctx, basket.Assets[idx])
		if err != nil {
			return math.LegacyDec{}, types.ErrOracleUnavailable.Wrapf("price lookup for %q: %v", basket.Assets[idx], err)
		}
		basket.LastPrices[idx] = price
	}

	dBefore, err := BasketInvariant(basket.Reserves)
	if err != nil {
		return math.LegacyDec{}, err
	}

	basket.Reserves[fromIdx] = basket.Reserves[fromIdx].Sub(amount)

	dAfter, err := BasketInvariant(basket.Reserves)
	if err != nil {
		return math.LegacyDec{}, err
	}

	toAmount := dBefore.Sub(dAfter)
	if !toAmount.IsPositive() {
		return math.LegacyDec{}, types.ErrInvalidBasketState.Wrapf(
			"invariant delta %s is not positive for swap of %s %q", toAmount, amount, fromAsset)
	}

	basket.Reserves[toIdx] = basket.Reserves[toIdx].Add(toAmount)

	// Debit and credit through each asset's own settlement ledger.
	if err := k.settlementKeeper.Transfer(ctx, fromAsset, user, k.moduleAddress, amount); err != nil {
		return math.LegacyDec{}, types.ErrExternalCall.Wrapf("debit %s %s: %v", amount, fromAsset, err)
	}
	if err := k.settlementKeeper.Transfer(ctx, toAsset, k.moduleAddress, user, toAmount); err != nil {
		return math.LegacyDec{}, types.ErrExternalCall.Wrapf("credit %s %s: %v", toAmount, toAsset, err)
	}

	if err := k.setBasket(ctx, basket); err != nil {
		return math.LegacyDec{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBasketSwap,
			sdk.NewAttribute(types.AttributeKeyBasketID, basketID),
			sdk.NewAttribute(types.AttributeKeyUser, user.String()),
			sdk.NewAttribute(types.AttributeKeyFromAsset, fromAsset),
			sdk.NewAttribute(types.AttributeKeyToAsset, toAsset),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyToAmount, toAmount.String()),
		),
	)

	return toAmount, nil
}
