package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mtfs-network/mtfs/x/amm/types"
)

// Swap trades amountIn of the input asset for the other pool asset under the
// constant-product invariant. The trading fee is deducted from the raw output;
// the fee value is retained in reserves and credited pro-rata to current
// providers as earned fee balances. Transfers and state updates commit
// atomically.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID, inputAsset string, amountIn math.LegacyDec) (math.LegacyDec, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.LegacyDec{}, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	amountOut, err := k.swap(cacheCtx, trader, poolID, inputAsset, amountIn)
	if err != nil {
		return math.LegacyDec{}, err
	}

	write()
	return amountOut, nil
}

func (k Keeper) swap(ctx sdk.Context, trader sdk.AccAddress, poolID, inputAsset string, amountIn math.LegacyDec) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		return math.LegacyDec{}, types.ErrPoolUninitialized.Wrapf("pool %q has no liquidity", poolID)
	}

	var reserveIn, reserveOut math.LegacyDec
	var outputAsset string
	switch inputAsset {
	case pool.AssetA:
		reserveIn, reserveOut = pool.ReserveA, pool.ReserveB
		outputAsset = pool.AssetB
	case pool.AssetB:
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
		outputAsset = pool.AssetA
	default:
		return math.LegacyDec{}, types.ErrAssetNotInPool.Wrapf("asset %q not in pool %q", inputAsset, poolID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.LegacyDec{}, err
	}

	// Constant product: K = reserveIn * reserveOut is preserved by the raw
	// (pre-fee) output; the fee is carved out of the output side only.
	invariantK, err := safeMul(reserveIn, reserveOut)
	if err != nil {
		return math.LegacyDec{}, err
	}
	newReserveIn := reserveIn.Add(amountIn)
	quotient, err := safeQuo(invariantK, newReserveIn)
	if err != nil {
		return math.LegacyDec{}, err
	}
	rawOut := reserveOut.Sub(quotient)
	if !rawOut.IsPositive() {
		return math.LegacyDec{}, types.ErrInvalidAmount.Wrap("swap output rounds to zero")
	}

	fee := rawOut.Mul(params.TradeFeeRate)
	amountOut := rawOut.Sub(fee)

	if err := k.settlementKeeper.Transfer(ctx, inputAsset, trader, k.moduleAddress, amountIn); err != nil {
		return math.LegacyDec{}, types.ErrExternalCall.Wrapf("debit %s %s: %v", amountIn, inputAsset, err)
	}
	if err := k.settlementKeeper.Transfer(ctx, outputAsset, k.moduleAddress, trader, amountOut); err != nil {
		return math.LegacyDec{}, types.ErrExternalCall.Wrapf("credit %s %s: %v", amountOut, outputAsset, err)
	}

	// The output reserve is reduced only by amountOut, not by the fee, so the
	// fee value stays in reserves until distributed on withdrawal.
	if inputAsset == pool.AssetA {
		pool.ReserveA = newReserveIn
		pool.ReserveB = reserveOut.Sub(amountOut)
	} else {
		pool.ReserveB = newReserveIn
		pool.ReserveA = reserveOut.Sub(amountOut)
	}
	if err := k.setPool(ctx, pool); err != nil {
		return math.LegacyDec{}, err
	}

	if err := k.distributeFees(ctx, pool, outputAsset, fee); err != nil {
		return math.LegacyDec{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID),
			sdk.NewAttribute(types.AttributeKeyUser, trader.String()),
			sdk.NewAttribute(types.AttributeKeyInputAsset, inputAsset),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
		),
	)

	return amountOut, nil
}
