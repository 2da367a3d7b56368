package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mtfs-network/mtfs/x/amm/types"
)

// GetPosition retrieves a provider's position in a pool. Returns
// ErrPositionNotFound if the provider has never added liquidity.
func (k Keeper) GetPosition(ctx context.Context, poolID string, provider sdk.AccAddress) (types.ProviderPosition, error) {
	store := k.getStore(ctx)
	bz := store.Get(PositionKey(poolID, provider))
	if bz == nil {
		return types.ProviderPosition{}, types.ErrPositionNotFound.Wrapf("provider %s in pool %q", provider, poolID)
	}

	var pos types.ProviderPosition
	if err := unmarshalRecord(bz, &pos); err != nil {
		return types.ProviderPosition{}, fmt.Errorf("GetPosition: unmarshal: %w", err)
	}
	if err := pos.Validate(); err != nil {
		return types.ProviderPosition{}, err
	}
	return pos, nil
}

// setPosition saves a provider position to the store. A fully-withdrawn
// position is kept with zero shares rather than deleted.
func (k Keeper) setPosition(ctx context.Context, pos types.ProviderPosition) error {
	if err := pos.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz, err := marshalRecord(pos)
	if err != nil {
		return fmt.Errorf("setPosition: marshal: %w", err)
	}
	store.Set(PositionKey(pos.PoolId, sdk.MustAccAddressFromBech32(pos.Provider)), bz)
	return nil
}

// IteratePositionsByPool iterates over all provider positions in a pool in
// store key order, which is deterministic across replicas.
func (k Keeper) IteratePositionsByPool(ctx context.Context, poolID string, cb func(pos types.ProviderPosition) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PositionKeyPoolPrefix(poolID))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pos types.ProviderPosition
		if err := unmarshalRecord(iterator.Value(), &pos); err != nil {
			return fmt.Errorf("IteratePositionsByPool: unmarshal: %w", err)
		}
		if cb(pos) {
			break
		}
	}
	return nil
}

// AddLiquidity supplies both pool assets and mints LP shares. On an empty pool
// any positive amounts are accepted and minted shares equal sqrt(amountA *
// amountB). On a non-empty pool the supplied amounts must match the reserve
// ratio within the configured tolerance, and minted shares equal
// min(amountA/reserveA, amountB/reserveB). Settlement transfers and state
// updates commit atomically; any failure leaves no partial write.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID string, amountA, amountB math.LegacyDec) (math.LegacyDec, error) {
	if amountA.IsNil() || amountB.IsNil() || !amountA.IsPositive() || !amountB.IsPositive() {
		return math.LegacyDec{}, types.ErrInvalidAmount.Wrap("liquidity amounts must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	minted, err := k.addLiquidity(cacheCtx, provider, poolID, amountA, amountB)
	if err != nil {
		return math.LegacyDec{}, err
	}

	write()
	return minted, nil
}

func (k Keeper) addLiquidity(ctx sdk.Context, provider sdk.AccAddress, poolID string, amountA, amountB math.LegacyDec) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyDec{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.LegacyDec{}, err
	}

	var minted math.LegacyDec
	if pool.IsEmpty() {
		product, err := safeMul(amountA, amountB)
		if err != nil {
			return math.LegacyDec{}, err
		}
		minted, err = safeSqrt(product)
		if err != nil {
			return math.LegacyDec{}, err
		}
	} else {
		poolRatio, err := safeQuo(pool.ReserveA, pool.ReserveB)
		if err != nil {
			return math.LegacyDec{}, err
		}
		suppliedRatio, err := safeQuo(amountA, amountB)
		if err != nil {
			return math.LegacyDec{}, err
		}
		deviation := suppliedRatio.Sub(poolRatio).Abs().Quo(poolRatio)
		if deviation.GT(params.RatioTolerance) {
			return math.LegacyDec{}, types.ErrRatioMismatch.Wrapf(
				"supplied ratio %s deviates from pool ratio %s by %s (tolerance %s)",
				suppliedRatio, poolRatio, deviation, params.RatioTolerance,
			)
		}

		shareA := amountA.Quo(pool.ReserveA)
		shareB := amountB.Quo(pool.ReserveB)
		minted = math.LegacyMinDec(shareA, shareB)
	}

	if !minted.IsPositive() {
		return math.LegacyDec{}, types.ErrInvalidAmount.Wrap("liquidity contribution too small")
	}

	// Debit the provider and credit the reserve wallet for both assets. The
	// whole operation aborts on any sub-transfer failure.
	if err := k.settlementKeeper.Transfer(ctx, pool.AssetA, provider, k.moduleAddress, amountA); err != nil {
		return math.LegacyDec{}, types.ErrExternalCall.Wrapf("transfer %s %s: %v", amountA, pool.AssetA, err)
	}
	if err := k.settlementKeeper.Transfer(ctx, pool.AssetB, provider, k.moduleAddress, amountB); err != nil {
		return math.LegacyDec{}, types.ErrExternalCall.Wrapf("transfer %s %s: %v", amountB, pool.AssetB, err)
	}

	pool.ReserveA = pool.ReserveA.Add(amountA)
	pool.ReserveB = pool.ReserveB.Add(amountB)
	pool.TotalShares = pool.TotalShares.Add(minted)
	if err := k.setPool(ctx, pool); err != nil {
		return math.LegacyDec{}, err
	}

	pos, err := k.GetPosition(ctx, poolID, provider)
	if err != nil {
		pos = types.ProviderPosition{
			PoolId:        poolID,
			Provider:      provider.String(),
			ContributionA: math.LegacyZeroDec(),
			ContributionB: math.LegacyZeroDec(),
			LpShares:      math.LegacyZeroDec(),
		}
	}
	pos.ContributionA = pos.ContributionA.Add(amountA)
	pos.ContributionB = pos.ContributionB.Add(amountB)
	pos.LpShares = pos.LpShares.Add(minted)
	if err := k.setPosition(ctx, pos); err != nil {
		return math.LegacyDec{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID),
			sdk.NewAttribute(types.AttributeKeyUser, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyLpShares, minted.String()),
		),
	)

	return minted, nil
}

// RemoveLiquidity withdraws a proportion of the caller's own position. The
// withdrawal fee is deducted from each asset before transfer and redistributed
// to the remaining providers; any earned fee credit owed to the caller is paid
// out and zeroed in the same operation.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID string, lpAmount math.LegacyDec) (math.LegacyDec, math.LegacyDec, error) {
	if lpAmount.IsNil() || !lpAmount.IsPositive() {
		return math.LegacyDec{}, math.LegacyDec{}, types.ErrInvalidAmount.Wrap("lp amount must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	netA, netB, err := k.removeLiquidity(cacheCtx, provider, poolID, lpAmount)
	if err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, err
	}

	write()
	return netA, netB, nil
}

func (k Keeper) removeLiquidity(ctx sdk.Context, provider sdk.AccAddress, poolID string, lpAmount math.LegacyDec) (math.LegacyDec, math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, err
	}

	pos, err := k.GetPosition(ctx, poolID, provider)
	if err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, err
	}
	if pos.LpShares.LT(lpAmount) {
		return math.LegacyDec{}, math.LegacyDec{}, types.ErrInsufficientShares.Wrapf("have %s, need %s", pos.LpShares, lpAmount)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, err
	}

	proportion := lpAmount.Quo(pos.LpShares)
	grossA := pos.ContributionA.Mul(proportion)
	grossB := pos.ContributionB.Mul(proportion)

	feeA := grossA.Mul(params.WithdrawalFeeRate)
	feeB := grossB.Mul(params.WithdrawalFeeRate)
	netA := grossA.Sub(feeA)
	netB := grossB.Sub(feeB)

	if err := k.settlementKeeper.Transfer(ctx, pool.AssetA, k.moduleAddress, provider, netA); err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, types.ErrExternalCall.Wrapf("transfer %s %s: %v", netA, pool.AssetA, err)
	}
	if err := k.settlementKeeper.Transfer(ctx, pool.AssetB, k.moduleAddress, provider, netB); err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, types.ErrExternalCall.Wrapf("transfer %s %s: %v", netB, pool.AssetB, err)
	}

	if _, err := k.SettleEarnedFees(ctx, provider); err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, err
	}

	pos.ContributionA = pos.ContributionA.Sub(grossA)
	pos.ContributionB = pos.ContributionB.Sub(grossB)
	pos.LpShares = pos.LpShares.Sub(lpAmount)
	if err := k.setPosition(ctx, pos); err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, err
	}

	// The withdrawal fee stays in the reserve wallet; only the net amounts
	// leave, so reserves shrink by net and the fee value is redistributed.
	pool.ReserveA = pool.ReserveA.Sub(netA)
	pool.ReserveB = pool.ReserveB.Sub(netB)
	pool.TotalShares = pool.TotalShares.Sub(lpAmount)
	if err := k.setPool(ctx, pool); err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, err
	}

	if err := k.distributeFees(ctx, pool, pool.AssetA, feeA); err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, err
	}
	if err := k.distributeFees(ctx, pool, pool.AssetB, feeB); err != nil {
		return math.LegacyDec{}, math.LegacyDec{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID),
			sdk.NewAttribute(types.AttributeKeyUser, provider.String()),
			sdk.NewAttribute(types.AttributeKeyLpAmount, lpAmount.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, netA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, netB.String()),
		),
	)

	return netA, netB, nil
}
