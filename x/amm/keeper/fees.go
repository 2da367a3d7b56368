package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mtfs-network/mtfs/x/amm/types"
	sharedkeeper "github.com/mtfs-network/mtfs/x/shared/keeper"
)

var _ sharedkeeper.RewardsKeeperV1 = Keeper{}

// distributeFees credits a fee amount pro-rata to the pool's providers by
// their cumulative contribution of the given asset. Iteration follows store
// key order, so the split is deterministic given identical inputs. Each share
// is floored at 18 decimals and the remainder is credited to the last provider
// so that the credited shares always sum to the input fee.
func (k Keeper) distributeFees(ctx sdk.Context, pool types.Pool, asset string, fee math.LegacyDec) error {
	if fee.IsNil() || !fee.IsPositive() {
		return nil
	}

	type stake struct {
		provider     sdk.AccAddress
		contribution math.LegacyDec
	}

	var stakes []stake
	total := math.LegacyZeroDec()
	err := k.IteratePositionsByPool(ctx, pool.Id, func(pos types.ProviderPosition) bool {
		contribution := pos.ContributionA
		if asset == pool.AssetB {
			contribution = pos.ContributionB
		}
		if !contribution.IsPositive() {
			return false
		}
		stakes = append(stakes, stake{
			provider:     sdk.MustAccAddressFromBech32(pos.Provider),
			contribution: contribution,
		})
		total = total.Add(contribution)
		return false
	})
	if err != nil {
		return err
	}

	if len(stakes) == 0 || total.IsZero() {
		// Nothing to credit; the fee value simply stays in reserves.
		ctx.Logger().Info("fee retained without distribution", "pool_id", pool.Id, "asset", asset, "fee", fee.String())
		return nil
	}

	distributed := math.LegacyZeroDec()
	for i, s := range stakes {
		share := fee.Mul(s.contribution).QuoTruncate(total)
		if i == len(stakes)-1 {
			share = fee.Sub(distributed)
		}
		distributed = distributed.Add(share)
		if err := k.CreditEarnedFees(ctx, s.provider, share); err != nil {
			return err
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeesDistributed,
			sdk.NewAttribute(types.AttributeKeyPoolID, pool.Id),
			sdk.NewAttribute("asset", asset),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			sdk.NewAttribute("providers", fmt.Sprintf("%d", len(stakes))),
		),
	)

	return nil
}

// GetEarnedFees returns a provider's accumulated, unpaid fee credit.
func (k Keeper) GetEarnedFees(ctx context.Context, provider sdk.AccAddress) (math.LegacyDec, error) {
	store := k.getStore(ctx)
	bz := store.Get(EarnedFeeKey(provider))
	if bz == nil {
		return math.LegacyZeroDec(), nil
	}

	var balance math.LegacyDec
	if err := balance.Unmarshal(bz); err != nil {
		return math.LegacyDec{}, types.ErrInvalidPoolState.Wrapf("unmarshal earned fees for %s: %v", provider, err)
	}
	return balance, nil
}

// CreditEarnedFees adds delta to a provider's fee credit, creating the balance
// on first credit.
func (k Keeper) CreditEarnedFees(ctx context.Context, provider sdk.AccAddress, delta math.LegacyDec) error {
	if delta.IsNil() || delta.IsNegative() {
		return types.ErrInvalidAmount.Wrap("fee credit cannot be negative")
	}
	if delta.IsZero() {
		return nil
	}

	balance, err := k.GetEarnedFees(ctx, provider)
	if err != nil {
		return err
	}
	balance = balance.Add(delta)

	bz, err := balance.Marshal()
	if err != nil {
		return fmt.Errorf("CreditEarnedFees: marshal: %w", err)
	}
	k.getStore(ctx).Set(EarnedFeeKey(provider), bz)
	return nil
}

// SettleEarnedFees pays out and zeroes a provider's fee credit in the
// configured fee credit denom, returning the amount paid. A zero balance
// settles to zero without touching the ledger.
func (k Keeper) SettleEarnedFees(ctx context.Context, provider sdk.AccAddress) (math.LegacyDec, error) {
	balance, err := k.GetEarnedFees(ctx, provider)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if balance.IsZero() {
		return math.LegacyZeroDec(), nil
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.LegacyDec{}, err
	}

	if err := k.settlementKeeper.Transfer(ctx, params.FeeCreditDenom, k.moduleAddress, provider, balance); err != nil {
		return math.LegacyDec{}, types.ErrExternalCall.Wrapf("settle %s %s: %v", balance, params.FeeCreditDenom, err)
	}

	zero := math.LegacyZeroDec()
	bz, err := zero.Marshal()
	if err != nil {
		return math.LegacyDec{}, fmt.Errorf("SettleEarnedFees: marshal: %w", err)
	}
	k.getStore(ctx).Set(EarnedFeeKey(provider), bz)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeesSettled,
			sdk.NewAttribute(types.AttributeKeyUser, provider.String()),
			sdk.NewAttribute(types.AttributeKeyFee, balance.String()),
		),
	)

	return balance, nil
}
