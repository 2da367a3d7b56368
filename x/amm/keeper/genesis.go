package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mtfs-network/mtfs/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid amm genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, pool := range genState.Pools {
		if err := k.setPool(ctx, pool); err != nil {
			return fmt.Errorf("failed to set pool %q: %w", pool.Id, err)
		}
	}

	for _, pos := range genState.Positions {
		if err := k.setPosition(ctx, pos); err != nil {
			return fmt.Errorf("failed to set position for %q: %w", pos.Provider, err)
		}
	}

	for _, fee := range genState.EarnedFees {
		provider, err := sdk.AccAddressFromBech32(fee.Provider)
		if err != nil {
			return fmt.Errorf("invalid earned fee provider %q: %w", fee.Provider, err)
		}
		bz, err := fee.Amount.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal earned fees for %q: %w", fee.Provider, err)
		}
		k.getStore(ctx).Set(EarnedFeeKey(provider), bz)
	}

	return nil
}

// ExportGenesis exports the amm module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := &types.GenesisState{
		Params:     params,
		Pools:      []types.Pool{},
		Positions:  []types.ProviderPosition{},
		EarnedFees: []types.EarnedFeeBalance{},
	}

	store := k.getStore(ctx)

	poolIter := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer poolIter.Close()
	for ; poolIter.Valid(); poolIter.Next() {
		var pool types.Pool
		if err := unmarshalRecord(poolIter.Value(), &pool); err != nil {
			return nil, fmt.Errorf("export pool: %w", err)
		}
		genState.Pools = append(genState.Pools, pool)
	}

	posIter := storetypes.KVStorePrefixIterator(store, PositionKeyPrefix)
	defer posIter.Close()
	for ; posIter.Valid(); posIter.Next() {
		var pos types.ProviderPosition
		if err := unmarshalRecord(posIter.Value(), &pos); err != nil {
			return nil, fmt.Errorf("export position: %w", err)
		}
		genState.Positions = append(genState.Positions, pos)
	}

	feeIter := storetypes.KVStorePrefixIterator(store, EarnedFeeKeyPrefix)
	defer feeIter.Close()
	for ; feeIter.Valid(); feeIter.Next() {
		var balance math.LegacyDec
		if err := balance.Unmarshal(feeIter.Value()); err != nil {
			return nil, fmt.Errorf("export earned fees: %w", err)
		}
		provider := sdk.AccAddress(feeIter.Key()[len(EarnedFeeKeyPrefix):])
		genState.EarnedFees = append(genState.EarnedFees, types.EarnedFeeBalance{
			Provider: provider.String(),
			Amount:   balance,
		})
	}

	return genState, nil
}
