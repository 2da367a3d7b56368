package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mtfs-network/mtfs/x/amm/types"
)

// InitPool creates an empty pool for the given asset pair. It fails with
// ErrPoolAlreadyInitialized if a pool with the same ID already exists; there
// are no merge semantics.
func (k Keeper) InitPool(ctx context.Context, poolID, assetA, assetB string) error {
	if poolID == "" {
		return types.ErrInvalidPoolState.Wrap("pool id cannot be empty")
	}
	if assetA == "" || assetB == "" {
		return types.ErrInvalidPoolState.Wrap("asset identifiers cannot be empty")
	}
	if assetA == assetB {
		return types.ErrInvalidPoolState.Wrap("pool assets must be distinct")
	}

	store := k.getStore(ctx)
	if store.Has(PoolKey(poolID)) {
		return types.ErrPoolAlreadyInitialized.Wrapf("pool %q", poolID)
	}

	pool := types.Pool{
		Id:          poolID,
		AssetA:      assetA,
		AssetB:      assetB,
		ReserveA:    math.LegacyZeroDec(),
		ReserveB:    math.LegacyZeroDec(),
		TotalShares: math.LegacyZeroDec(),
	}
	if err := k.setPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolInitialized,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID),
			sdk.NewAttribute(types.AttributeKeyAssetA, assetA),
			sdk.NewAttribute(types.AttributeKeyAssetB, assetB),
		),
	)
	return nil
}

// GetPool retrieves a pool by ID, validating the record read back from the
// store. Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID string) (types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %q", poolID)
	}

	var pool types.Pool
	if err := unmarshalRecord(bz, &pool); err != nil {
		return types.Pool{}, fmt.Errorf("GetPool: unmarshal pool %q: %w", poolID, err)
	}
	if err := pool.Validate(); err != nil {
		return types.Pool{}, err
	}
	return pool, nil
}

// setPool saves a pool to the store
func (k Keeper) setPool(ctx context.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz, err := marshalRecord(pool)
	if err != nil {
		return fmt.Errorf("setPool: marshal pool %q: %w", pool.Id, err)
	}
	store.Set(PoolKey(pool.Id), bz)
	return nil
}

// GetReserve returns the current reserve quantity of one pool asset. Read-only.
func (k Keeper) GetReserve(ctx context.Context, poolID, asset string) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyDec{}, err
	}

	switch asset {
	case pool.AssetA:
		return pool.ReserveA, nil
	case pool.AssetB:
		return pool.ReserveB, nil
	default:
		return math.LegacyDec{}, types.ErrAssetNotInPool.Wrapf("asset %q not in pool %q", asset, poolID)
	}
}
