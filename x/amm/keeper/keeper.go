package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/mtfs-network/mtfs/x/amm/types"
)

// Keeper of the amm store
type Keeper struct {
	storeKey         storetypes.StoreKey
	settlementKeeper types.SettlementKeeper

	// moduleAddress is the reserve wallet holding all pooled asset quantities.
	// Computed once at construction to avoid repeated derivation in hot paths.
	moduleAddress sdk.AccAddress
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	settlementKeeper types.SettlementKeeper,
) Keeper {
	return Keeper{
		storeKey:         key,
		settlementKeeper: settlementKeeper,
		moduleAddress:    authtypes.NewModuleAddress(types.ModuleName),
	}
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetModuleAddress returns the reserve wallet address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := unmarshalRecord(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal: %w", err)
	}
	return params, nil
}

// SetParams sets the parameters in the store
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz, err := marshalRecord(params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	store.Set(ParamsKey, bz)
	return nil
}
