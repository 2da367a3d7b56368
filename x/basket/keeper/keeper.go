package keeper

import (
	"context"
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/mtfs-network/mtfs/x/basket/types"
)

// Keeper of the basket store
type Keeper struct {
	storeKey         storetypes.StoreKey
	settlementKeeper types.SettlementKeeper
	oracleKeeper     types.OracleKeeper
	rewardsKeeper    types.RewardsKeeper

	// moduleAddress is the reserve wallet holding all basket asset quantities.
	moduleAddress sdk.AccAddress
}

// NewKeeper creates a new basket Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	settlementKeeper types.SettlementKeeper,
	oracleKeeper types.OracleKeeper,
	rewardsKeeper types.RewardsKeeper,
) Keeper {
	return Keeper{
		storeKey:         key,
		settlementKeeper: settlementKeeper,
		oracleKeeper:     oracleKeeper,
		rewardsKeeper:    rewardsKeeper,
		moduleAddress:    authtypes.NewModuleAddress(types.ModuleName),
	}
}

// getStore returns the KVStore for the basket module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetModuleAddress returns the reserve wallet address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

func marshalRecord(v any) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalRecord(bz []byte, v any) error {
	return json.Unmarshal(bz, v)
}
