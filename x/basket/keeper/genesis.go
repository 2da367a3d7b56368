package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"

	"github.com/mtfs-network/mtfs/x/basket/types"
)

// InitGenesis initializes the basket module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid basket genesis: %w", err)
	}

	for _, basket := range genState.Baskets {
		if err := k.setBasket(ctx, basket); err != nil {
			return fmt.Errorf("failed to set basket %q: %w", basket.Id, err)
		}
	}
	return nil
}

// ExportGenesis exports the basket module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := &types.GenesisState{Baskets: []types.Basket{}}

	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, BasketKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var basket types.Basket
		if err := unmarshalRecord(iterator.Value(), &basket); err != nil {
			return nil, fmt.Errorf("export basket: %w", err)
		}
		genState.Baskets = append(genState.Baskets, basket)
	}

	return genState, nil
}
