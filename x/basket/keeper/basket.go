package keeper

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mtfs-network/mtfs/x/basket/types"
)

// InitBasket writes the full basket record once. It fails with
// ErrBasketAlreadyExists if a basket with the same identifier exists; there
// are no merge semantics.
func (k Keeper) InitBasket(ctx context.Context, basket types.Basket) error {
	if err := basket.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	if store.Has(BasketKey(basket.Id)) {
		return types.ErrBasketAlreadyExists.Wrapf("basket %q", basket.Id)
	}

	if err := k.setBasket(ctx, basket); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBasketInitialized,
			sdk.NewAttribute(types.AttributeKeyBasketID, basket.Id),
			sdk.NewAttribute(types.AttributeKeyAssets, strings.Join(basket.Assets, ",")),
		),
	)
	return nil
}

// GetBasket retrieves a basket snapshot by ID, validating the record read back
// from the store. Read-only.
func (k Keeper) GetBasket(ctx context.Context, basketID string) (types.Basket, error) {
	store := k.getStore(ctx)
	bz := store.Get(BasketKey(basketID))
	if bz == nil {
		return types.Basket{}, types.ErrBasketNotFound.Wrapf("basket %q", basketID)
	}

	var basket types.Basket
	if err := unmarshalRecord(bz, &basket); err != nil {
		return types.Basket{}, fmt.Errorf("GetBasket: unmarshal basket %q: %w", basketID, err)
	}
	if err := basket.Validate(); err != nil {
		return types.Basket{}, err
	}
	return basket, nil
}

// setBasket saves a basket to the store
func (k Keeper) setBasket(ctx context.Context, basket types.Basket) error {
	if err := basket.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz, err := marshalRecord(basket)
	if err != nil {
		return fmt.Errorf("setBasket: marshal basket %q: %w", basket.Id, err)
	}
	store.Set(BasketKey(basket.Id), bz)
	return nil
}
