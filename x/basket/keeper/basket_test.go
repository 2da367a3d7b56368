package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/mtfs-network/mtfs/testutil/keeper"
	"github.com/mtfs-network/mtfs/x/basket/types"
)

func TestInitBasket(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())

	require.NoError(t, env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 500)))

	basket, err := env.Keeper.GetBasket(env.Ctx, "basket-1")
	require.NoError(t, err)
	require.Equal(t, "basket-1", basket.Id)
	require.Equal(t, []string{"uatom", "uusdc"}, basket.Assets)
	require.True(t, basket.Reserves[0].Equal(dec(500)))

	found := false
	for _, evt := range env.Ctx.EventManager().Events() {
		if evt.Type == types.EventTypeBasketInitialized {
			found = true
		}
	}
	require.True(t, found, "expected basket_initialized event")
}

func TestInitBasketAlreadyExists(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())

	require.NoError(t, env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 500)))

	err := env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 100))
	require.ErrorIs(t, err, types.ErrBasketAlreadyExists)
}

func TestInitBasketValidation(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())

	empty := twoAssetBasket("", 500)
	require.ErrorIs(t, env.Keeper.InitBasket(env.Ctx, empty), types.ErrInvalidBasketState)

	mismatched := twoAssetBasket("basket-1", 500)
	mismatched.Reserves = decs(500)
	require.ErrorIs(t, env.Keeper.InitBasket(env.Ctx, mismatched), types.ErrInvalidBasketState)

	duplicated := twoAssetBasket("basket-1", 500)
	duplicated.Assets = []string{"uatom", "uatom"}
	require.ErrorIs(t, env.Keeper.InitBasket(env.Ctx, duplicated), types.ErrInvalidBasketState)

	negative := twoAssetBasket("basket-1", 500)
	negative.Reserves[1] = dec(-1)
	require.ErrorIs(t, env.Keeper.InitBasket(env.Ctx, negative), types.ErrInvalidBasketState)
}

func TestGetBasketNotFound(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())

	_, err := env.Keeper.GetBasket(env.Ctx, "missing")
	require.ErrorIs(t, err, types.ErrBasketNotFound)
}
