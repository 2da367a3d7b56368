package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/mtfs-network/mtfs/testutil/keeper"
	"github.com/mtfs-network/mtfs/x/basket/types"
)

func TestCheckReserveThreshold(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())

	basket := twoAssetBasket("basket-1", 500)
	basket.Reserves = decs(500, 800)
	require.NoError(t, env.Keeper.InitBasket(env.Ctx, basket))

	// Exactly at the threshold passes.
	ok, err := env.Keeper.CheckReserveThreshold(env.Ctx, "basket-1", dec(500))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = env.Keeper.CheckReserveThreshold(env.Ctx, "basket-1", dec(501))
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = env.Keeper.CheckReserveThreshold(env.Ctx, "basket-1", dec(0))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckBasketExposure(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())

	basket := twoAssetBasket("basket-1", 500)
	basket.Reserves = decs(900, 100)
	require.NoError(t, env.Keeper.InitBasket(env.Ctx, basket))

	// 90% concentration exceeds a 50% limit.
	ok, err := env.Keeper.CheckBasketExposure(env.Ctx, "basket-1", math.LegacyMustNewDecFromStr("0.5"))
	require.NoError(t, err)
	require.False(t, ok)

	// Exactly at the limit passes.
	ok, err = env.Keeper.CheckBasketExposure(env.Ctx, "basket-1", math.LegacyMustNewDecFromStr("0.9"))
	require.NoError(t, err)
	require.True(t, ok)

	empty := twoAssetBasket("basket-2", 0)
	require.NoError(t, env.Keeper.InitBasket(env.Ctx, empty))
	ok, err = env.Keeper.CheckBasketExposure(env.Ctx, "basket-2", math.LegacyMustNewDecFromStr("0.1"))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckAssetVolatility(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())

	basket := twoAssetBasket("basket-1", 500)
	basket.LastPrices = []math.LegacyDec{math.LegacyNewDec(10), math.LegacyOneDec()}
	require.NoError(t, env.Keeper.InitBasket(env.Ctx, basket))

	// uatom moved from 10 to 9.5, a 5% change; uusdc is flat.
	ok, err := env.Keeper.CheckAssetVolatility(env.Ctx, "basket-1", math.LegacyMustNewDecFromStr("0.10"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = env.Keeper.CheckAssetVolatility(env.Ctx, "basket-1", math.LegacyMustNewDecFromStr("0.01"))
	require.NoError(t, err)
	require.False(t, ok)

	// A change of exactly the threshold passes.
	ok, err = env.Keeper.CheckAssetVolatility(env.Ctx, "basket-1", math.LegacyMustNewDecFromStr("0.05"))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckAssetVolatilityMissingObservation(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())

	// Freshly initialized baskets have no last observation yet.
	require.NoError(t, env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 500)))

	_, err := env.Keeper.CheckAssetVolatility(env.Ctx, "basket-1", math.LegacyMustNewDecFromStr("0.10"))
	require.ErrorIs(t, err, types.ErrOracleUnavailable)
}

func TestCheckAssetVolatilityOracleOutage(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())

	basket := twoAssetBasket("basket-1", 500)
	basket.LastPrices = []math.LegacyDec{math.LegacyNewDec(10), math.LegacyOneDec()}
	require.NoError(t, env.Keeper.InitBasket(env.Ctx, basket))

	env.Oracle.Unreachable = true
	_, err := env.Keeper.CheckAssetVolatility(env.Ctx, "basket-1", math.LegacyMustNewDecFromStr("0.10"))
	require.ErrorIs(t, err, types.ErrOracleUnavailable)
}
