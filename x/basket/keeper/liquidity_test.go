package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/mtfs-network/mtfs/testutil/keeper"
	"github.com/mtfs-network/mtfs/x/basket/types"
)

func TestBasketAddLiquidity(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())
	user := sdk.AccAddress([]byte("user____"))
	fundUser(env.Ledger, user, "uatom", "uusdc")

	require.NoError(t, env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 500)))

	require.NoError(t, env.Keeper.AddLiquidity(env.Ctx, user, "basket-1", decs(100, 200)))

	basket, err := env.Keeper.GetBasket(env.Ctx, "basket-1")
	require.NoError(t, err)
	require.True(t, basket.Reserves[0].Equal(dec(600)))
	require.True(t, basket.Reserves[1].Equal(dec(700)))

	require.True(t, env.Ledger.Balance("uatom", env.Keeper.GetModuleAddress()).Equal(dec(100)))
	require.True(t, env.Ledger.Balance("uusdc", env.Keeper.GetModuleAddress()).Equal(dec(200)))
}

func TestBasketAddLiquidityLengthMismatch(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())
	user := sdk.AccAddress([]byte("user____"))

	require.NoError(t, env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 500)))

	err := env.Keeper.AddLiquidity(env.Ctx, user, "basket-1", decs(100))
	require.ErrorIs(t, err, types.ErrLengthMismatch)

	err = env.Keeper.AddLiquidity(env.Ctx, user, "basket-1", decs(100, 200, 300))
	require.ErrorIs(t, err, types.ErrLengthMismatch)
}

func TestBasketAddLiquidityRejectsNegativeAmount(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())
	user := sdk.AccAddress([]byte("user____"))

	require.NoError(t, env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 500)))

	err := env.Keeper.AddLiquidity(env.Ctx, user, "basket-1", decs(100, -1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestBasketAddLiquidityRollsBackOnTransferFailure(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())
	user := sdk.AccAddress([]byte("user____"))
	fundUser(env.Ledger, user, "uatom", "uusdc")

	require.NoError(t, env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 500)))

	// Fail the second asset's transfer after the first already went through.
	env.Ledger.FailAsset = "uusdc"
	err := env.Keeper.AddLiquidity(env.Ctx, user, "basket-1", decs(100, 200))
	require.ErrorIs(t, err, types.ErrExternalCall)
	env.Ledger.FailAsset = ""

	basket, err := env.Keeper.GetBasket(env.Ctx, "basket-1")
	require.NoError(t, err)
	require.True(t, basket.Reserves[0].Equal(dec(500)))
	require.True(t, basket.Reserves[1].Equal(dec(500)))
}

func TestBasketRemoveLiquidity(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())
	user := sdk.AccAddress([]byte("user____"))
	fundUser(env.Ledger, user, "uatom", "uusdc")

	require.NoError(t, env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 500)))
	require.NoError(t, env.Keeper.AddLiquidity(env.Ctx, user, "basket-1", decs(100, 100)))

	require.NoError(t, env.Keeper.RemoveLiquidity(env.Ctx, user, "basket-1", dec(50)))

	basket, err := env.Keeper.GetBasket(env.Ctx, "basket-1")
	require.NoError(t, err)
	require.True(t, basket.Reserves[0].Equal(dec(300)))
	require.True(t, basket.Reserves[1].Equal(dec(300)))
}

func TestBasketRemoveLiquidityPercentageBounds(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())
	user := sdk.AccAddress([]byte("user____"))

	tests := []struct {
		name       string
		percentage math.LegacyDec
	}{
		{"zero", dec(0)},
		{"negative", dec(-5)},
		{"above hundred", dec(101)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := env.Keeper.RemoveLiquidity(env.Ctx, user, "basket-1", tc.percentage)
			require.ErrorIs(t, err, types.ErrInvalidPercentage)
		})
	}
}

func TestBasketRemoveLiquidityFullWithdrawal(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())
	user := sdk.AccAddress([]byte("user____"))
	fundUser(env.Ledger, user, "uatom", "uusdc")

	require.NoError(t, env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 500)))

	require.NoError(t, env.Keeper.RemoveLiquidity(env.Ctx, user, "basket-1", dec(100)))

	basket, err := env.Keeper.GetBasket(env.Ctx, "basket-1")
	require.NoError(t, err)
	require.True(t, basket.Reserves[0].IsZero())
	require.True(t, basket.Reserves[1].IsZero())

	require.True(t, env.Ledger.Balance("uatom", user).Equal(dec(1_000_500)))
	require.True(t, env.Ledger.Balance("uusdc", user).Equal(dec(1_000_500)))
}

func TestBasketRemoveLiquiditySettlesEarnedFees(t *testing.T) {
	env := keepertest.BasketKeeper(t, testPrices())
	user := sdk.AccAddress([]byte("user____"))
	fundUser(env.Ledger, user, "uatom", "uusdc")

	require.NoError(t, env.Keeper.InitBasket(env.Ctx, twoAssetBasket("basket-1", 500)))

	// A pending credit in the rewards ledger is paid out on withdrawal.
	require.NoError(t, env.Amm.CreditEarnedFees(env.Ctx, user, dec(10)))

	require.NoError(t, env.Keeper.RemoveLiquidity(env.Ctx, user, "basket-1", dec(25)))

	params, err := env.Amm.GetParams(env.Ctx)
	require.NoError(t, err)
	require.True(t, env.Ledger.Balance(params.FeeCreditDenom, user).Equal(dec(10)))

	earned, err := env.Amm.GetEarnedFees(env.Ctx, user)
	require.NoError(t, err)
	require.True(t, earned.IsZero())
}
