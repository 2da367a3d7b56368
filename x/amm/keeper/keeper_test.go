package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/mtfs-network/mtfs/testutil/keeper"
	"github.com/mtfs-network/mtfs/x/amm/types"
)

func dec(n int64) math.LegacyDec {
	return math.LegacyNewDec(n)
}

// fundProvider gives an address a comfortable balance of each listed asset.
func fundProvider(ledger *keepertest.SettlementLedgerMock, addr sdk.AccAddress, assets ...string) {
	for _, asset := range assets {
		ledger.Fund(asset, addr, dec(1_000_000))
	}
}

func TestParamsRoundTrip(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.True(t, params.TradeFeeRate.Equal(types.DefaultParams().TradeFeeRate))

	params.TradeFeeRate = math.LegacyNewDecWithPrec(5, 3)
	require.NoError(t, k.SetParams(ctx, params))

	got, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.True(t, got.TradeFeeRate.Equal(math.LegacyNewDecWithPrec(5, 3)))
}

func TestSetParamsRejectsInvalid(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	params := types.DefaultParams()
	params.TradeFeeRate = math.LegacyNewDec(2)
	err := k.SetParams(ctx, params)
	require.ErrorIs(t, err, types.ErrInvalidParams)
}
