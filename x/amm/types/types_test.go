package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/mtfs-network/mtfs/x/amm/types"
)

func validPool() types.Pool {
	return types.Pool{
		Id:          "pool-1",
		AssetA:      "uatom",
		AssetB:      "uusdc",
		ReserveA:    math.LegacyNewDec(1000),
		ReserveB:    math.LegacyNewDec(2000),
		TotalShares: math.LegacyNewDec(1414),
	}
}

func TestPoolValidate(t *testing.T) {
	require.NoError(t, validPool().Validate())

	tests := []struct {
		name   string
		mutate func(*types.Pool)
	}{
		{"empty id", func(p *types.Pool) { p.Id = "" }},
		{"empty asset a", func(p *types.Pool) { p.AssetA = "" }},
		{"identical assets", func(p *types.Pool) { p.AssetB = p.AssetA }},
		{"nil reserve", func(p *types.Pool) { p.ReserveA = math.LegacyDec{} }},
		{"negative reserve", func(p *types.Pool) { p.ReserveB = math.LegacyNewDec(-1) }},
		{"negative shares", func(p *types.Pool) { p.TotalShares = math.LegacyNewDec(-1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := validPool()
			tc.mutate(&pool)
			require.ErrorIs(t, pool.Validate(), types.ErrInvalidPoolState)
		})
	}
}

func TestPoolHelpers(t *testing.T) {
	pool := validPool()
	require.False(t, pool.IsEmpty())
	require.True(t, pool.HasAsset("uatom"))
	require.True(t, pool.HasAsset("uusdc"))
	require.False(t, pool.HasAsset("ubtc"))

	pool.ReserveA = math.LegacyZeroDec()
	pool.ReserveB = math.LegacyZeroDec()
	require.True(t, pool.IsEmpty())
}

func TestProviderPositionValidate(t *testing.T) {
	pos := types.ProviderPosition{
		PoolId:        "pool-1",
		Provider:      "cosmos1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzvmetq",
		ContributionA: math.LegacyNewDec(100),
		ContributionB: math.LegacyNewDec(100),
		LpShares:      math.LegacyNewDec(100),
	}
	require.NoError(t, pos.Validate())

	bad := pos
	bad.Provider = ""
	require.Error(t, bad.Validate())

	bad = pos
	bad.LpShares = math.LegacyNewDec(-1)
	require.Error(t, bad.Validate())
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	params := types.DefaultParams()
	params.TradeFeeRate = math.LegacyOneDec()
	require.ErrorIs(t, params.Validate(), types.ErrInvalidParams)

	params = types.DefaultParams()
	params.WithdrawalFeeRate = math.LegacyNewDec(-1)
	require.ErrorIs(t, params.Validate(), types.ErrInvalidParams)

	params = types.DefaultParams()
	params.FeeCreditDenom = ""
	require.ErrorIs(t, params.Validate(), types.ErrInvalidParams)
}
