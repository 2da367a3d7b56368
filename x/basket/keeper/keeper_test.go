package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	keepertest "github.com/mtfs-network/mtfs/testutil/keeper"
	"github.com/mtfs-network/mtfs/x/basket/types"
)

func dec(n int64) math.LegacyDec {
	return math.LegacyNewDec(n)
}

func decs(ns ...int64) []math.LegacyDec {
	out := make([]math.LegacyDec, len(ns))
	for i, n := range ns {
		out[i] = math.LegacyNewDec(n)
	}
	return out
}

// testPrices covers every asset the basket fixtures use.
func testPrices() map[string]math.LegacyDec {
	return map[string]math.LegacyDec{
		"uatom": math.LegacyMustNewDecFromStr("9.5"),
		"uusdc": math.LegacyOneDec(),
		"ubtc":  math.LegacyNewDec(60_000),
	}
}

// twoAssetBasket returns a fresh basket over uatom and uusdc with the given
// equal starting reserves.
func twoAssetBasket(id string, reserve int64) types.Basket {
	return types.Basket{
		Id:            id,
		Assets:        []string{"uatom", "uusdc"},
		Reserves:      decs(reserve, reserve),
		Buffers:       decs(0, 0),
		TargetWeights: []math.LegacyDec{math.LegacyMustNewDecFromStr("0.5"), math.LegacyMustNewDecFromStr("0.5")},
		LastPrices:    decs(0, 0),
	}
}

func fundUser(ledger *keepertest.SettlementLedgerMock, addr sdk.AccAddress, assets ...string) {
	for _, asset := range assets {
		ledger.Fund(asset, addr, dec(1_000_000))
	}
}
