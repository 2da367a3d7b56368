package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	ammkeeper "github.com/mtfs-network/mtfs/x/amm/keeper"
	ammtypes "github.com/mtfs-network/mtfs/x/amm/types"
	"github.com/mtfs-network/mtfs/x/basket/keeper"
	"github.com/mtfs-network/mtfs/x/basket/types"
)

// BasketTestEnv bundles a basket keeper with the amm keeper serving as its
// rewards backend and the shared mocks, all mounted on one multistore so
// cross-keeper writes commit together.
type BasketTestEnv struct {
	Keeper keeper.Keeper
	Amm    ammkeeper.Keeper
	Ctx    sdk.Context
	Ledger *SettlementLedgerMock
	Oracle *OracleMock
}

// BasketKeeper creates a test environment for the basket module with the given
// oracle prices
func BasketKeeper(t testing.TB, prices map[string]math.LegacyDec) BasketTestEnv {
	basketKey := storetypes.NewKVStoreKey(types.ModuleName)
	ammKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(basketKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(ammKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ledger := NewSettlementLedgerMock()
	oracle := NewOracleMock(prices)

	ammK := ammkeeper.NewKeeper(ammKey, ledger)
	basketK := keeper.NewKeeper(basketKey, ledger, oracle, ammK)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, ammK.InitGenesis(ctx, *ammtypes.DefaultGenesis()))
	require.NoError(t, basketK.InitGenesis(ctx, *types.DefaultGenesis()))

	return BasketTestEnv{
		Keeper: basketK,
		Amm:    ammK,
		Ctx:    ctx,
		Ledger: ledger,
		Oracle: oracle,
	}
}
