package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SettlementLedgerMock is an in-memory per-asset ledger standing in for the
// external settlement keeper. Balances are keyed by asset then address.
type SettlementLedgerMock struct {
	balances map[string]map[string]math.LegacyDec

	// FailNext makes the next Transfer call fail, then clears itself.
	// Used to exercise rollback paths.
	FailNext bool
	// FailAsset makes every transfer of the named asset fail.
	FailAsset string

	Transfers int
}

// NewSettlementLedgerMock creates an empty mock ledger
func NewSettlementLedgerMock() *SettlementLedgerMock {
	return &SettlementLedgerMock{balances: make(map[string]map[string]math.LegacyDec)}
}

// Fund credits amount of asset to addr without any debit.
func (m *SettlementLedgerMock) Fund(asset string, addr sdk.AccAddress, amount math.LegacyDec) {
	if m.balances[asset] == nil {
		m.balances[asset] = make(map[string]math.LegacyDec)
	}
	m.balances[asset][addr.String()] = m.Balance(asset, addr).Add(amount)
}

// Balance returns the mock balance of asset held by addr.
func (m *SettlementLedgerMock) Balance(asset string, addr sdk.AccAddress) math.LegacyDec {
	if assetBalances, ok := m.balances[asset]; ok {
		if bal, ok := assetBalances[addr.String()]; ok {
			return bal
		}
	}
	return math.LegacyZeroDec()
}

// Transfer moves amount of asset between addresses, honoring the configured
// failure injections.
func (m *SettlementLedgerMock) Transfer(_ context.Context, assetID string, from, to sdk.AccAddress, amount math.LegacyDec) error {
	if m.FailNext {
		m.FailNext = false
		return fmt.Errorf("ledger unavailable")
	}
	if m.FailAsset != "" && m.FailAsset == assetID {
		return fmt.Errorf("ledger for %s unavailable", assetID)
	}

	m.Transfers++
	if m.balances[assetID] == nil {
		m.balances[assetID] = make(map[string]math.LegacyDec)
	}
	m.balances[assetID][from.String()] = m.Balance(assetID, from).Sub(amount)
	m.balances[assetID][to.String()] = m.Balance(assetID, to).Add(amount)
	return nil
}

// OracleMock serves prices from a fixed map and fails lookups for any asset
// not present.
type OracleMock struct {
	Prices map[string]math.LegacyDec

	// Unreachable makes every lookup fail, simulating an oracle outage.
	Unreachable bool

	Lookups int
}

// NewOracleMock creates a mock oracle with the given asset prices
func NewOracleMock(prices map[string]math.LegacyDec) *OracleMock {
	if prices == nil {
		prices = make(map[string]math.LegacyDec)
	}
	return &OracleMock{Prices: prices}
}

// GetPrice returns the configured price for asset.
func (m *OracleMock) GetPrice(_ context.Context, asset string) (math.LegacyDec, error) {
	m.Lookups++
	if m.Unreachable {
		return math.LegacyDec{}, fmt.Errorf("oracle unreachable")
	}
	price, ok := m.Prices[asset]
	if !ok {
		return math.LegacyDec{}, fmt.Errorf("no price feed for %s", asset)
	}
	return price, nil
}
