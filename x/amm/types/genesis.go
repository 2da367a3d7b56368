package types

import (
	"fmt"
)

// GenesisState defines the amm module's genesis state.
type GenesisState struct {
	Params     Params             `json:"params"`
	Pools      []Pool             `json:"pools"`
	Positions  []ProviderPosition `json:"positions"`
	EarnedFees []EarnedFeeBalance `json:"earned_fees"`
}

// DefaultGenesis returns the default genesis state for the amm module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []Pool{},
		Positions:  []ProviderPosition{},
		EarnedFees: []EarnedFeeBalance{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	poolIDs := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %q: %w", pool.Id, err)
		}
		if _, ok := poolIDs[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %q", pool.Id)
		}
		poolIDs[pool.Id] = struct{}{}
	}

	for _, pos := range gs.Positions {
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("invalid position for %q in pool %q: %w", pos.Provider, pos.PoolId, err)
		}
		if _, ok := poolIDs[pos.PoolId]; !ok {
			return fmt.Errorf("position references unknown pool %q", pos.PoolId)
		}
	}

	for _, fee := range gs.EarnedFees {
		if fee.Provider == "" {
			return fmt.Errorf("earned fee balance with empty provider")
		}
		if fee.Amount.IsNil() || fee.Amount.IsNegative() {
			return fmt.Errorf("earned fee balance for %q cannot be negative", fee.Provider)
		}
	}

	return nil
}
