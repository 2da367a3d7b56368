package types

import (
	"fmt"
)

// GenesisState defines the basket module's genesis state.
type GenesisState struct {
	Baskets []Basket `json:"baskets"`
}

// DefaultGenesis returns the default genesis state for the basket module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Baskets: []Basket{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	ids := make(map[string]struct{}, len(gs.Baskets))
	for _, basket := range gs.Baskets {
		if err := basket.Validate(); err != nil {
			return fmt.Errorf("invalid basket %q: %w", basket.Id, err)
		}
		if _, ok := ids[basket.Id]; ok {
			return fmt.Errorf("duplicate basket id %q", basket.Id)
		}
		ids[basket.Id] = struct{}{}
	}
	return nil
}
