package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "basket"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Basket is an N-asset pool maintaining a generalized invariant across
// heterogeneous reserves. The asset, reserve, buffer, target weight and
// last-price lists are parallel and equal in length; all reserve quantities
// are non-negative.
type Basket struct {
	Id            string           `json:"id"`
	Assets        []string         `json:"assets"`
	Reserves      []math.LegacyDec `json:"reserves"`
	Buffers       []math.LegacyDec `json:"buffers"`
	TargetWeights []math.LegacyDec `json:"target_weights"`
	LastPrices    []math.LegacyDec `json:"last_prices"`
}

// Validate checks the basket record read back from the store.
func (b Basket) Validate() error {
	if b.Id == "" {
		return ErrInvalidBasketState.Wrap("basket id cannot be empty")
	}
	if len(b.Assets) == 0 {
		return ErrInvalidBasketState.Wrap("basket must hold at least one asset")
	}

	n := len(b.Assets)
	if len(b.Reserves) != n || len(b.Buffers) != n || len(b.TargetWeights) != n || len(b.LastPrices) != n {
		return ErrInvalidBasketState.Wrapf(
			"parallel list lengths differ: assets=%d reserves=%d buffers=%d weights=%d prices=%d",
			n, len(b.Reserves), len(b.Buffers), len(b.TargetWeights), len(b.LastPrices),
		)
	}

	seen := make(map[string]struct{}, n)
	for i, asset := range b.Assets {
		if asset == "" {
			return ErrInvalidBasketState.Wrapf("asset %d has empty identifier", i)
		}
		if _, ok := seen[asset]; ok {
			return ErrInvalidBasketState.Wrapf("duplicate asset %q", asset)
		}
		seen[asset] = struct{}{}

		if b.Reserves[i].IsNil() || b.Reserves[i].IsNegative() {
			return ErrInvalidBasketState.Wrapf("reserve for %q cannot be negative", asset)
		}
		if b.Buffers[i].IsNil() || b.Buffers[i].IsNegative() {
			return ErrInvalidBasketState.Wrapf("buffer for %q cannot be negative", asset)
		}
		if b.TargetWeights[i].IsNil() || b.TargetWeights[i].IsNegative() {
			return ErrInvalidBasketState.Wrapf("target weight for %q cannot be negative", asset)
		}
		if b.LastPrices[i].IsNil() || b.LastPrices[i].IsNegative() {
			return ErrInvalidBasketState.Wrapf("last price for %q cannot be negative", asset)
		}
	}

	return nil
}

// AssetIndex returns the position of asset in the basket and whether it is
// present.
func (b Basket) AssetIndex(asset string) (int, bool) {
	for i, a := range b.Assets {
		if a == asset {
			return i, true
		}
	}
	return 0, false
}

// TotalReserves returns the sum of all reserve quantities.
func (b Basket) TotalReserves() math.LegacyDec {
	total := math.LegacyZeroDec()
	for _, r := range b.Reserves {
		total = total.Add(r)
	}
	return total
}
