package keeper

import (
	"cosmossdk.io/math"

	"github.com/mtfs-network/mtfs/x/amm/types"
)

// Fixed-point arithmetic on math.LegacyDec panics once intermediate values
// exceed the 256-bit bound. The helpers below convert those panics into typed
// errors so an oversized operand aborts the enclosing operation instead of
// crashing the node.

func safeMul(a, b math.LegacyDec) (res math.LegacyDec, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = math.LegacyDec{}
			err = types.ErrOverflow.Wrapf("%s * %s: %v", a, b, r)
		}
	}()
	return a.Mul(b), nil
}

func safeQuo(a, b math.LegacyDec) (res math.LegacyDec, err error) {
	if b.IsZero() {
		return math.LegacyDec{}, types.ErrOverflow.Wrapf("%s / 0: division by zero", a)
	}
	defer func() {
		if r := recover(); r != nil {
			res = math.LegacyDec{}
			err = types.ErrOverflow.Wrapf("%s / %s: %v", a, b, r)
		}
	}()
	return a.Quo(b), nil
}

// safeSqrt returns the approximate square root of a non-negative decimal.
func safeSqrt(a math.LegacyDec) (math.LegacyDec, error) {
	root, err := a.ApproxSqrt()
	if err != nil {
		return math.LegacyDec{}, types.ErrOverflow.Wrapf("sqrt(%s): %v", a, err)
	}
	return root, nil
}
