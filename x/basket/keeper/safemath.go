package keeper

import (
	"cosmossdk.io/math"

	"github.com/mtfs-network/mtfs/x/basket/types"
)

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
