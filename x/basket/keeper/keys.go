package keeper

var (
	// BasketKeyPrefix is the prefix for basket store keys
	BasketKeyPrefix = []byte{0x01}
)

// BasketKey returns the store key for a basket by ID
func BasketKey(basketID string) []byte {
	return append(BasketKeyPrefix, []byte(basketID)...)
}
