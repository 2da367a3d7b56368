package types

// Event types for the basket module, one per mutating operation.
const (
	EventTypeBasketInitialized      = "basket_initialized"
	EventTypeBasketSwap             = "basket_swap"
	EventTypeBasketLiquidityAdded   = "basket_liquidity_added"
	EventTypeBasketLiquidityRemoved = "basket_liquidity_removed"
	EventTypeBasketPricesUpdated    = "basket_prices_updated"
)

// Event attribute keys
const (
	AttributeKeyBasketID   = "basket_id"
	AttributeKeyUser       = "user"
	AttributeKeyFromAsset  = "from_asset"
	AttributeKeyToAsset    = "to_asset"
	AttributeKeyAmount     = "amount"
	AttributeKeyToAmount   = "to_amount"
	AttributeKeyAmounts    = "amounts"
	AttributeKeyPercentage = "percentage"
	AttributeKeyAssets     = "assets"
)
