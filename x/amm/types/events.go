package types

// Event types for the AMM module, one per mutating operation.
const (
	EventTypePoolInitialized  = "pool_initialized"
	EventTypeLiquidityAdded   = "liquidity_added"
	EventTypeSwap             = "swap"
	EventTypeLiquidityRemoved = "liquidity_removed"
	EventTypeFeesDistributed  = "fees_distributed"
	EventTypeFeesSettled      = "fees_settled"
)

// Event attribute keys
const (
	AttributeKeyPoolID     = "pool_id"
	AttributeKeyUser       = "user"
	AttributeKeyAssetA     = "asset_a"
	AttributeKeyAssetB     = "asset_b"
	AttributeKeyAmountA    = "amount_a"
	AttributeKeyAmountB    = "amount_b"
	AttributeKeyLpShares   = "lp_shares"
	AttributeKeyLpAmount   = "lp_amount"
	AttributeKeyInputAsset = "input_asset"
	AttributeKeyAmountIn   = "amount_in"
	AttributeKeyAmountOut  = "amount_out"
	AttributeKeyFee        = "fee"
)
