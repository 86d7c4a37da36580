package types

// Event types emitted by the AMM module. Ordering within one pool's event
// stream matches operation order.
const (
	EventTypePoolCreated     = "amm_pool_created"
	EventTypeSwap            = "amm_swap"
	EventTypeAddLiquidity    = "amm_add_liquidity"
	EventTypeRemoveLiquidity = "amm_remove_liquidity"
	EventTypeReserveSnapshot = "amm_reserve_snapshot"
	EventTypeBankSnapshot    = "amm_bank_snapshot"
	EventTypePoolFrozen      = "amm_pool_frozen"
	EventTypeTreasuryClaim   = "amm_treasury_claim"
)

// Event attribute keys
const (
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyCreator   = "creator"
	AttributeKeyProvider  = "provider"
	AttributeKeyTrader    = "trader"
	AttributeKeyDenom     = "denom"
	AttributeKeyDenomX    = "denom_x"
	AttributeKeyDenomY    = "denom_y"
	AttributeKeyDirection = "direction"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyAmountX   = "amount_x"
	AttributeKeyAmountY   = "amount_y"
	AttributeKeyShares    = "shares"
	AttributeKeyReserveX  = "reserve_x"
	AttributeKeyReserveY  = "reserve_y"
	AttributeKeyAmount    = "amount"
	AttributeKeyFrozen    = "frozen"
	AttributeKeyRecipient = "recipient"
)

// Swap direction attribute values
const (
	DirectionXToY = "x_to_y"
	DirectionYToX = "y_to_x"
)
