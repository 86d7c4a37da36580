package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
)

// MsgAddLiquidity defines a message to deposit both pool tokens in exchange
// for LP shares.
type MsgAddLiquidity struct {
	Provider string `json:"provider"`
	PoolId   uint64 `json:"pool_id"`
	AmountX  uint64 `json:"amount_x"`
	AmountY  uint64 `json:"amount_y"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, poolID, amountX, amountY uint64) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		PoolId:   poolID,
		AmountX:  amountX,
		AmountY:  amountY,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgAddLiquidity) Reset() { *msg = MsgAddLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgAddLiquidity) String() string {
	return fmt.Sprintf("MsgAddLiquidity{pool %d, %d/%d}", msg.PoolId, msg.AmountX, msg.AmountY)
}

// ProtoMessage implements the proto.Message interface
func (*MsgAddLiquidity) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) Type() string { return "add_liquidity" }

// GetSigners returns the expected signers for MsgAddLiquidity
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes returns the canonical sign bytes for MsgAddLiquidity
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of MsgAddLiquidity
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameter, "pool id must be positive")
	}
	if msg.AmountX == 0 || msg.AmountY == 0 {
		return sdkerrors.Wrap(ErrInvalidParameter, "deposit amounts must be positive")
	}
	return nil
}

// MsgRemoveLiquidity defines a message to burn LP shares for a proportional
// share of both reserves. Permitted even while the pool is frozen.
type MsgRemoveLiquidity struct {
	Provider string `json:"provider"`
	PoolId   uint64 `json:"pool_id"`
	Shares   uint64 `json:"shares"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, poolID, shares uint64) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		PoolId:   poolID,
		Shares:   shares,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgRemoveLiquidity) Reset() { *msg = MsgRemoveLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgRemoveLiquidity) String() string {
	return fmt.Sprintf("MsgRemoveLiquidity{pool %d, %d shares}", msg.PoolId, msg.Shares)
}

// ProtoMessage implements the proto.Message interface
func (*MsgRemoveLiquidity) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string { return "remove_liquidity" }

// GetSigners returns the expected signers for MsgRemoveLiquidity
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes returns the canonical sign bytes for MsgRemoveLiquidity
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of MsgRemoveLiquidity
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameter, "pool id must be positive")
	}
	if msg.Shares == 0 {
		return sdkerrors.Wrap(ErrInvalidParameter, "shares must be positive")
	}
	return nil
}
