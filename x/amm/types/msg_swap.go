package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap defines a message to swap one pool token for the other.
type MsgSwap struct {
	Trader       string `json:"trader"`
	PoolId       uint64 `json:"pool_id"`
	DenomIn      string `json:"denom_in"`
	AmountIn     uint64 `json:"amount_in"`
	MinAmountOut uint64 `json:"min_amount_out"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader string, poolID uint64, denomIn string, amountIn, minAmountOut uint64) *MsgSwap {
	return &MsgSwap{
		Trader:       trader,
		PoolId:       poolID,
		DenomIn:      denomIn,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgSwap) Reset() { *msg = MsgSwap{} }

// String implements the proto.Message interface
func (msg *MsgSwap) String() string {
	return fmt.Sprintf("MsgSwap{pool %d, %d %s in}", msg.PoolId, msg.AmountIn, msg.DenomIn)
}

// ProtoMessage implements the proto.Message interface
func (*MsgSwap) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgSwap) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgSwap) Type() string { return "swap" }

// GetSigners returns the expected signers for MsgSwap
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes returns the canonical sign bytes for MsgSwap
func (msg MsgSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of MsgSwap
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid trader address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameter, "pool id must be positive")
	}
	if err := sdk.ValidateDenom(msg.DenomIn); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid denom_in: %s", err)
	}
	if msg.AmountIn == 0 {
		return sdkerrors.Wrap(ErrInvalidParameter, "swap amount must be positive")
	}
	return nil
}
