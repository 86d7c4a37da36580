package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool defines a message to create a new liquidity pool. Creation
// is authority-gated; the pool starts empty and is funded by the first
// AddLiquidity call.
type MsgCreatePool struct {
	Creator string     `json:"creator"`
	DenomX  string     `json:"denom_x"`
	DenomY  string     `json:"denom_y"`
	Config  PoolConfig `json:"config"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator, denomX, denomY string, cfg PoolConfig) *MsgCreatePool {
	return &MsgCreatePool{
		Creator: creator,
		DenomX:  denomX,
		DenomY:  denomY,
		Config:  cfg,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgCreatePool) Reset() { *msg = MsgCreatePool{} }

// String implements the proto.Message interface
func (msg *MsgCreatePool) String() string {
	return fmt.Sprintf("MsgCreatePool{%s %s/%s}", msg.Creator, msg.DenomX, msg.DenomY)
}

// ProtoMessage implements the proto.Message interface
func (*MsgCreatePool) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgCreatePool) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgCreatePool) Type() string { return "create_pool" }

// GetSigners returns the expected signers for MsgCreatePool
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes returns the canonical sign bytes for MsgCreatePool
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of MsgCreatePool
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid creator address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.DenomX); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid denom_x: %s", err)
	}
	if err := sdk.ValidateDenom(msg.DenomY); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid denom_y: %s", err)
	}
	if msg.DenomX == msg.DenomY {
		return sdkerrors.Wrap(ErrInvalidParameter, "pool denoms must differ")
	}
	return msg.Config.Validate()
}
