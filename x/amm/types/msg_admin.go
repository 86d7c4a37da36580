package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgFreezePool{}
	_ sdk.Msg = &MsgWithdrawTreasury{}
)

// MsgFreezePool defines an authority message to freeze or unfreeze a pool.
// A frozen pool rejects swaps and deposits but still allows withdrawals.
type MsgFreezePool struct {
	Authority string `json:"authority"`
	PoolId    uint64 `json:"pool_id"`
	Frozen    bool   `json:"frozen"`
}

// NewMsgFreezePool creates a new MsgFreezePool instance
func NewMsgFreezePool(authority string, poolID uint64, frozen bool) *MsgFreezePool {
	return &MsgFreezePool{
		Authority: authority,
		PoolId:    poolID,
		Frozen:    frozen,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgFreezePool) Reset() { *msg = MsgFreezePool{} }

// String implements the proto.Message interface
func (msg *MsgFreezePool) String() string {
	return fmt.Sprintf("MsgFreezePool{pool %d, frozen=%t}", msg.PoolId, msg.Frozen)
}

// ProtoMessage implements the proto.Message interface
func (*MsgFreezePool) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgFreezePool) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgFreezePool) Type() string { return "freeze_pool" }

// GetSigners returns the expected signers for MsgFreezePool
func (msg MsgFreezePool) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes returns the canonical sign bytes for MsgFreezePool
func (msg MsgFreezePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of MsgFreezePool
func (msg MsgFreezePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid authority address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameter, "pool id must be positive")
	}
	return nil
}

// MsgWithdrawTreasury defines an authority message to pay out accumulated
// treasury fees to a recipient.
type MsgWithdrawTreasury struct {
	Authority string `json:"authority"`
	Recipient string `json:"recipient"`
	Denom     string `json:"denom"`
	Amount    uint64 `json:"amount"`
}

// NewMsgWithdrawTreasury creates a new MsgWithdrawTreasury instance
func NewMsgWithdrawTreasury(authority, recipient, denom string, amount uint64) *MsgWithdrawTreasury {
	return &MsgWithdrawTreasury{
		Authority: authority,
		Recipient: recipient,
		Denom:     denom,
		Amount:    amount,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgWithdrawTreasury) Reset() { *msg = MsgWithdrawTreasury{} }

// String implements the proto.Message interface
func (msg *MsgWithdrawTreasury) String() string {
	return fmt.Sprintf("MsgWithdrawTreasury{%d %s -> %s}", msg.Amount, msg.Denom, msg.Recipient)
}

// ProtoMessage implements the proto.Message interface
func (*MsgWithdrawTreasury) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgWithdrawTreasury) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgWithdrawTreasury) Type() string { return "withdraw_treasury" }

// GetSigners returns the expected signers for MsgWithdrawTreasury
func (msg MsgWithdrawTreasury) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes returns the canonical sign bytes for MsgWithdrawTreasury
func (msg MsgWithdrawTreasury) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of MsgWithdrawTreasury
func (msg MsgWithdrawTreasury) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid recipient address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameter, "invalid denom: %s", err)
	}
	if msg.Amount == 0 {
		return sdkerrors.Wrap(ErrInvalidParameter, "amount must be positive")
	}
	return nil
}
