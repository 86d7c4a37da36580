package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the module's concrete types on the amino
// codec. State objects are registered alongside the messages because pools
// and fee banks are persisted through amino as well.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "amm/CreatePool", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "amm/Swap", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "amm/AddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "amm/RemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgFreezePool{}, "amm/FreezePool", nil)
	cdc.RegisterConcrete(&MsgWithdrawTreasury{}, "amm/WithdrawTreasury", nil)
}

// RegisterInterfaces registers the module's message implementations with the
// interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgSwap{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgFreezePool{},
		&MsgWithdrawTreasury{},
	)
}

// ModuleCdc is the module-wide amino codec, used for sign bytes and for
// persisting state objects.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
}
