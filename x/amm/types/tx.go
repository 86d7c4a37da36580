package types

import (
	"context"
	"fmt"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"github.com/cosmos/gogoproto/proto"
	"google.golang.org/grpc"
)

// MsgServer is the server API for the AMM Msg service.
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	FreezePool(context.Context, *MsgFreezePool) (*MsgFreezePoolResponse, error)
	WithdrawTreasury(context.Context, *MsgWithdrawTreasury) (*MsgWithdrawTreasuryResponse, error)
}

// MsgCreatePoolResponse returns the id assigned to the new pool.
type MsgCreatePoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgCreatePoolResponse) Reset()         { *m = MsgCreatePoolResponse{} }
func (m *MsgCreatePoolResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCreatePoolResponse) ProtoMessage()    {}

// MsgSwapResponse returns the output amount delivered to the trader.
type MsgSwapResponse struct {
	AmountOut uint64 `json:"amount_out"`
}

func (m *MsgSwapResponse) Reset()         { *m = MsgSwapResponse{} }
func (m *MsgSwapResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSwapResponse) ProtoMessage()    {}

// MsgAddLiquidityResponse returns the LP shares minted to the provider.
type MsgAddLiquidityResponse struct {
	Shares uint64 `json:"shares"`
}

func (m *MsgAddLiquidityResponse) Reset()         { *m = MsgAddLiquidityResponse{} }
func (m *MsgAddLiquidityResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgAddLiquidityResponse) ProtoMessage()    {}

// MsgRemoveLiquidityResponse returns the amounts paid out for the burned shares.
type MsgRemoveLiquidityResponse struct {
	AmountX uint64 `json:"amount_x"`
	AmountY uint64 `json:"amount_y"`
}

func (m *MsgRemoveLiquidityResponse) Reset()         { *m = MsgRemoveLiquidityResponse{} }
func (m *MsgRemoveLiquidityResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRemoveLiquidityResponse) ProtoMessage()    {}

// MsgFreezePoolResponse is the empty response for MsgFreezePool.
type MsgFreezePoolResponse struct{}

func (m *MsgFreezePoolResponse) Reset()         { *m = MsgFreezePoolResponse{} }
func (m *MsgFreezePoolResponse) String() string { return "MsgFreezePoolResponse{}" }
func (*MsgFreezePoolResponse) ProtoMessage()    {}

// MsgWithdrawTreasuryResponse is the empty response for MsgWithdrawTreasury.
type MsgWithdrawTreasuryResponse struct{}

func (m *MsgWithdrawTreasuryResponse) Reset()         { *m = MsgWithdrawTreasuryResponse{} }
func (m *MsgWithdrawTreasuryResponse) String() string { return "MsgWithdrawTreasuryResponse{}" }
func (*MsgWithdrawTreasuryResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*MsgCreatePool)(nil), "paw.amm.v1.MsgCreatePool")
	proto.RegisterType((*MsgCreatePoolResponse)(nil), "paw.amm.v1.MsgCreatePoolResponse")
	proto.RegisterType((*MsgSwap)(nil), "paw.amm.v1.MsgSwap")
	proto.RegisterType((*MsgSwapResponse)(nil), "paw.amm.v1.MsgSwapResponse")
	proto.RegisterType((*MsgAddLiquidity)(nil), "paw.amm.v1.MsgAddLiquidity")
	proto.RegisterType((*MsgAddLiquidityResponse)(nil), "paw.amm.v1.MsgAddLiquidityResponse")
	proto.RegisterType((*MsgRemoveLiquidity)(nil), "paw.amm.v1.MsgRemoveLiquidity")
	proto.RegisterType((*MsgRemoveLiquidityResponse)(nil), "paw.amm.v1.MsgRemoveLiquidityResponse")
	proto.RegisterType((*MsgFreezePool)(nil), "paw.amm.v1.MsgFreezePool")
	proto.RegisterType((*MsgFreezePoolResponse)(nil), "paw.amm.v1.MsgFreezePoolResponse")
	proto.RegisterType((*MsgWithdrawTreasury)(nil), "paw.amm.v1.MsgWithdrawTreasury")
	proto.RegisterType((*MsgWithdrawTreasuryResponse)(nil), "paw.amm.v1.MsgWithdrawTreasuryResponse")
}

// RegisterMsgServer registers the Msg service implementation with the router.
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_CreatePool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCreatePool)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CreatePool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paw.amm.v1.Msg/CreatePool",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CreatePool(ctx, req.(*MsgCreatePool))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Swap_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSwap)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Swap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paw.amm.v1.Msg/Swap",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Swap(ctx, req.(*MsgSwap))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_AddLiquidity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgAddLiquidity)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).AddLiquidity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paw.amm.v1.Msg/AddLiquidity",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).AddLiquidity(ctx, req.(*MsgAddLiquidity))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_RemoveLiquidity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgRemoveLiquidity)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).RemoveLiquidity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paw.amm.v1.Msg/RemoveLiquidity",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).RemoveLiquidity(ctx, req.(*MsgRemoveLiquidity))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_FreezePool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgFreezePool)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).FreezePool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paw.amm.v1.Msg/FreezePool",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).FreezePool(ctx, req.(*MsgFreezePool))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_WithdrawTreasury_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgWithdrawTreasury)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).WithdrawTreasury(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/paw.amm.v1.Msg/WithdrawTreasury",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).WithdrawTreasury(ctx, req.(*MsgWithdrawTreasury))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "paw.amm.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePool",
			Handler:    _Msg_CreatePool_Handler,
		},
		{
			MethodName: "Swap",
			Handler:    _Msg_Swap_Handler,
		},
		{
			MethodName: "AddLiquidity",
			Handler:    _Msg_AddLiquidity_Handler,
		},
		{
			MethodName: "RemoveLiquidity",
			Handler:    _Msg_RemoveLiquidity_Handler,
		},
		{
			MethodName: "FreezePool",
			Handler:    _Msg_FreezePool_Handler,
		},
		{
			MethodName: "WithdrawTreasury",
			Handler:    _Msg_WithdrawTreasury_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
