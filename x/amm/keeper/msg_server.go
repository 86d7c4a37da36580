package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles MsgCreatePool
func (m msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidParameter.Wrapf("invalid creator address: %s", err)
	}

	pool, err := m.Keeper.CreatePool(goCtx, creator, msg.DenomX, msg.DenomY, msg.Config)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePoolResponse{PoolId: pool.Id}, nil
}

// Swap handles MsgSwap
func (m msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidParameter.Wrapf("invalid trader address: %s", err)
	}

	amountOut, err := m.Keeper.Swap(goCtx, trader, msg.PoolId, msg.DenomIn, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapResponse{AmountOut: amountOut}, nil
}

// AddLiquidity handles MsgAddLiquidity
func (m msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidParameter.Wrapf("invalid provider address: %s", err)
	}

	shares, err := m.Keeper.AddLiquidity(goCtx, provider, msg.PoolId, msg.AmountX, msg.AmountY)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddLiquidityResponse{Shares: shares}, nil
}

// RemoveLiquidity handles MsgRemoveLiquidity
func (m msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidParameter.Wrapf("invalid provider address: %s", err)
	}

	amountX, amountY, err := m.Keeper.RemoveLiquidity(goCtx, provider, msg.PoolId, msg.Shares)
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveLiquidityResponse{AmountX: amountX, AmountY: amountY}, nil
}

// FreezePool handles MsgFreezePool
func (m msgServer) FreezePool(goCtx context.Context, msg *types.MsgFreezePool) (*types.MsgFreezePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := m.Keeper.SetPoolFrozen(goCtx, msg.Authority, msg.PoolId, msg.Frozen); err != nil {
		return nil, err
	}

	return &types.MsgFreezePoolResponse{}, nil
}

// WithdrawTreasury handles MsgWithdrawTreasury
func (m msgServer) WithdrawTreasury(goCtx context.Context, msg *types.MsgWithdrawTreasury) (*types.MsgWithdrawTreasuryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidParameter.Wrapf("invalid recipient address: %s", err)
	}

	if err := m.Keeper.WithdrawTreasury(goCtx, msg.Authority, recipient, msg.Denom, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgWithdrawTreasuryResponse{}, nil
}
