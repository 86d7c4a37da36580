package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/types"
)

var (
	signer    = sdk.AccAddress("signer______________").String()
	recipient = sdk.AccAddress("recipient___________").String()
)

func TestMsgCreatePoolValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgCreatePool
		wantErr error
	}{
		{
			name: "valid",
			msg:  types.NewMsgCreatePool(signer, "upaw", "uusdt", types.PoolConfig{LpFeeBps: 30}),
		},
		{
			name:    "bad creator",
			msg:     types.NewMsgCreatePool("oops", "upaw", "uusdt", types.PoolConfig{}),
			wantErr: types.ErrInvalidParameter,
		},
		{
			name:    "bad denom",
			msg:     types.NewMsgCreatePool(signer, "", "uusdt", types.PoolConfig{}),
			wantErr: types.ErrInvalidParameter,
		},
		{
			name:    "identical denoms",
			msg:     types.NewMsgCreatePool(signer, "upaw", "upaw", types.PoolConfig{}),
			wantErr: types.ErrInvalidParameter,
		},
		{
			name:    "bad config",
			msg:     types.NewMsgCreatePool(signer, "upaw", "uusdt", types.PoolConfig{LpFeeBps: 10000}),
			wantErr: types.ErrWrongFee,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, tc.msg.GetSigners(), 1)
			require.NotEmpty(t, tc.msg.GetSignBytes())
		})
	}
}

func TestMsgSwapValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgSwap
		wantErr error
	}{
		{name: "valid", msg: types.NewMsgSwap(signer, 1, "upaw", 100, 90)},
		{name: "zero min out is valid", msg: types.NewMsgSwap(signer, 1, "upaw", 100, 0)},
		{
			name:    "bad trader",
			msg:     types.NewMsgSwap("oops", 1, "upaw", 100, 0),
			wantErr: types.ErrInvalidParameter,
		},
		{
			name:    "zero pool id",
			msg:     types.NewMsgSwap(signer, 0, "upaw", 100, 0),
			wantErr: types.ErrInvalidParameter,
		},
		{
			name:    "bad denom",
			msg:     types.NewMsgSwap(signer, 1, "", 100, 0),
			wantErr: types.ErrInvalidParameter,
		},
		{
			name:    "zero amount",
			msg:     types.NewMsgSwap(signer, 1, "upaw", 0, 0),
			wantErr: types.ErrInvalidParameter,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgAddLiquidity(signer, 1, 100, 100).ValidateBasic())

	require.ErrorIs(t,
		types.NewMsgAddLiquidity("oops", 1, 100, 100).ValidateBasic(),
		types.ErrInvalidParameter)
	require.ErrorIs(t,
		types.NewMsgAddLiquidity(signer, 0, 100, 100).ValidateBasic(),
		types.ErrInvalidParameter)
	require.ErrorIs(t,
		types.NewMsgAddLiquidity(signer, 1, 0, 100).ValidateBasic(),
		types.ErrInvalidParameter)
	require.ErrorIs(t,
		types.NewMsgAddLiquidity(signer, 1, 100, 0).ValidateBasic(),
		types.ErrInvalidParameter)
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgRemoveLiquidity(signer, 1, 100).ValidateBasic())

	require.ErrorIs(t,
		types.NewMsgRemoveLiquidity("oops", 1, 100).ValidateBasic(),
		types.ErrInvalidParameter)
	require.ErrorIs(t,
		types.NewMsgRemoveLiquidity(signer, 0, 100).ValidateBasic(),
		types.ErrInvalidParameter)
	require.ErrorIs(t,
		types.NewMsgRemoveLiquidity(signer, 1, 0).ValidateBasic(),
		types.ErrInvalidParameter)
}

func TestMsgFreezePoolValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgFreezePool(signer, 1, true).ValidateBasic())
	require.NoError(t, types.NewMsgFreezePool(signer, 1, false).ValidateBasic())

	require.ErrorIs(t,
		types.NewMsgFreezePool("oops", 1, true).ValidateBasic(),
		types.ErrInvalidParameter)
	require.ErrorIs(t,
		types.NewMsgFreezePool(signer, 0, true).ValidateBasic(),
		types.ErrInvalidParameter)
}

func TestMsgWithdrawTreasuryValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgWithdrawTreasury(signer, recipient, "upaw", 100).ValidateBasic())

	require.ErrorIs(t,
		types.NewMsgWithdrawTreasury("oops", recipient, "upaw", 100).ValidateBasic(),
		types.ErrInvalidParameter)
	require.ErrorIs(t,
		types.NewMsgWithdrawTreasury(signer, "oops", "upaw", 100).ValidateBasic(),
		types.ErrInvalidParameter)
	require.ErrorIs(t,
		types.NewMsgWithdrawTreasury(signer, recipient, "", 100).ValidateBasic(),
		types.ErrInvalidParameter)
	require.ErrorIs(t,
		types.NewMsgWithdrawTreasury(signer, recipient, "upaw", 0).ValidateBasic(),
		types.ErrInvalidParameter)
}
