package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/paw-chain/amm/testutil/keeper"
	"github.com/paw-chain/amm/x/amm/keeper"
	"github.com/paw-chain/amm/x/amm/types"
)

func TestExtractFee(t *testing.T) {
	tests := []struct {
		name          string
		amount        uint64
		feeBps        uint32
		wantRemaining uint64
		wantFee       uint64
	}{
		{name: "zero rate", amount: 1000, feeBps: 0, wantRemaining: 1000, wantFee: 0},
		{name: "30 bps on 10000", amount: 10000, feeBps: 30, wantRemaining: 9970, wantFee: 30},
		{name: "fee floors to zero", amount: 100, feeBps: 30, wantRemaining: 100, wantFee: 0},
		{name: "fee floors down", amount: 999, feeBps: 100, wantRemaining: 990, wantFee: 9},
		{name: "max rate", amount: 10000, feeBps: 9999, wantRemaining: 1, wantFee: 9999},
		{name: "zero amount", amount: 0, feeBps: 500, wantRemaining: 0, wantFee: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			remaining, fee := keeper.ExtractFee(tc.amount, tc.feeBps)
			require.Equal(t, tc.wantRemaining, remaining)
			require.Equal(t, tc.wantFee, fee)
			require.Equal(t, tc.amount, remaining+fee, "split must conserve the amount")
		})
	}
}

func TestBankAccessors(t *testing.T) {
	k, ctx, _ := testkeeper.AmmKeeper(t)

	// Unknown denoms read as empty banks.
	bank, err := k.GetBank(ctx, "upaw")
	require.NoError(t, err)
	require.Equal(t, "upaw", bank.Denom)
	require.Zero(t, bank.Amount)

	bank.Amount = 42
	require.NoError(t, k.SetBank(ctx, bank))

	loaded, err := k.GetBank(ctx, "upaw")
	require.NoError(t, err)
	require.Equal(t, uint64(42), loaded.Amount)

	banks, err := k.GetAllBanks(ctx)
	require.NoError(t, err)
	require.Len(t, banks, 1)
}

func TestWithdrawTreasury(t *testing.T) {
	k, ctx, bank, authority := setup(t)

	// Collect some treasury fees: pool with a 100 bps admin fee on X.
	cfg := types.PoolConfig{AdminFeeBps: 100}
	pool := createFundedPool(t, k, ctx, bank, authority, cfg, 1_000_000, 1_000_000)

	bank.FundAccount(trader, coins(map[string]uint64{denomX: 10_000}))
	_, err := k.Swap(ctx, trader, pool.Id, denomX, 10_000, 0)
	require.NoError(t, err)

	treasury, err := k.GetBank(ctx, denomX)
	require.NoError(t, err)
	require.Equal(t, uint64(100), treasury.Amount)

	recipient := trader

	t.Run("wrong authority", func(t *testing.T) {
		err := k.WithdrawTreasury(ctx, recipient.String(), recipient, denomX, 10)
		require.ErrorIs(t, err, types.ErrPermissionDenied)
	})

	t.Run("exceeds collected fees", func(t *testing.T) {
		err := k.WithdrawTreasury(ctx, testkeeper.Authority, recipient, denomX, 101)
		require.ErrorIs(t, err, types.ErrNotEnoughBalance)
	})

	t.Run("zero amount", func(t *testing.T) {
		err := k.WithdrawTreasury(ctx, testkeeper.Authority, recipient, denomX, 0)
		require.ErrorIs(t, err, types.ErrInvalidParameter)
	})

	t.Run("pays out and decrements the bank", func(t *testing.T) {
		before := bank.GetBalance(ctx, recipient, denomX).Amount.Uint64()

		require.NoError(t, k.WithdrawTreasury(ctx, testkeeper.Authority, recipient, denomX, 60))

		after := bank.GetBalance(ctx, recipient, denomX).Amount.Uint64()
		require.Equal(t, before+60, after)

		treasury, err := k.GetBank(ctx, denomX)
		require.NoError(t, err)
		require.Equal(t, uint64(40), treasury.Amount)
	})
}
