package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/paw-chain/amm/testutil/keeper"
	"github.com/paw-chain/amm/x/amm/keeper"
	"github.com/paw-chain/amm/x/amm/types"
)

const (
	denomX = "upaw"
	denomY = "uusdt"
)

var (
	trader   = sdk.AccAddress("trader______________")
	provider = sdk.AccAddress("provider____________")
)

// setup returns a keeper fixture plus the authority address as an account.
func setup(t *testing.T) (*keeper.Keeper, sdk.Context, *testkeeper.MockBankKeeper, sdk.AccAddress) {
	k, ctx, bank := testkeeper.AmmKeeper(t)
	authority, err := sdk.AccAddressFromBech32(testkeeper.Authority)
	require.NoError(t, err)
	return k, ctx, bank, authority
}

func coins(amounts map[string]uint64) sdk.Coins {
	out := sdk.NewCoins()
	for denom, amount := range amounts {
		out = out.Add(sdk.NewCoin(denom, math.NewIntFromUint64(amount)))
	}
	return out
}

// createPool creates a pool with the given config, registering both denoms
// in the mock ledger's supply first.
func createPool(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bank *testkeeper.MockBankKeeper, authority sdk.AccAddress, cfg types.PoolConfig) *types.Pool {
	bank.FundAccount(provider, coins(map[string]uint64{denomX: 1, denomY: 1}))

	pool, err := k.CreatePool(ctx, authority, denomX, denomY, cfg)
	require.NoError(t, err)
	return pool
}

// createFundedPool creates a pool and seeds it with the given reserves via a
// bootstrap deposit, leaving the provider with spare balance.
func createFundedPool(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bank *testkeeper.MockBankKeeper, authority sdk.AccAddress, cfg types.PoolConfig, reserveX, reserveY uint64) *types.Pool {
	pool := createPool(t, k, ctx, bank, authority, cfg)

	bank.FundAccount(provider, coins(map[string]uint64{denomX: reserveX, denomY: reserveY}))
	shares, err := k.AddLiquidity(ctx, provider, pool.Id, reserveX, reserveY)
	require.NoError(t, err)
	require.Equal(t, uint64(types.BootstrapShares), shares)

	pool, err = k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	return pool
}

func withBlockTime(ctx sdk.Context, unix int64) sdk.Context {
	return ctx.WithBlockTime(time.Unix(unix, 0))
}

func hasEvent(ctx sdk.Context, eventType string) bool {
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			return true
		}
	}
	return false
}
