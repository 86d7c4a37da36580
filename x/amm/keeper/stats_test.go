package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/types"
)

func TestStatsWithoutTimeSource(t *testing.T) {
	k, ctx, bank, authority := setup(t)
	pool := createFundedPool(t, k, ctx, bank, authority, types.PoolConfig{}, 1000, 1000)

	// The fixture context carries a zero block time: lifetime totals still
	// accumulate, but every time-driven effect stays off.
	bank.FundAccount(trader, coins(map[string]uint64{denomX: 100}))
	out, err := k.Swap(ctx, trader, pool.Id, denomX, 100, 0)
	require.NoError(t, err)

	pool, err = k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, uint64(100), pool.TotalTradeX)
	require.Equal(t, out, pool.TotalTradeY)
	require.Zero(t, pool.TradeX24h)
	require.Zero(t, pool.TradeY24h)
	require.Zero(t, pool.WindowStartTime)
	require.Zero(t, pool.LastTradeTime)
	require.Zero(t, pool.SnapshotLastTime)
	require.False(t, hasEvent(ctx, types.EventTypeReserveSnapshot))
}

func TestStatsAccumulateAndSnapshot(t *testing.T) {
	k, ctx, bank, authority := setup(t)
	pool := createFundedPool(t, k, ctx, bank, authority, types.PoolConfig{}, 100_000, 100_000)

	const t0 = int64(1_700_000_000)
	ctx = withBlockTime(ctx, t0)

	bank.FundAccount(trader, coins(map[string]uint64{denomX: 10_000}))
	out1, err := k.Swap(ctx, trader, pool.Id, denomX, 1000, 0)
	require.NoError(t, err)

	pool, err = k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), pool.TotalTradeX)
	require.Equal(t, out1, pool.TotalTradeY)
	require.Equal(t, uint64(1000), pool.TradeX24h)
	require.Equal(t, uint64(t0), pool.WindowStartTime)
	require.Equal(t, uint64(t0), pool.LastTradeTime)

	// First trade with a clock emits a snapshot and anchors the clock.
	require.Equal(t, uint64(t0), pool.SnapshotLastTime)
	require.True(t, hasEvent(ctx, types.EventTypeReserveSnapshot))

	// A second trade inside the snapshot interval leaves the clock alone.
	ctx = withBlockTime(ctx, t0+60)
	_, err = k.Swap(ctx, trader, pool.Id, denomX, 1000, 0)
	require.NoError(t, err)

	pool, err = k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, uint64(2000), pool.TradeX24h)
	require.Equal(t, uint64(t0), pool.SnapshotLastTime)
	require.Equal(t, uint64(t0), pool.WindowStartTime)
	require.Equal(t, uint64(t0+60), pool.LastTradeTime)

	// Past the interval, the next trade snapshots again.
	ctx = withBlockTime(ctx, t0+types.ReserveSnapshotInterval+1)
	_, err = k.Swap(ctx, trader, pool.Id, denomX, 1000, 0)
	require.NoError(t, err)

	pool, err = k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, uint64(t0+types.ReserveSnapshotInterval+1), pool.SnapshotLastTime)
}

func TestStatsWindowReset(t *testing.T) {
	k, ctx, bank, authority := setup(t)
	pool := createFundedPool(t, k, ctx, bank, authority, types.PoolConfig{}, 100_000, 100_000)

	const t0 = int64(1_700_000_000)
	bank.FundAccount(trader, coins(map[string]uint64{denomX: 10_000}))

	_, err := k.Swap(withBlockTime(ctx, t0), trader, pool.Id, denomX, 1000, 0)
	require.NoError(t, err)

	// 25 hours later: the lapsed window resets before the trade lands, so
	// the fresh window contains only the new trade.
	later := t0 + int64(types.TradeWindowSeconds) + 3600
	_, err = k.Swap(withBlockTime(ctx, later), trader, pool.Id, denomX, 500, 0)
	require.NoError(t, err)

	pool, err = k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, uint64(500), pool.TradeX24h)
	require.Equal(t, uint64(later), pool.WindowStartTime)

	// Lifetime totals never reset.
	require.Equal(t, uint64(1500), pool.TotalTradeX)
}

func TestBankSnapshotGating(t *testing.T) {
	k, ctx, bank, authority := setup(t)

	cfg := types.PoolConfig{AdminFeeBps: 100}
	pool := createFundedPool(t, k, ctx, bank, authority, cfg, 1_000_000, 1_000_000)

	const t0 = int64(1_700_000_000)
	bank.FundAccount(trader, coins(map[string]uint64{denomX: 100_000}))

	// First fee with a clock: 0 + interval < t0, snapshot fires.
	ctx1 := withBlockTime(ctx, t0)
	_, err := k.Swap(ctx1, trader, pool.Id, denomX, 10_000, 0)
	require.NoError(t, err)
	require.True(t, hasEvent(ctx1, types.EventTypeBankSnapshot))

	treasury, err := k.GetBank(ctx, denomX)
	require.NoError(t, err)
	require.Equal(t, uint64(t0), treasury.LastSnapshotTime)

	// Inside the six hour interval, fees accumulate silently.
	ctx2 := withBlockTime(ctx, t0+600).WithEventManager(sdk.NewEventManager())
	_, err = k.Swap(ctx2, trader, pool.Id, denomX, 10_000, 0)
	require.NoError(t, err)
	require.False(t, hasEvent(ctx2, types.EventTypeBankSnapshot))

	treasury, err = k.GetBank(ctx, denomX)
	require.NoError(t, err)
	require.Equal(t, uint64(t0), treasury.LastSnapshotTime)
	require.Equal(t, uint64(200), treasury.Amount)

	// Past the interval, the next fee snapshots again.
	ctx3 := withBlockTime(ctx, t0+types.BankSnapshotInterval+1).WithEventManager(sdk.NewEventManager())
	_, err = k.Swap(ctx3, trader, pool.Id, denomX, 10_000, 0)
	require.NoError(t, err)
	require.True(t, hasEvent(ctx3, types.EventTypeBankSnapshot))

	treasury, err = k.GetBank(ctx, denomX)
	require.NoError(t, err)
	require.Equal(t, uint64(t0+types.BankSnapshotInterval+1), treasury.LastSnapshotTime)
}
