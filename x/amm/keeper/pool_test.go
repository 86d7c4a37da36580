package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/types"
)

func TestCreatePool(t *testing.T) {
	k, ctx, bank, authority := setup(t)
	bank.FundAccount(provider, coins(map[string]uint64{denomX: 1, denomY: 1}))

	pool, err := k.CreatePool(ctx, authority, denomX, denomY, types.PoolConfig{LpFeeBps: 30})
	require.NoError(t, err)
	require.Equal(t, uint64(1), pool.Id)
	require.Equal(t, denomX, pool.DenomX)
	require.Equal(t, denomY, pool.DenomY)
	require.Equal(t, uint32(30), pool.LpFeeBps)
	require.Zero(t, pool.ReserveX)
	require.Zero(t, pool.ReserveY)
	require.Zero(t, pool.LpSupply)
	require.False(t, pool.Frozen)
	require.True(t, hasEvent(ctx, types.EventTypePoolCreated))

	// The pair index resolves in both denom orders.
	byPair, err := k.GetPoolByDenoms(ctx, denomY, denomX)
	require.NoError(t, err)
	require.Equal(t, pool.Id, byPair.Id)

	// Treasury banks exist for both denoms from creation.
	for _, denom := range []string{denomX, denomY} {
		treasury, err := k.GetBank(ctx, denom)
		require.NoError(t, err)
		require.Equal(t, denom, treasury.Denom)
	}

	// IDs are sequential.
	bank.FundAccount(provider, coins(map[string]uint64{"uatom": 1}))
	second, err := k.CreatePool(ctx, authority, denomX, "uatom", types.PoolConfig{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), second.Id)
}

func TestCreatePoolRejections(t *testing.T) {
	k, ctx, bank, authority := setup(t)
	bank.FundAccount(provider, coins(map[string]uint64{denomX: 1, denomY: 1}))

	t.Run("non-authority creator", func(t *testing.T) {
		_, err := k.CreatePool(ctx, trader, denomX, denomY, types.PoolConfig{})
		require.ErrorIs(t, err, types.ErrPermissionDenied)
	})

	t.Run("identical denoms", func(t *testing.T) {
		_, err := k.CreatePool(ctx, authority, denomX, denomX, types.PoolConfig{})
		require.ErrorIs(t, err, types.ErrInvalidParameter)
	})

	t.Run("malformed denom", func(t *testing.T) {
		_, err := k.CreatePool(ctx, authority, "", denomY, types.PoolConfig{})
		require.ErrorIs(t, err, types.ErrInvalidParameter)
	})

	t.Run("fee sum out of range", func(t *testing.T) {
		cfg := types.PoolConfig{AdminFeeBps: 5000, LpFeeBps: 5000}
		_, err := k.CreatePool(ctx, authority, denomX, denomY, cfg)
		require.ErrorIs(t, err, types.ErrWrongFee)
	})

	t.Run("unregistered coin", func(t *testing.T) {
		_, err := k.CreatePool(ctx, authority, denomX, "unobody", types.PoolConfig{})
		require.ErrorIs(t, err, types.ErrCoinNotRegistered)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		_, err := k.CreatePool(ctx, authority, denomX, denomY, types.PoolConfig{})
		require.NoError(t, err)

		// Same pair in reverse order is still a duplicate.
		_, err = k.CreatePool(ctx, authority, denomY, denomX, types.PoolConfig{})
		require.ErrorIs(t, err, types.ErrPoolDuplicate)
	})
}

func TestCreatePoolMaxPools(t *testing.T) {
	k, ctx, bank, authority := setup(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.MaxPools = 1
	require.NoError(t, k.SetParams(ctx, params))

	bank.FundAccount(provider, coins(map[string]uint64{denomX: 1, denomY: 1, "uatom": 1}))

	_, err = k.CreatePool(ctx, authority, denomX, denomY, types.PoolConfig{})
	require.NoError(t, err)

	_, err = k.CreatePool(ctx, authority, denomX, "uatom", types.PoolConfig{})
	require.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestCreateStablePoolScales(t *testing.T) {
	k, ctx, bank, authority := setup(t)
	bank.FundAccount(provider, coins(map[string]uint64{denomX: 1, denomY: 1}))

	cfg := types.PoolConfig{
		PoolType:  types.PoolTypeStableSwap,
		Amp:       100,
		DecimalsX: 6,
		DecimalsY: 18,
	}
	pool, err := k.CreatePool(ctx, authority, denomX, denomY, cfg)
	require.NoError(t, err)

	require.Equal(t, types.PoolTypeStableSwap, pool.PoolType)
	require.Equal(t, uint64(100), pool.Amp)

	// Both scales come from the X decimals: 10^(18-6).
	require.Equal(t, uint64(1_000_000_000_000), pool.ScaleX)
	require.Equal(t, pool.ScaleX, pool.ScaleY)
}

func TestStandardPoolHasNoScales(t *testing.T) {
	k, ctx, bank, authority := setup(t)
	pool := createPool(t, k, ctx, bank, authority, types.PoolConfig{})
	require.Zero(t, pool.ScaleX)
	require.Zero(t, pool.ScaleY)
}

func TestSetPoolFrozen(t *testing.T) {
	k, ctx, bank, authority := setup(t)
	pool := createPool(t, k, ctx, bank, authority, types.PoolConfig{})

	t.Run("non-authority", func(t *testing.T) {
		err := k.SetPoolFrozen(ctx, trader.String(), pool.Id, true)
		require.ErrorIs(t, err, types.ErrPermissionDenied)
	})

	t.Run("unknown pool", func(t *testing.T) {
		err := k.SetPoolFrozen(ctx, authority.String(), 99, true)
		require.ErrorIs(t, err, types.ErrPoolNotFound)
	})

	t.Run("freeze and thaw", func(t *testing.T) {
		require.NoError(t, k.SetPoolFrozen(ctx, authority.String(), pool.Id, true))
		frozen, err := k.GetPool(ctx, pool.Id)
		require.NoError(t, err)
		require.True(t, frozen.Frozen)
		require.True(t, hasEvent(ctx, types.EventTypePoolFrozen))

		require.NoError(t, k.SetPoolFrozen(ctx, authority.String(), pool.Id, false))
		thawed, err := k.GetPool(ctx, pool.Id)
		require.NoError(t, err)
		require.False(t, thawed.Frozen)
	})
}

func TestPoolCounter(t *testing.T) {
	k, ctx, _, _ := setup(t)

	require.Equal(t, uint64(1), k.GetNextPoolID(ctx))
	require.Equal(t, uint64(1), k.NextPoolID(ctx))
	require.Equal(t, uint64(2), k.NextPoolID(ctx))
	require.Equal(t, uint64(3), k.GetNextPoolID(ctx))

	k.SetNextPoolID(ctx, 10)
	require.Equal(t, uint64(10), k.GetNextPoolID(ctx))
}

func TestGetAllPools(t *testing.T) {
	k, ctx, bank, authority := setup(t)

	pools, err := k.GetAllPools(ctx)
	require.NoError(t, err)
	require.Empty(t, pools)

	bank.FundAccount(provider, coins(map[string]uint64{denomX: 1, denomY: 1, "uatom": 1}))
	_, err = k.CreatePool(ctx, authority, denomX, denomY, types.PoolConfig{})
	require.NoError(t, err)
	_, err = k.CreatePool(ctx, authority, denomX, "uatom", types.PoolConfig{})
	require.NoError(t, err)

	pools, err = k.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	require.Equal(t, uint64(1), pools[0].Id)
	require.Equal(t, uint64(2), pools[1].Id)
}
