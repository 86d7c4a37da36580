package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/amm/types"
)

// NextPoolID returns the next pool ID and advances the counter
func (k Keeper) NextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)

	var poolID uint64 = 1
	if bz != nil {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(PoolCountKey, nextBz)

	return poolID
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolCountKey, bz)
}

// GetNextPoolID returns the next pool ID without advancing the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// pow10 returns 10^exp for small exponents used in decimal alignment.
func pow10(exp uint32) uint64 {
	result := uint64(1)
	for i := uint32(0); i < exp; i++ {
		result *= 10
	}
	return result
}

// CreatePool creates an empty pool for the given denom pair. Creation is
// restricted to the module authority; the pool is funded by the first
// AddLiquidity call. Both denoms must already be in circulation.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, denomX, denomY string, cfg types.PoolConfig) (*types.Pool, error) {
	if creator.String() != k.authority {
		return nil, types.ErrPermissionDenied.Wrapf(
			"pool creation restricted to %s", k.authority)
	}

	if denomX == denomY {
		return nil, types.ErrInvalidParameter.Wrap("pool denoms must differ")
	}
	if err := sdk.ValidateDenom(denomX); err != nil {
		return nil, types.ErrInvalidParameter.Wrapf("invalid denom_x: %s", err)
	}
	if err := sdk.ValidateDenom(denomY); err != nil {
		return nil, types.ErrInvalidParameter.Wrapf("invalid denom_y: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Both denoms must have a live supply in the value ledger before a pool
	// can trade them.
	if k.bankKeeper.GetSupply(ctx, denomX).Amount.IsZero() {
		return nil, types.ErrCoinNotRegistered.Wrapf("denom %s has no supply", denomX)
	}
	if k.bankKeeper.GetSupply(ctx, denomY).Amount.IsZero() {
		return nil, types.ErrCoinNotRegistered.Wrapf("denom %s has no supply", denomY)
	}

	if existing, err := k.GetPoolByDenoms(ctx, denomX, denomY); err == nil && existing != nil {
		return nil, types.ErrPoolDuplicate.Wrapf(
			"pool %d already serves pair %s", existing.Id, types.PairKey(denomX, denomY))
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: get params: %w", err)
	}
	if count := k.countPools(ctx); count >= params.MaxPools {
		return nil, types.ErrInvalidParameter.Wrapf(
			"maximum number of pools (%d) reached", params.MaxPools)
	}

	poolID := k.NextPoolID(ctx)

	pool := &types.Pool{
		Id:              poolID,
		DenomX:          denomX,
		DenomY:          denomY,
		PoolType:        cfg.PoolType,
		FeeDirection:    cfg.FeeDirection,
		AdminFeeBps:     cfg.AdminFeeBps,
		LpFeeBps:        cfg.LpFeeBps,
		IncentiveFeeBps: cfg.IncentiveFeeBps,
		ConnectFeeBps:   cfg.ConnectFeeBps,
		WithdrawFeeBps:  cfg.WithdrawFeeBps,
		Amp:             cfg.Amp,
		Creator:         creator.String(),
	}

	if cfg.PoolType == types.PoolTypeStableSwap {
		pool.ScaleX = pow10(types.MaxTokenDecimals - cfg.DecimalsX)
		// TODO: upstream derives the Y scale from the X decimals; confirm
		// with the stable-swap rollout whether DecimalsY was intended here.
		pool.ScaleY = pow10(types.MaxTokenDecimals - cfg.DecimalsX)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return nil, fmt.Errorf("CreatePool: save pool: %w", err)
	}
	k.setPoolByDenoms(ctx, denomX, denomY, poolID)

	// Treasury banks are created lazily with the pool and live for its
	// lifetime.
	k.ensureBank(ctx, denomX)
	k.ensureBank(ctx, denomY)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyDenomX, denomX),
			sdk.NewAttribute(types.AttributeKeyDenomY, denomY),
		),
	)

	k.metrics.PoolsCreated.Inc()

	return pool, nil
}

// GetPool retrieves a pool by its unique numeric ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := k.cdc.Unmarshal(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByDenoms retrieves a pool by its token pair (order-independent).
// Returns ErrPoolNotFound if no pool serves the pair.
func (k Keeper) GetPoolByDenoms(ctx context.Context, denomA, denomB string) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolByPairKey(denomA, denomB))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf(
			"no pool for pair %s", types.PairKey(denomA, denomB))
	}

	poolID := binary.BigEndian.Uint64(bz)
	return k.GetPool(ctx, poolID)
}

func (k Keeper) setPoolByDenoms(ctx context.Context, denomA, denomB string, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolByPairKey(denomA, denomB), bz)
}

// IteratePools iterates over all pools in id order
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns every pool in the store
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}

func (k Keeper) countPools(ctx context.Context) uint64 {
	var count uint64
	_ = k.IteratePools(ctx, func(types.Pool) bool {
		count++
		return false
	})
	return count
}

// SetPoolFrozen freezes or unfreezes a pool. A frozen pool rejects swaps
// and deposits; withdrawals stay open so providers can always exit.
// Authority-gated.
func (k Keeper) SetPoolFrozen(ctx context.Context, authority string, poolID uint64, frozen bool) error {
	if authority != k.authority {
		return types.ErrPermissionDenied.Wrapf(
			"invalid authority; expected %s, got %s", k.authority, authority)
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	pool.Frozen = frozen
	if err := k.SetPool(ctx, pool); err != nil {
		return fmt.Errorf("SetPoolFrozen: save pool: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolFrozen,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyFrozen, fmt.Sprintf("%t", frozen)),
		),
	)

	k.Logger(ctx).Info("pool freeze flag changed", "pool_id", poolID, "frozen", frozen)

	return nil
}

// checkShareSupply cross-checks the pool's internal share counter against
// the supply tracked by the value ledger. A mismatch means the two ledgers
// diverged, which is fatal.
func (k Keeper) checkShareSupply(ctx context.Context, pool *types.Pool) error {
	supply := k.bankKeeper.GetSupply(ctx, pool.ShareDenom())
	if !supply.Amount.Equal(math.NewIntFromUint64(pool.LpSupply)) {
		return types.ErrComputation.Wrapf(
			"pool %d share supply mismatch: ledger %s, pool %d",
			pool.Id, supply.Amount, pool.LpSupply)
	}
	return nil
}
