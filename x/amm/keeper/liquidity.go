package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/amm/types"
)

// checkBackingRatio asserts that the per-share backing of a reserve did not
// decrease across a liquidity operation:
//
//	reserveBefore * lpAfter <= reserveAfter * lpBefore
//
// Floor rounding on mints and redemptions makes this hold; a violation is a
// logic bug and aborts the operation.
func checkBackingRatio(reserveBefore, reserveAfter, lpBefore, lpAfter uint64) error {
	if mulWide(reserveBefore, lpAfter).GT(mulWide(reserveAfter, lpBefore)) {
		return types.ErrComputation.Wrapf(
			"per-share backing decreased: reserve %d -> %d, shares %d -> %d",
			reserveBefore, reserveAfter, lpBefore, lpAfter)
	}
	return nil
}

// AddLiquidity deposits both pool tokens and mints LP shares to the
// provider. The first deposit into an empty pool mints a fixed 1000 shares
// whatever the amounts; later deposits mint the minimum of the two reserve
// ratios so an unbalanced deposit can never dilute existing holders, and
// the surplus side is simply donated to the pool. Deposits carry no fee.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID, amountX, amountY uint64) (uint64, error) {
	if amountX == 0 || amountY == 0 {
		return 0, types.ErrInvalidParameter.Wrap("deposit amounts must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return 0, err
	}
	if pool.Frozen {
		return 0, types.ErrPoolFrozen.Wrapf("pool %d is frozen", poolID)
	}

	var shares uint64
	if pool.LpSupply == 0 {
		params, err := k.GetParams(ctx)
		if err != nil {
			return 0, fmt.Errorf("AddLiquidity: get params: %w", err)
		}
		if amountX < params.MinInitialDeposit || amountY < params.MinInitialDeposit {
			return 0, types.ErrInvalidParameter.Wrapf(
				"bootstrap deposit below minimum %d per token", params.MinInitialDeposit)
		}
		// Fixed bootstrap mint. A geometric-mean bootstrap was considered
		// upstream but the constant is the shipped behavior; changing it
		// would reprice every historical bootstrap position.
		shares = types.BootstrapShares
	} else {
		sharesX, err := MulDiv(amountX, pool.LpSupply, pool.ReserveX)
		if err != nil {
			return 0, err
		}
		sharesY, err := MulDiv(amountY, pool.LpSupply, pool.ReserveY)
		if err != nil {
			return 0, err
		}
		shares = sharesX
		if sharesY < shares {
			shares = sharesY
		}
		if shares == 0 {
			return 0, types.ErrInvalidParameter.Wrap(
				"deposit too small to mint a share")
		}
	}

	reserveXBefore, reserveYBefore := pool.ReserveX, pool.ReserveY
	lpBefore := pool.LpSupply

	newReserveX, err := AddU64(pool.ReserveX, amountX)
	if err != nil {
		return 0, err
	}
	newReserveY, err := AddU64(pool.ReserveY, amountY)
	if err != nil {
		return 0, err
	}
	newSupply, err := AddU64(pool.LpSupply, shares)
	if err != nil {
		return 0, err
	}

	if err := checkBackingRatio(reserveXBefore, newReserveX, lpBefore, newSupply); err != nil {
		return 0, err
	}
	if err := checkBackingRatio(reserveYBefore, newReserveY, lpBefore, newSupply); err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	deposit := sdk.NewCoins(
		sdk.NewCoin(pool.DenomX, math.NewIntFromUint64(amountX)),
		sdk.NewCoin(pool.DenomY, math.NewIntFromUint64(amountY)),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, provider, types.ModuleName, deposit); err != nil {
		return 0, types.ErrNotEnoughBalance.Wrapf("deposit transfer failed: %v", err)
	}

	shareCoins := sdk.NewCoins(sdk.NewCoin(pool.ShareDenom(), math.NewIntFromUint64(shares)))
	if err := k.bankKeeper.MintCoins(cacheCtx, types.ModuleName, shareCoins); err != nil {
		return 0, fmt.Errorf("AddLiquidity: mint shares: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, provider, shareCoins); err != nil {
		return 0, fmt.Errorf("AddLiquidity: deliver shares: %w", err)
	}

	pool.ReserveX = newReserveX
	pool.ReserveY = newReserveY
	pool.LpSupply = newSupply

	if err := k.checkShareSupply(cacheCtx, pool); err != nil {
		return 0, err
	}

	if err := k.SetPool(cacheCtx, pool); err != nil {
		return 0, err
	}

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountX, fmt.Sprintf("%d", amountX)),
			sdk.NewAttribute(types.AttributeKeyAmountY, fmt.Sprintf("%d", amountY)),
			sdk.NewAttribute(types.AttributeKeyShares, fmt.Sprintf("%d", shares)),
		),
	)

	writeCache()

	poolLabel := fmt.Sprintf("%d", poolID)
	k.metrics.LiquidityAdded.WithLabelValues(poolLabel, pool.DenomX).Add(float64(amountX))
	k.metrics.LiquidityAdded.WithLabelValues(poolLabel, pool.DenomY).Add(float64(amountY))

	return shares, nil
}

// RemoveLiquidity burns shares for a proportional cut of both reserves,
// floor-rounded in the pool's favor, minus the withdraw fee which goes to
// the treasury banks. Withdrawal works on frozen pools: trading can be
// halted but providers can always exit.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID, shares uint64) (uint64, uint64, error) {
	if shares == 0 {
		return 0, 0, types.ErrInvalidParameter.Wrap("shares must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return 0, 0, err
	}
	if pool.LpSupply == 0 {
		return 0, 0, types.ErrInvalidParameter.Wrapf("pool %d has no shares outstanding", poolID)
	}

	held := k.bankKeeper.GetBalance(ctx, provider, pool.ShareDenom())
	if held.Amount.LT(math.NewIntFromUint64(shares)) {
		return 0, 0, types.ErrNotEnoughBalance.Wrapf(
			"burning %d shares but only %s held", shares, held.Amount)
	}
	if shares > pool.LpSupply {
		return 0, 0, types.ErrInvalidParameter.Wrapf(
			"burning %d shares exceeds supply %d", shares, pool.LpSupply)
	}

	xOut, err := MulDiv(pool.ReserveX, shares, pool.LpSupply)
	if err != nil {
		return 0, 0, err
	}
	yOut, err := MulDiv(pool.ReserveY, shares, pool.LpSupply)
	if err != nil {
		return 0, 0, err
	}

	reserveXBefore, reserveYBefore := pool.ReserveX, pool.ReserveY
	lpBefore := pool.LpSupply

	newReserveX, err := SubU64(pool.ReserveX, xOut)
	if err != nil {
		return 0, 0, err
	}
	newReserveY, err := SubU64(pool.ReserveY, yOut)
	if err != nil {
		return 0, 0, err
	}
	newSupply := pool.LpSupply - shares

	if err := checkBackingRatio(reserveXBefore, newReserveX, lpBefore, newSupply); err != nil {
		return 0, 0, err
	}
	if err := checkBackingRatio(reserveYBefore, newReserveY, lpBefore, newSupply); err != nil {
		return 0, 0, err
	}

	now := blockNow(ctx)
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	shareCoins := sdk.NewCoins(sdk.NewCoin(pool.ShareDenom(), math.NewIntFromUint64(shares)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, provider, types.ModuleName, shareCoins); err != nil {
		return 0, 0, types.ErrNotEnoughBalance.Wrapf("share transfer failed: %v", err)
	}
	if err := k.bankKeeper.BurnCoins(cacheCtx, types.ModuleName, shareCoins); err != nil {
		return 0, 0, fmt.Errorf("RemoveLiquidity: burn shares: %w", err)
	}

	netX := xOut
	netY := yOut
	if pool.WithdrawFeeBps > 0 {
		netX, err = k.routeToTreasury(cacheCtx, pool.DenomX, xOut, pool.WithdrawFeeBps, now)
		if err != nil {
			return 0, 0, err
		}
		netY, err = k.routeToTreasury(cacheCtx, pool.DenomY, yOut, pool.WithdrawFeeBps, now)
		if err != nil {
			return 0, 0, err
		}
	}

	pool.ReserveX = newReserveX
	pool.ReserveY = newReserveY
	pool.LpSupply = newSupply

	if err := k.checkShareSupply(cacheCtx, pool); err != nil {
		return 0, 0, err
	}

	payout := sdk.NewCoins()
	if netX > 0 {
		payout = payout.Add(sdk.NewCoin(pool.DenomX, math.NewIntFromUint64(netX)))
	}
	if netY > 0 {
		payout = payout.Add(sdk.NewCoin(pool.DenomY, math.NewIntFromUint64(netY)))
	}
	if !payout.IsZero() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, provider, payout); err != nil {
			return 0, 0, types.ErrComputation.Wrapf("withdrawal payout failed: %v", err)
		}
	}

	if err := k.SetPool(cacheCtx, pool); err != nil {
		return 0, 0, err
	}

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountX, fmt.Sprintf("%d", netX)),
			sdk.NewAttribute(types.AttributeKeyAmountY, fmt.Sprintf("%d", netY)),
			sdk.NewAttribute(types.AttributeKeyShares, fmt.Sprintf("%d", shares)),
		),
	)

	writeCache()

	poolLabel := fmt.Sprintf("%d", poolID)
	k.metrics.LiquidityRemoved.WithLabelValues(poolLabel, pool.DenomX).Add(float64(netX))
	k.metrics.LiquidityRemoved.WithLabelValues(poolLabel, pool.DenomY).Add(float64(netY))

	return netX, netY, nil
}
