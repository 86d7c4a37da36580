package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/amm/types"
)

// CalculateSwapOutput prices a trade of dx input units against the current
// reserves under the constant-product rule:
//
//	dy = floor(reserveOut * dx / (reserveIn + dx))
//
// Flooring keeps (reserveIn+dx)*(reserveOut-dy) >= reserveIn*reserveOut for
// every valid input; the inequality is still asserted because a violation
// means corrupted state, not a bad request. Pure function.
func CalculateSwapOutput(reserveIn, reserveOut, dx uint64) (uint64, error) {
	if dx == 0 {
		return 0, types.ErrInvalidParameter.Wrap("swap input must be positive")
	}
	if reserveIn == 0 || reserveOut == 0 {
		return 0, types.ErrReservesEmpty.Wrap("cannot price against an empty reserve")
	}

	newReserveIn, err := AddU64(reserveIn, dx)
	if err != nil {
		return 0, err
	}

	dy, err := MulDiv(reserveOut, dx, newReserveIn)
	if err != nil {
		return 0, err
	}

	if mulWide(newReserveIn, reserveOut-dy).LT(mulWide(reserveIn, reserveOut)) {
		return 0, types.ErrComputation.Wrapf(
			"constant product decreased pricing %d against (%d, %d)", dx, reserveIn, reserveOut)
	}

	return dy, nil
}

// Swap trades amountIn of denomIn against the pool and returns the amount of
// the opposite token delivered to the trader. Fees apply in a fixed order:
// the treasury fee is taken from whichever side the pool's fee direction
// names (input before pricing, output after), and the LP fee is taken from
// the input and folded back into the reserve so it accrues to share holders.
// The slippage bound is checked against the post-fee amount the trader
// actually receives. The whole operation commits atomically or not at all.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, denomIn string, amountIn, minAmountOut uint64) (uint64, error) {
	if amountIn == 0 {
		return 0, types.ErrInvalidParameter.Wrap("swap amount must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return 0, err
	}
	if pool.Frozen {
		return 0, types.ErrPoolFrozen.Wrapf("pool %d is frozen", poolID)
	}

	var inputIsX bool
	switch denomIn {
	case pool.DenomX:
		inputIsX = true
	case pool.DenomY:
		inputIsX = false
	default:
		return 0, types.ErrInvalidParameter.Wrapf(
			"denom %s not in pool %d (%s/%s)", denomIn, poolID, pool.DenomX, pool.DenomY)
	}

	if pool.ReserveX == 0 || pool.ReserveY == 0 {
		return 0, types.ErrReservesEmpty.Wrapf("pool %d has an empty reserve", poolID)
	}

	denomOut := pool.DenomY
	reserveIn, reserveOut := pool.ReserveX, pool.ReserveY
	direction := types.DirectionXToY
	if !inputIsX {
		denomOut = pool.DenomX
		reserveIn, reserveOut = pool.ReserveY, pool.ReserveX
		direction = types.DirectionYToX
	}

	now := blockNow(ctx)
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	kBefore := mulWide(pool.ReserveX, pool.ReserveY)

	feeOnInput := pool.TreasuryDenom() == denomIn

	remaining := amountIn
	if feeOnInput && pool.TreasuryFeeBps() > 0 {
		remaining, err = k.routeToTreasury(cacheCtx, denomIn, remaining, pool.TreasuryFeeBps(), now)
		if err != nil {
			return 0, err
		}
	}

	// The pool fee joins the input reserve but is excluded from pricing, so
	// it accrues to existing shares instead of moving the price.
	dx, poolFee := ExtractFee(remaining, pool.PoolFeeBps())

	dy, err := CalculateSwapOutput(reserveIn, reserveOut, dx)
	if err != nil {
		return 0, err
	}

	newReserveIn, err := AddU64(reserveIn, dx)
	if err != nil {
		return 0, err
	}
	newReserveIn, err = AddU64(newReserveIn, poolFee)
	if err != nil {
		return 0, err
	}
	newReserveOut, err := SubU64(reserveOut, dy)
	if err != nil {
		return 0, err
	}

	amountOut := dy
	if !feeOnInput && pool.TreasuryFeeBps() > 0 {
		amountOut, err = k.routeToTreasury(cacheCtx, denomOut, dy, pool.TreasuryFeeBps(), now)
		if err != nil {
			return 0, err
		}
	}

	if inputIsX {
		pool.ReserveX = newReserveIn
		pool.ReserveY = newReserveOut
	} else {
		pool.ReserveY = newReserveIn
		pool.ReserveX = newReserveOut
	}

	kAfter := mulWide(pool.ReserveX, pool.ReserveY)
	if kAfter.LT(kBefore) {
		return 0, types.ErrComputation.Wrapf(
			"pool %d constant product decreased: %s -> %s", poolID, kBefore, kAfter)
	}

	if amountOut < minAmountOut {
		return 0, types.ErrSlippageLimit.Wrapf(
			"output %d below minimum %d", amountOut, minAmountOut)
	}

	amountX, amountY := amountIn, amountOut
	if !inputIsX {
		amountX, amountY = amountOut, amountIn
	}
	if err := k.recordTrade(cacheCtx, pool, amountX, amountY, now); err != nil {
		return 0, err
	}

	// Swaps never mint or burn shares, so the cross-check only fires if the
	// two ledgers were already drifting.
	if err := k.checkShareSupply(cacheCtx, pool); err != nil {
		return 0, err
	}

	if err := k.SetPool(cacheCtx, pool); err != nil {
		return 0, err
	}

	// Value moves only after every check has passed, so a failed swap never
	// touches the ledger.
	coinsIn := sdk.NewCoins(sdk.NewCoin(denomIn, math.NewIntFromUint64(amountIn)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, trader, types.ModuleName, coinsIn); err != nil {
		return 0, types.ErrNotEnoughBalance.Wrapf("swap input transfer failed: %v", err)
	}

	if amountOut > 0 {
		coinsOut := sdk.NewCoins(sdk.NewCoin(denomOut, math.NewIntFromUint64(amountOut)))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, trader, coinsOut); err != nil {
			return 0, types.ErrComputation.Wrapf("swap payout failed: %v", err)
		}
	}

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyDirection, direction),
			sdk.NewAttribute(types.AttributeKeyAmountIn, fmt.Sprintf("%d", amountIn)),
			sdk.NewAttribute(types.AttributeKeyAmountOut, fmt.Sprintf("%d", amountOut)),
		),
	)

	writeCache()

	k.metrics.SwapsTotal.WithLabelValues(fmt.Sprintf("%d", poolID), direction).Inc()
	k.metrics.SwapVolume.WithLabelValues(fmt.Sprintf("%d", poolID), denomIn).Add(float64(amountIn))

	return amountOut, nil
}
