package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/amm/types"
)

// recordTrade folds one settled trade into the pool's accounting. Lifetime
// totals always accumulate and abort the trade on overflow rather than
// wrapping. The 24h window and the reserve snapshot run on independent
// clocks and only when a time source is available (now > 0):
//   - window: reset and re-anchor before accumulating when the window has
//     lapsed, so a trade after a quiet day starts a fresh window containing
//     only itself
//   - snapshot: emit current reserves at most once per interval
func (k Keeper) recordTrade(ctx context.Context, pool *types.Pool, amountX, amountY, now uint64) error {
	totalX, err := AddU64(pool.TotalTradeX, amountX)
	if err != nil {
		return err
	}
	totalY, err := AddU64(pool.TotalTradeY, amountY)
	if err != nil {
		return err
	}
	pool.TotalTradeX = totalX
	pool.TotalTradeY = totalY

	if now == 0 {
		return nil
	}

	if now > pool.WindowStartTime+types.TradeWindowSeconds {
		pool.WindowStartTime = now
		pool.TradeX24h = 0
		pool.TradeY24h = 0
	}

	windowX, err := AddU64(pool.TradeX24h, amountX)
	if err != nil {
		return err
	}
	windowY, err := AddU64(pool.TradeY24h, amountY)
	if err != nil {
		return err
	}
	pool.TradeX24h = windowX
	pool.TradeY24h = windowY

	pool.LastTradeTime = now

	if now > pool.SnapshotLastTime+types.ReserveSnapshotInterval {
		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeReserveSnapshot,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
				sdk.NewAttribute(types.AttributeKeyReserveX, fmt.Sprintf("%d", pool.ReserveX)),
				sdk.NewAttribute(types.AttributeKeyReserveY, fmt.Sprintf("%d", pool.ReserveY)),
			),
		)
		pool.SnapshotLastTime = now
	}

	return nil
}
