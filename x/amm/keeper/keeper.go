package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/paw-chain/amm/x/amm/types"
)

// Keeper of the amm store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper

	// authority gates pool creation, freezing, and treasury withdrawal.
	// Swaps and liquidity operations are open to any account.
	authority string

	// moduleAddressCache avoids recomputing the module account address in
	// hot paths (swaps, liquidity, fee routing).
	moduleAddressCache sdk.AccAddress

	metrics *Metrics
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		authority:          authority,
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
		metrics:            NewMetrics(),
	}
}

// GetAuthority returns the address allowed to perform admin-gated operations
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the cached module account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// Logger returns a module-scoped logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// blockNow returns the block timestamp as unix seconds. A zero header time
// maps to the sentinel 0, which suppresses all time-driven bookkeeping
// (window resets, snapshots). Tests rely on this to exercise the math
// without a clock.
func blockNow(ctx context.Context) uint64 {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	t := sdkCtx.BlockTime()
	if t.IsZero() {
		return 0
	}
	return uint64(t.Unix())
}
