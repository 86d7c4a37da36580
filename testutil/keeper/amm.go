package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/keeper"
	"github.com/paw-chain/amm/x/amm/types"
)

// Authority is the admin address used by test keepers.
var Authority = authtypes.NewModuleAddress("gov").String()

// MockBankKeeper is an in-memory value ledger. It conserves value the same
// way the real bank keeper does: balances only move, and supply only changes
// through mint and burn.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
}

// NewMockBankKeeper creates an empty in-memory ledger
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances: make(map[string]sdk.Coins),
	}
}

func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := m.balances[fromAddr.String()]
	newFrom, neg := from.SafeSub(amt...)
	if neg {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", fromAddr, from, amt)
	}
	m.balances[fromAddr.String()] = newFrom
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.SendCoins(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (m *MockBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName).String()
	m.balances[addr] = m.balances[addr].Add(amt...)
	m.supply = m.supply.Add(amt...)
	return nil
}

func (m *MockBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName).String()
	newBalance, neg := m.balances[addr].SafeSub(amt...)
	if neg {
		return fmt.Errorf("burn exceeds module balance: %s", amt)
	}
	newSupply, neg := m.supply.SafeSub(amt...)
	if neg {
		return fmt.Errorf("burn exceeds supply: %s", amt)
	}
	m.balances[addr] = newBalance
	m.supply = newSupply
	return nil
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.supply.AmountOf(denom))
}

// FundAccount mints fresh coins to an account, registering the denoms in the
// supply as a side effect.
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
	m.supply = m.supply.Add(amt...)
}

var _ types.BankKeeper = (*MockBankKeeper)(nil)

// AmmKeeper creates a test keeper for the AMM module backed by an in-memory
// store and ledger. The returned context carries a zero block time, so
// time-driven bookkeeping stays off until a test sets one.
func AmmKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *MockBankKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	types.RegisterLegacyAminoCodec(cdc)

	bankKeeper := NewMockBankKeeper()

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bankKeeper,
		Authority,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, bankKeeper
}
