package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/amm/types"
)

// ExtractFee splits amount into the portion kept by the caller and the fee
// portion at feeBps basis points. The fee floors, so the remainder rounds up
// toward the payer and small amounts can carry a zero fee. Pure; never fails
// for rates validated at pool creation.
func ExtractFee(amount uint64, feeBps uint32) (remaining, fee uint64) {
	// amount * feeBps fits in 128 bits and feeBps < 10000, so the floored
	// quotient is always below amount.
	fee = math.NewIntFromUint64(amount).
		MulRaw(int64(feeBps)).
		QuoRaw(types.BpsDenominator).
		Uint64()
	return amount - fee, fee
}

// GetBank returns the treasury fee bank for a denom, creating a zeroed one
// if it has never collected.
func (k Keeper) GetBank(ctx context.Context, denom string) (*types.Bank, error) {
	store := k.getStore(ctx)
	bz := store.Get(BankKey(denom))
	if bz == nil {
		bank := types.NewBank(denom)
		return &bank, nil
	}

	var bank types.Bank
	if err := k.cdc.Unmarshal(bz, &bank); err != nil {
		return nil, fmt.Errorf("GetBank: unmarshal bank %s: %w", denom, err)
	}
	return &bank, nil
}

// SetBank saves a treasury fee bank to the store
func (k Keeper) SetBank(ctx context.Context, bank *types.Bank) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(bank)
	if err != nil {
		return fmt.Errorf("SetBank: marshal bank %s: %w", bank.Denom, err)
	}
	store.Set(BankKey(bank.Denom), bz)
	return nil
}

// ensureBank materializes an empty bank entry for a denom if absent, so the
// bank exists from pool creation onward.
func (k Keeper) ensureBank(ctx context.Context, denom string) {
	store := k.getStore(ctx)
	if store.Has(BankKey(denom)) {
		return
	}
	bank := types.NewBank(denom)
	_ = k.SetBank(ctx, &bank)
}

// IterateBanks iterates over all treasury fee banks
func (k Keeper) IterateBanks(ctx context.Context, cb func(bank types.Bank) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, BankKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var bank types.Bank
		if err := k.cdc.Unmarshal(iterator.Value(), &bank); err != nil {
			return fmt.Errorf("IterateBanks: unmarshal bank: %w", err)
		}
		if cb(bank) {
			break
		}
	}
	return nil
}

// GetAllBanks returns every treasury fee bank
func (k Keeper) GetAllBanks(ctx context.Context) ([]types.Bank, error) {
	var banks []types.Bank
	err := k.IterateBanks(ctx, func(bank types.Bank) bool {
		banks = append(banks, bank)
		return false
	})
	return banks, err
}

// routeToTreasury extracts feeBps of amount into the denom's bank and
// returns the remainder. The tokens themselves stay in the module account;
// the bank entry records how much of that balance belongs to the treasury.
// When now is positive and the bank's snapshot interval has elapsed, a
// balance snapshot event is emitted and the snapshot clock advances. A now
// of 0 means no time source and suppresses the snapshot entirely.
func (k Keeper) routeToTreasury(ctx context.Context, denom string, amount uint64, feeBps uint32, now uint64) (uint64, error) {
	remaining, fee := ExtractFee(amount, feeBps)
	if fee == 0 {
		return remaining, nil
	}

	bank, err := k.GetBank(ctx, denom)
	if err != nil {
		return 0, err
	}

	newAmount, err := AddU64(bank.Amount, fee)
	if err != nil {
		return 0, err
	}
	bank.Amount = newAmount

	if now > 0 && now > bank.LastSnapshotTime+types.BankSnapshotInterval {
		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBankSnapshot,
				sdk.NewAttribute(types.AttributeKeyDenom, denom),
				sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", bank.Amount)),
			),
		)
		bank.LastSnapshotTime = now
	}

	if err := k.SetBank(ctx, bank); err != nil {
		return 0, err
	}

	k.metrics.TreasuryFeesCollected.WithLabelValues(denom).Add(float64(fee))

	return remaining, nil
}

// WithdrawTreasury pays accumulated treasury fees out of the module account.
// Authority-gated; state changes and the transfer commit atomically.
func (k Keeper) WithdrawTreasury(ctx context.Context, authority string, recipient sdk.AccAddress, denom string, amount uint64) error {
	if authority != k.authority {
		return types.ErrPermissionDenied.Wrapf(
			"invalid authority; expected %s, got %s", k.authority, authority)
	}
	if amount == 0 {
		return types.ErrInvalidParameter.Wrap("withdrawal amount must be positive")
	}

	bank, err := k.GetBank(ctx, denom)
	if err != nil {
		return err
	}
	if amount > bank.Amount {
		return types.ErrNotEnoughBalance.Wrapf(
			"withdrawal %d exceeds collected fees %d for %s", amount, bank.Amount, denom)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	bank.Amount -= amount
	if err := k.SetBank(cacheCtx, bank); err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, math.NewIntFromUint64(amount)))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, recipient, coins); err != nil {
		return types.ErrNotEnoughBalance.Wrapf("treasury payout failed: %v", err)
	}

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTreasuryClaim,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", amount)),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
		),
	)

	writeCache()

	return nil
}
