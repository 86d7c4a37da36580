package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/amm/types"
)

// RegisterInvariants registers all AMM invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "bank-backing", BankBackingInvariant(k))
}

// AllInvariants runs all invariants of the AMM module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ReserveBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return BankBackingInvariant(k)(ctx)
	}
}

// ReserveBackingInvariant checks that the module account holds at least the
// sum of all pool reserves plus collected treasury fees per denom.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		required := make(map[string]math.Int)
		add := func(denom string, amount uint64) {
			cur, ok := required[denom]
			if !ok {
				cur = math.ZeroInt()
			}
			required[denom] = cur.Add(math.NewIntFromUint64(amount))
		}

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing", err.Error()), true
		}
		for _, pool := range pools {
			add(pool.DenomX, pool.ReserveX)
			add(pool.DenomY, pool.ReserveY)
		}

		banks, err := k.GetAllBanks(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing", err.Error()), true
		}
		for _, bank := range banks {
			add(bank.Denom, bank.Amount)
		}

		moduleAddr := k.GetModuleAddress()
		for denom, amount := range required {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(amount) {
				count++
				msg += fmt.Sprintf("denom %s: module balance %s < required %s\n",
					denom, balance.Amount, amount)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-backing",
			fmt.Sprintf("found %d under-backed denoms\n%s", count, msg),
		), broken
	}
}

// ShareSupplyInvariant checks every pool's internal share counter against
// the supply of its share denom in the value ledger.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "share-supply", err.Error()), true
		}
		for _, pool := range pools {
			supply := k.bankKeeper.GetSupply(ctx, pool.ShareDenom())
			if !supply.Amount.Equal(math.NewIntFromUint64(pool.LpSupply)) {
				count++
				msg += fmt.Sprintf("pool %d: ledger supply %s != pool supply %d\n",
					pool.Id, supply.Amount, pool.LpSupply)
			}

			if pool.LpSupply > 0 && (pool.ReserveX == 0 || pool.ReserveY == 0) {
				count++
				msg += fmt.Sprintf("pool %d: shares outstanding with an empty reserve\n", pool.Id)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("found %d pools with share accounting drift\n%s", count, msg),
		), broken
	}
}

// BankBackingInvariant checks that no treasury bank records a negative or
// malformed balance entry.
func BankBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		banks, err := k.GetAllBanks(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "bank-backing", err.Error()), true
		}
		for _, bank := range banks {
			if err := bank.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("bank %s: %v\n", bank.Denom, err)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "bank-backing",
			fmt.Sprintf("found %d malformed banks\n%s", count, msg),
		), broken
	}
}
