package types

import (
	"fmt"
)

// GenesisState is the full exported state of the AMM module.
type GenesisState struct {
	Params     Params `json:"params"`
	NextPoolId uint64 `json:"next_pool_id"`
	Pools      []Pool `json:"pools"`
	Banks      []Bank `json:"banks"`
}

// DefaultGenesis returns the default genesis state for the AMM module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		NextPoolId: 1,
		Pools:      []Pool{},
		Banks:      []Bank{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	seenIDs := make(map[uint64]struct{}, len(gs.Pools))
	seenPairs := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", pool.Id, err)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool %d: id not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		if _, ok := seenIDs[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		seenIDs[pool.Id] = struct{}{}

		pair := PairKey(pool.DenomX, pool.DenomY)
		if _, ok := seenPairs[pair]; ok {
			return fmt.Errorf("duplicate pool for pair %s", pair)
		}
		seenPairs[pair] = struct{}{}
	}

	seenBanks := make(map[string]struct{}, len(gs.Banks))
	for _, bank := range gs.Banks {
		if err := bank.Validate(); err != nil {
			return err
		}
		if _, ok := seenBanks[bank.Denom]; ok {
			return fmt.Errorf("duplicate bank for denom %s", bank.Denom)
		}
		seenBanks[bank.Denom] = struct{}{}
	}

	return nil
}

// PairKey returns the order-normalized identity of a token pair, used to
// reject duplicate pools regardless of argument order.
func PairKey(denomA, denomB string) string {
	if denomA > denomB {
		denomA, denomB = denomB, denomA
	}
	return denomA + "/" + denomB
}
