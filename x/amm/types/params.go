package types

import (
	"fmt"
)

// Params are module-level creation knobs. None of them are consulted by the
// pricing or share math; they only bound what pools may be created.
type Params struct {
	// MaxPools caps the number of pools that may exist.
	MaxPools uint64 `json:"max_pools"`

	// MinInitialDeposit is the minimum per-token amount for the bootstrap
	// deposit into an empty pool. Guards against dust-sized pools.
	MinInitialDeposit uint64 `json:"min_initial_deposit"`
}

// DefaultParams returns a default set of parameters.
func DefaultParams() Params {
	return Params{
		MaxPools:          1000,
		MinInitialDeposit: 1,
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.MaxPools == 0 {
		return fmt.Errorf("max pools must be positive")
	}
	if p.MinInitialDeposit == 0 {
		return fmt.Errorf("min initial deposit must be positive")
	}
	return nil
}
