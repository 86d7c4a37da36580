package keeper

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/amm/x/amm/types"
)

// Arithmetic helpers for reserve and share math. Every fee and share
// computation multiplies two 64-bit quantities and divides by a third, so
// intermediates are widened through math.Int and the result is checked back
// into the uint64 range. Division always floors, which keeps rounding on the
// pool's side.

// MulDiv computes floor(a * b / c) with a wide intermediate. Returns
// ErrComputation on division by zero and ErrOperationOverflow when the
// result does not fit in 64 bits.
func MulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, types.ErrComputation.Wrap("division by zero")
	}

	result := math.NewIntFromUint64(a).
		Mul(math.NewIntFromUint64(b)).
		Quo(math.NewIntFromUint64(c))

	if !result.IsUint64() {
		return 0, types.ErrOperationOverflow.Wrapf(
			"%d * %d / %d exceeds uint64 range", a, b, c)
	}
	return result.Uint64(), nil
}

// AddU64 adds two uint64 values with overflow checking
func AddU64(a, b uint64) (uint64, error) {
	if a > ^uint64(0)-b {
		return 0, types.ErrOperationOverflow.Wrapf("%d + %d overflows uint64", a, b)
	}
	return a + b, nil
}

// SubU64 subtracts b from a with underflow checking
func SubU64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, types.ErrOperationOverflow.Wrapf("%d - %d underflows", a, b)
	}
	return a - b, nil
}

// MulU64 multiplies two uint64 values with overflow checking
func MulU64(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	result := a * b
	if result/a != b {
		return 0, types.ErrOperationOverflow.Wrapf("%d * %d overflows uint64", a, b)
	}
	return result, nil
}

// mulWide returns a * b as a wide integer, used for constant-product
// comparisons that intentionally exceed the 64-bit range.
func mulWide(a, b uint64) math.Int {
	return math.NewIntFromUint64(a).Mul(math.NewIntFromUint64(b))
}
