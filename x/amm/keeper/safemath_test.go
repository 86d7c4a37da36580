package keeper_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/keeper"
	"github.com/paw-chain/amm/x/amm/types"
)

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c uint64
		want    uint64
		wantErr error
	}{
		{name: "exact", a: 10, b: 20, c: 4, want: 50},
		{name: "floors", a: 10, b: 10, c: 3, want: 33},
		{name: "zero numerator", a: 0, b: 100, c: 7, want: 0},
		{name: "wide intermediate", a: math.MaxUint64, b: 2, c: 4, want: math.MaxUint64 / 2},
		{name: "result overflows", a: math.MaxUint64, b: 2, c: 1, wantErr: types.ErrOperationOverflow},
		{name: "division by zero", a: 1, b: 1, c: 0, wantErr: types.ErrComputation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := keeper.MulDiv(tc.a, tc.b, tc.c)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMulDivIsPure(t *testing.T) {
	first, err := keeper.MulDiv(123456789, 987654321, 1000003)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := keeper.MulDiv(123456789, 987654321, 1000003)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestAddU64(t *testing.T) {
	sum, err := keeper.AddU64(math.MaxUint64-1, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), sum)

	_, err = keeper.AddU64(math.MaxUint64, 1)
	require.ErrorIs(t, err, types.ErrOperationOverflow)
}

func TestSubU64(t *testing.T) {
	diff, err := keeper.SubU64(10, 10)
	require.NoError(t, err)
	require.Zero(t, diff)

	_, err = keeper.SubU64(10, 11)
	require.ErrorIs(t, err, types.ErrOperationOverflow)
}

func TestMulU64(t *testing.T) {
	product, err := keeper.MulU64(1<<32, 1<<31)
	require.NoError(t, err)
	require.Equal(t, uint64(1)<<63, product)

	_, err = keeper.MulU64(1<<32, 1<<32)
	require.ErrorIs(t, err, types.ErrOperationOverflow)

	product, err = keeper.MulU64(0, math.MaxUint64)
	require.NoError(t, err)
	require.Zero(t, product)
}
