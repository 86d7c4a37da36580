package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/types"
)

func TestGenesisStateValidate(t *testing.T) {
	tests := []struct {
		name     string
		genState types.GenesisState
		valid    bool
	}{
		{
			name:     "default",
			genState: *types.DefaultGenesis(),
			valid:    true,
		},
		{
			name: "populated",
			genState: types.GenesisState{
				Params:     types.DefaultParams(),
				NextPoolId: 3,
				Pools: []types.Pool{
					{Id: 1, DenomX: "upaw", DenomY: "uusdt"},
					{Id: 2, DenomX: "upaw", DenomY: "uatom"},
				},
				Banks: []types.Bank{
					{Denom: "upaw", Amount: 100},
				},
			},
			valid: true,
		},
		{
			name: "zero next pool id",
			genState: types.GenesisState{
				Params: types.DefaultParams(),
			},
			valid: false,
		},
		{
			name: "bad params",
			genState: types.GenesisState{
				Params:     types.Params{MaxPools: 0, MinInitialDeposit: 1},
				NextPoolId: 1,
			},
			valid: false,
		},
		{
			name: "duplicate pool id",
			genState: types.GenesisState{
				Params:     types.DefaultParams(),
				NextPoolId: 3,
				Pools: []types.Pool{
					{Id: 1, DenomX: "upaw", DenomY: "uusdt"},
					{Id: 1, DenomX: "upaw", DenomY: "uatom"},
				},
			},
			valid: false,
		},
		{
			name: "duplicate pair in reverse order",
			genState: types.GenesisState{
				Params:     types.DefaultParams(),
				NextPoolId: 3,
				Pools: []types.Pool{
					{Id: 1, DenomX: "upaw", DenomY: "uusdt"},
					{Id: 2, DenomX: "uusdt", DenomY: "upaw"},
				},
			},
			valid: false,
		},
		{
			name: "pool id not below counter",
			genState: types.GenesisState{
				Params:     types.DefaultParams(),
				NextPoolId: 1,
				Pools: []types.Pool{
					{Id: 1, DenomX: "upaw", DenomY: "uusdt"},
				},
			},
			valid: false,
		},
		{
			name: "invalid pool",
			genState: types.GenesisState{
				Params:     types.DefaultParams(),
				NextPoolId: 2,
				Pools: []types.Pool{
					{Id: 1, DenomX: "upaw", DenomY: "upaw"},
				},
			},
			valid: false,
		},
		{
			name: "duplicate bank",
			genState: types.GenesisState{
				Params:     types.DefaultParams(),
				NextPoolId: 1,
				Banks: []types.Bank{
					{Denom: "upaw"},
					{Denom: "upaw"},
				},
			},
			valid: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}
}

func TestPairKey(t *testing.T) {
	require.Equal(t, "uatom/upaw", types.PairKey("upaw", "uatom"))
	require.Equal(t, "uatom/upaw", types.PairKey("uatom", "upaw"))
	require.NotEqual(t, types.PairKey("a", "bc"), types.PairKey("ab", "c"))
}
