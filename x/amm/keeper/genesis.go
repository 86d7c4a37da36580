package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/amm/x/amm/types"
)

// InitGenesis imports the module state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: invalid genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.SetNextPoolID(ctx, genState.NextPoolId)

	for i := range genState.Pools {
		pool := genState.Pools[i]
		if err := k.SetPool(ctx, &pool); err != nil {
			return err
		}
		k.setPoolByDenoms(ctx, pool.DenomX, pool.DenomY, pool.Id)
	}

	for i := range genState.Banks {
		bank := genState.Banks[i]
		if err := k.SetBank(ctx, &bank); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis exports the module state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}

	banks, err := k.GetAllBanks(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Params:     params,
		NextPoolId: k.GetNextPoolID(ctx),
		Pools:      pools,
		Banks:      banks,
	}, nil
}
