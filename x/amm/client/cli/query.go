package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/paw-chain/amm/x/amm/keeper"
	"github.com/paw-chain/amm/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdQueryPool(),
		GetCmdQueryBank(),
	)

	return ammQueryCmd
}

// queryStore fetches one raw value from the module's KVStore.
func queryStore(clientCtx client.Context, key []byte) ([]byte, error) {
	res, _, err := clientCtx.QueryWithData(
		fmt.Sprintf("store/%s/key", types.StoreKey), key)
	return res, err
}

// GetCmdQueryPool returns the command to query a pool by ID
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a liquidity pool by ID",
		Long: `Query the full state of a liquidity pool: reserves, share supply, fee
configuration and trade statistics.

Example:
  $ pawd query amm pool 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			bz, err := queryStore(clientCtx, keeper.PoolKey(poolID))
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return fmt.Errorf("pool %d not found", poolID)
			}

			var pool types.Pool
			if err := types.ModuleCdc.Unmarshal(bz, &pool); err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryBank returns the command to query a treasury fee bank
func GetCmdQueryBank() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasury [denom]",
		Short: "Query collected treasury fees for a denom",
		Long: `Query the treasury fee bank for a denom: the accumulated fee balance
and the last snapshot time.

Example:
  $ pawd query amm treasury upaw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryStore(clientCtx, keeper.BankKey(args[0]))
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return fmt.Errorf("no treasury bank for denom %s", args[0])
			}

			var bank types.Bank
			if err := types.ModuleCdc.Unmarshal(bz, &bank); err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(bank)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
