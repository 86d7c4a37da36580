package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/paw-chain/amm/x/amm/types"
)

// Flags for pool creation.
const (
	FlagPoolType        = "pool-type"
	FlagFeeDirection    = "fee-direction"
	FlagAdminFeeBps     = "admin-fee-bps"
	FlagLpFeeBps        = "lp-fee-bps"
	FlagIncentiveFeeBps = "incentive-fee-bps"
	FlagConnectFeeBps   = "connect-fee-bps"
	FlagWithdrawFeeBps  = "withdraw-fee-bps"
	FlagAmp             = "amp"
	FlagDecimalsX       = "decimals-x"
	FlagDecimalsY       = "decimals-y"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreatePool(),
		CmdSwap(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdFreezePool(),
		CmdWithdrawTreasury(),
	)

	return ammTxCmd
}

// CmdCreatePool returns a CLI command handler for creating a liquidity pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [denom-x] [denom-y]",
		Short: "Create a new liquidity pool (authority only)",
		Long: `Create an empty liquidity pool for a token pair. The pool is funded by
the first add-liquidity call. Fee rates are basis points out of 10000.

Example:
  $ pawd tx amm create-pool upaw uusdt --lp-fee-bps 30 --admin-fee-bps 10 --from authority`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			cfg, err := poolConfigFromFlags(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreatePool(clientCtx.GetFromAddress().String(), args[0], args[1], cfg)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Uint32(FlagPoolType, 0, "pool type: 0 = standard, 1 = stable-swap")
	cmd.Flags().Uint32(FlagFeeDirection, 0, "fee direction: 0 = collect on X, 1 = collect on Y")
	cmd.Flags().Uint32(FlagAdminFeeBps, 0, "admin fee in bps")
	cmd.Flags().Uint32(FlagLpFeeBps, 0, "LP fee in bps")
	cmd.Flags().Uint32(FlagIncentiveFeeBps, 0, "incentive fee in bps")
	cmd.Flags().Uint32(FlagConnectFeeBps, 0, "connect fee in bps")
	cmd.Flags().Uint32(FlagWithdrawFeeBps, 0, "withdraw fee in bps")
	cmd.Flags().Uint64(FlagAmp, 0, "amplification coefficient (stable-swap pools)")
	cmd.Flags().Uint32(FlagDecimalsX, 0, "decimals of denom-x (stable-swap pools)")
	cmd.Flags().Uint32(FlagDecimalsY, 0, "decimals of denom-y (stable-swap pools)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func poolConfigFromFlags(cmd *cobra.Command) (types.PoolConfig, error) {
	var cfg types.PoolConfig

	poolType, err := cmd.Flags().GetUint32(FlagPoolType)
	if err != nil {
		return cfg, err
	}
	feeDirection, err := cmd.Flags().GetUint32(FlagFeeDirection)
	if err != nil {
		return cfg, err
	}
	cfg.PoolType = types.PoolType(poolType)
	cfg.FeeDirection = types.FeeDirection(feeDirection)

	if cfg.AdminFeeBps, err = cmd.Flags().GetUint32(FlagAdminFeeBps); err != nil {
		return cfg, err
	}
	if cfg.LpFeeBps, err = cmd.Flags().GetUint32(FlagLpFeeBps); err != nil {
		return cfg, err
	}
	if cfg.IncentiveFeeBps, err = cmd.Flags().GetUint32(FlagIncentiveFeeBps); err != nil {
		return cfg, err
	}
	if cfg.ConnectFeeBps, err = cmd.Flags().GetUint32(FlagConnectFeeBps); err != nil {
		return cfg, err
	}
	if cfg.WithdrawFeeBps, err = cmd.Flags().GetUint32(FlagWithdrawFeeBps); err != nil {
		return cfg, err
	}
	if cfg.Amp, err = cmd.Flags().GetUint64(FlagAmp); err != nil {
		return cfg, err
	}
	if cfg.DecimalsX, err = cmd.Flags().GetUint32(FlagDecimalsX); err != nil {
		return cfg, err
	}
	if cfg.DecimalsY, err = cmd.Flags().GetUint32(FlagDecimalsY); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// CmdSwap returns a CLI command handler for swapping against a pool
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [denom-in] [amount-in] [min-amount-out]",
		Short: "Swap one pool token for the other",
		Long: `Swap amount-in of denom-in against the pool. The transaction fails with
a slippage error if the post-fee output falls below min-amount-out.

Example:
  $ pawd tx amm swap 1 upaw 1000000 990000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			amountIn, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount-in: %w", err)
			}
			minAmountOut, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid min-amount-out: %w", err)
			}

			msg := types.NewMsgSwap(clientCtx.GetFromAddress().String(), poolID, args[1], amountIn, minAmountOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for adding liquidity to a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [amount-x] [amount-y]",
		Short: "Deposit both pool tokens for LP shares",
		Long: `Deposit both tokens into a pool in exchange for LP shares. Unbalanced
deposits mint shares at the smaller of the two reserve ratios; the surplus
side stays in the pool.

Example:
  $ pawd tx amm add-liquidity 1 1000000 2000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			amountX, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount-x: %w", err)
			}
			amountY, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount-y: %w", err)
			}

			msg := types.NewMsgAddLiquidity(clientCtx.GetFromAddress().String(), poolID, amountX, amountY)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for removing liquidity
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [shares]",
		Short: "Burn LP shares for both pool tokens",
		Long: `Burn LP shares for a proportional cut of both reserves, minus the
pool's withdraw fee. Works even while the pool is frozen.

Example:
  $ pawd tx amm remove-liquidity 1 500 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			shares, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid shares: %w", err)
			}

			msg := types.NewMsgRemoveLiquidity(clientCtx.GetFromAddress().String(), poolID, shares)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFreezePool returns a CLI command handler for freezing or unfreezing a pool
func CmdFreezePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freeze-pool [pool-id] [frozen]",
		Short: "Freeze or unfreeze a pool (authority only)",
		Long: `Set a pool's freeze flag. A frozen pool rejects swaps and deposits
but still allows withdrawals.

Example:
  $ pawd tx amm freeze-pool 1 true --from authority`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			frozen, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid frozen flag: %w", err)
			}

			msg := types.NewMsgFreezePool(clientCtx.GetFromAddress().String(), poolID, frozen)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawTreasury returns a CLI command handler for treasury payouts
func CmdWithdrawTreasury() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-treasury [recipient] [denom] [amount]",
		Short: "Pay out collected treasury fees (authority only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			msg := types.NewMsgWithdrawTreasury(clientCtx.GetFromAddress().String(), args[0], args[1], amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
