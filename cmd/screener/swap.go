package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"solana-token-screener/internal/config"
	"solana-token-screener/internal/domain"
	"solana-token-screener/internal/jupiter"
	"solana-token-screener/internal/solana"
	"solana-token-screener/internal/swap"
	"solana-token-screener/internal/wallet"
)

const lamportsPerSOL = 9 // decimal exponent

func newSwapCmd() *cobra.Command {
	var slippageBps int

	cmd := &cobra.Command{
		Use:   "swap <output-mint> <amount-sol>",
		Short: "Swap wrapped SOL into the given token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputMint := args[0]
			if !domain.ValidAddress(outputMint) {
				return fmt.Errorf("invalid output mint %q", outputMint)
			}

			lamports, err := parseSOLAmount(args[1])
			if err != nil {
				return err
			}

			cfg := config.Load()
			if err := cfg.RequirePrivateKey(); err != nil {
				return err
			}
			key, err := wallet.FromBase58(cfg.PrivateKey)
			if err != nil {
				return fmt.Errorf("load signing key: %w", err)
			}

			var apiOpts []jupiter.ClientOption
			if cfg.SwapAPIURL != "" {
				apiOpts = append(apiOpts, jupiter.WithBaseURL(cfg.SwapAPIURL))
			}
			endpoint := solana.DefaultEndpoint
			if cfg.RPCURL != "" {
				endpoint = cfg.RPCURL
			}

			executor := swap.NewExecutor(
				jupiter.NewClient(apiOpts...),
				solana.NewHTTPClient(endpoint),
				key,
				swap.WithSlippageBps(slippageBps),
				swap.WithLogger(log.Logger),
			)

			signature, err := executor.ExecuteSwap(cmd.Context(), outputMint, lamports)
			if err != nil {
				return err
			}

			log.Info().Str("signature", signature).Msg("swap submitted")
			fmt.Printf("https://solscan.io/tx/%s\n", signature)
			return nil
		},
	}

	cmd.Flags().IntVar(&slippageBps, "slippage-bps", swap.DefaultSlippageBps, "slippage tolerance in basis points")
	return cmd
}

// parseSOLAmount converts a decimal SOL amount into lamports, rejecting
// sub-lamport precision and non-positive values.
func parseSOLAmount(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	lamports := d.Shift(lamportsPerSOL)
	if !lamports.IsInteger() {
		return 0, fmt.Errorf("amount %s has sub-lamport precision", s)
	}
	if lamports.Sign() <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %s", s)
	}
	if !lamports.BigInt().IsUint64() {
		return 0, fmt.Errorf("amount %s overflows lamports", s)
	}
	return lamports.BigInt().Uint64(), nil
}
