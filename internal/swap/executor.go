// Package swap executes single-shot on-chain swaps via the quote/build API.
package swap

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"solana-token-screener/internal/solana"
	"solana-token-screener/internal/wallet"
)

// Swap constants.
const (
	// WSOLMint is the native wrapped token the executor always swaps from.
	WSOLMint = "So11111111111111111111111111111111111111112"
	// DefaultSlippageBps is the tolerated price movement in basis points.
	DefaultSlippageBps = 50
)

// QuoteAPI is the quote/build surface the executor needs.
type QuoteAPI interface {
	Quote(ctx context.Context, inputMint, outputMint string, amount uint64, slippageBps int) (json.RawMessage, error)
	SwapTransaction(ctx context.Context, quote json.RawMessage, userPublicKey string) (string, error)
}

// Submitter submits raw signed transactions to the chain.
type Submitter interface {
	SendTransaction(ctx context.Context, txBase64 string, skipPreflight bool) (string, error)
}

// Executor performs the quote, build, sign, submit sequence for one trade.
// Every failure propagates immediately: this flow moves funds and must not
// silently retry.
type Executor struct {
	api         QuoteAPI
	rpc         Submitter
	key         *wallet.Keypair
	inputMint   string
	slippageBps int
	log         zerolog.Logger
}

// ExecutorOption configures Executor.
type ExecutorOption func(*Executor)

// WithSlippageBps overrides the slippage tolerance.
func WithSlippageBps(bps int) ExecutorOption {
	return func(e *Executor) {
		e.slippageBps = bps
	}
}

// WithInputMint overrides the quote asset.
func WithInputMint(mint string) ExecutorOption {
	return func(e *Executor) {
		e.inputMint = mint
	}
}

// WithLogger sets the executor's logger.
func WithLogger(log zerolog.Logger) ExecutorOption {
	return func(e *Executor) {
		e.log = log
	}
}

// NewExecutor creates an Executor signing with key.
func NewExecutor(api QuoteAPI, rpc Submitter, key *wallet.Keypair, opts ...ExecutorOption) *Executor {
	e := &Executor{
		api:         api,
		rpc:         rpc,
		key:         key,
		inputMint:   WSOLMint,
		slippageBps: DefaultSlippageBps,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecuteSwap swaps amountLamports of the quote asset into outputMint and
// returns the network-assigned submission signature. Preflight simulation is
// disabled on submission.
func (e *Executor) ExecuteSwap(ctx context.Context, outputMint string, amountLamports uint64) (string, error) {
	quote, err := e.api.Quote(ctx, e.inputMint, outputMint, amountLamports, e.slippageBps)
	if err != nil {
		return "", fmt.Errorf("get quote: %w", err)
	}

	payload, err := e.api.SwapTransaction(ctx, quote, e.key.PublicKey())
	if err != nil {
		return "", fmt.Errorf("build transaction: %w", err)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode transaction payload: %w", err)
	}

	tx, err := solana.ParseTransaction(raw)
	if err != nil {
		return "", fmt.Errorf("deserialize transaction: %w", err)
	}

	if err := tx.Sign(e.key); err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	signed := base64.StdEncoding.EncodeToString(tx.Serialize())

	e.log.Info().Str("output_mint", outputMint).Uint64("amount_lamports", amountLamports).
		Int("slippage_bps", e.slippageBps).Msg("submitting swap")

	signature, err := e.rpc.SendTransaction(ctx, signed, true)
	if err != nil {
		return "", fmt.Errorf("submit transaction: %w", err)
	}
	return signature, nil
}
