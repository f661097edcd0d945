package screener

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"solana-token-screener/internal/birdeye"
	"solana-token-screener/internal/domain"
)

// Enrichment acceptance thresholds.
const (
	MaxSellPercentage = 50.0
	MinTradesLastHour = 100
	MinUniqueWallets  = 100
	MinView24h        = 100
	DefaultVenueBase  = "https://dexscreener.com/solana/"
)

// OutcomeStatus tags an enrichment outcome.
type OutcomeStatus int

const (
	// OutcomeAccepted carries a result that passed every threshold.
	OutcomeAccepted OutcomeStatus = iota
	// OutcomeRejected is final: the address failed a threshold.
	OutcomeRejected
	// OutcomeUpstreamError is transient: the caller may retry.
	OutcomeUpstreamError
)

// RejectReason names the first threshold an address failed.
type RejectReason string

const (
	RejectSellPressure RejectReason = "sell-pressure"
	RejectLowActivity  RejectReason = "low-activity"
	RejectLowWallets   RejectReason = "low-wallets"
	RejectLowViews     RejectReason = "low-views"
	RejectLowLiquidity RejectReason = "low-liquidity"
)

// Outcome is the tagged result of enriching one address. Exactly one of
// Result, Reason and Err is meaningful, selected by Status.
type Outcome struct {
	Status OutcomeStatus
	Result *domain.OverviewResult
	Reason RejectReason
	Err    error
}

// Accepted returns an accepted outcome.
func Accepted(r *domain.OverviewResult) Outcome {
	return Outcome{Status: OutcomeAccepted, Result: r}
}

// Rejected returns a final rejection outcome.
func Rejected(reason RejectReason) Outcome {
	return Outcome{Status: OutcomeRejected, Reason: reason}
}

// UpstreamError returns a retryable outcome.
func UpstreamError(err error) Outcome {
	return Outcome{Status: OutcomeUpstreamError, Err: err}
}

// OverviewAPI is the slice of the index API the enricher needs.
type OverviewAPI interface {
	TokenOverview(ctx context.Context, address string) (*birdeye.Overview, error)
}

// Enricher fetches short-window statistics for single addresses and applies
// the acceptance thresholds.
type Enricher struct {
	api        OverviewAPI
	thresholds EnrichThresholds
	venueBase  string
	log        zerolog.Logger
}

// EnrichThresholds are the acceptance criteria for enrichment.
type EnrichThresholds struct {
	MaxSellPercentage float64
	MinTradesLastHour int64
	MinUniqueWallets  int64
	MinView24h        int64
	MinLiquidity      float64
}

// DefaultEnrichThresholds returns the standard acceptance thresholds.
func DefaultEnrichThresholds() EnrichThresholds {
	return EnrichThresholds{
		MaxSellPercentage: MaxSellPercentage,
		MinTradesLastHour: MinTradesLastHour,
		MinUniqueWallets:  MinUniqueWallets,
		MinView24h:        MinView24h,
		MinLiquidity:      MinLiquidity,
	}
}

// EnricherOption configures Enricher.
type EnricherOption func(*Enricher)

// WithEnrichThresholds overrides the acceptance thresholds.
func WithEnrichThresholds(t EnrichThresholds) EnricherOption {
	return func(e *Enricher) {
		e.thresholds = t
	}
}

// WithVenueBase overrides the trading-venue link prefix.
func WithVenueBase(base string) EnricherOption {
	return func(e *Enricher) {
		e.venueBase = base
	}
}

// WithEnricherLogger sets the enricher's logger.
func WithEnricherLogger(log zerolog.Logger) EnricherOption {
	return func(e *Enricher) {
		e.log = log
	}
}

// NewEnricher creates an Enricher over api.
func NewEnricher(api OverviewAPI, opts ...EnricherOption) *Enricher {
	e := &Enricher{
		api:        api,
		thresholds: DefaultEnrichThresholds(),
		venueBase:  DefaultVenueBase,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich fetches overview statistics for address and evaluates the
// acceptance thresholds in order, tagging the first failure. Upstream
// failures are never retried here; retry is the batch processor's job.
func (e *Enricher) Enrich(ctx context.Context, address string) Outcome {
	ov, err := e.api.TokenOverview(ctx, address)
	if err != nil {
		var statusErr *birdeye.StatusError
		if errors.As(err, &statusErr) {
			e.log.Warn().Str("address", address).Int("status", statusErr.Code).
				Msg("token overview fetch failed")
		}
		return UpstreamError(err)
	}

	trade1h := ov.Buy1h + ov.Sell1h
	var buyPct, sellPct float64
	if trade1h != 0 {
		buyPct = float64(ov.Buy1h) / float64(trade1h) * 100
		sellPct = float64(ov.Sell1h) / float64(trade1h) * 100
	}

	switch {
	case sellPct > e.thresholds.MaxSellPercentage:
		return Rejected(RejectSellPressure)
	case trade1h < e.thresholds.MinTradesLastHour:
		return Rejected(RejectLowActivity)
	case ov.UniqueWallet24h < e.thresholds.MinUniqueWallets:
		return Rejected(RejectLowWallets)
	case ov.View24h < e.thresholds.MinView24h:
		return Rejected(RejectLowViews)
	case ov.Liquidity < e.thresholds.MinLiquidity:
		return Rejected(RejectLowLiquidity)
	}

	var description string
	if ov.Extensions != nil {
		description = ov.Extensions.Description
	}

	return Accepted(&domain.OverviewResult{
		Address:        address,
		Buy1h:          ov.Buy1h,
		Sell1h:         ov.Sell1h,
		Trade1h:        trade1h,
		BuyPercentage:  buyPct,
		SellPercentage: sellPct,
		Liquidity:      ov.Liquidity,
		Links:          ExtractLinks(description),
		TradeURL:       e.venueBase + address,
	})
}
