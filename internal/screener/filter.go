package screener

import (
	"time"

	"solana-token-screener/internal/domain"
)

// Threshold defaults for the static candidate filter.
const (
	MinLiquidity        = 50_000.0
	Min24hVolume        = 50_000.0
	MarketCapMin        = 50.0
	MarketCapMax        = 1_000_000_000.0
	RecencyWindow       = 59 * time.Minute
	DefaultExplorerBase = "https://birdeye.so/token/"
)

// Thresholds are the static admission criteria for candidates.
type Thresholds struct {
	MinLiquidity  float64
	Min24hVolume  float64
	MarketCapMin  float64
	MarketCapMax  float64
	RecencyWindow time.Duration
}

// DefaultThresholds returns the standard screening thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinLiquidity:  MinLiquidity,
		Min24hVolume:  Min24hVolume,
		MarketCapMin:  MarketCapMin,
		MarketCapMax:  MarketCapMax,
		RecencyWindow: RecencyWindow,
	}
}

// Filter applies static thresholds and a recency window to a token batch.
type Filter struct {
	thresholds   Thresholds
	explorerBase string
	clock        func() time.Time
}

// NewFilter creates a Filter with the given thresholds.
func NewFilter(t Thresholds) *Filter {
	return &Filter{
		thresholds:   t,
		explorerBase: DefaultExplorerBase,
		clock:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock for deterministic recency checks.
func (f *Filter) WithClock(clock func() time.Time) *Filter {
	f.clock = clock
	return f
}

// WithExplorerBase overrides the explorer link prefix.
func (f *Filter) WithExplorerBase(base string) *Filter {
	f.explorerBase = base
	return f
}

// Filter returns the candidates passing every threshold. The recency cut-off
// is taken against the clock at call time, so the same batch can yield
// different results depending on when filtering runs.
func (f *Filter) Filter(tokens []domain.TokenSummary) []domain.FilteredCandidate {
	cutoff := f.clock().Add(-f.thresholds.RecencyWindow)

	var out []domain.FilteredCandidate
	for _, t := range tokens {
		if !domain.ValidAddress(t.Address) {
			continue
		}
		if t.Liquidity == nil || t.V24hUSD == nil {
			continue
		}
		if *t.Liquidity < f.thresholds.MinLiquidity {
			continue
		}
		if *t.V24hUSD < f.thresholds.Min24hVolume {
			continue
		}
		if t.MarketCap < f.thresholds.MarketCapMin || t.MarketCap > f.thresholds.MarketCapMax {
			continue
		}
		lastTrade := time.Unix(t.LastTradeUnixTime, 0).UTC()
		if lastTrade.Before(cutoff) {
			continue
		}
		out = append(out, domain.FilteredCandidate{
			Address:           t.Address,
			Liquidity:         *t.Liquidity,
			V24hUSD:           *t.V24hUSD,
			MarketCap:         t.MarketCap,
			V24hChangePercent: t.V24hChangePercent,
			LastTradeAt:       lastTrade,
			TokenURL:          f.explorerBase + t.Address,
		})
	}
	return out
}
