package screener

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"solana-token-screener/internal/domain"
)

// Default fetch pacing.
const (
	DefaultPageSize      = 50
	DefaultPageThrottle  = 100 * time.Millisecond // between successful pages
	defaultThrottleBurst = 1
)

// TokenListAPI is the slice of the index API the fetcher needs.
type TokenListAPI interface {
	TokenList(ctx context.Context, offset, limit int) ([]domain.TokenSummary, error)
}

// Fetcher pages through the token list until a target record count is reached.
type Fetcher struct {
	api      TokenListAPI
	limiter  *rate.Limiter
	policy   RetryPolicy
	pageSize int
	log      zerolog.Logger
}

// FetcherOption configures Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchPolicy overrides the retry policy for failed pages.
func WithFetchPolicy(p RetryPolicy) FetcherOption {
	return func(f *Fetcher) {
		f.policy = p
	}
}

// WithPageSize overrides the per-request limit.
func WithPageSize(n int) FetcherOption {
	return func(f *Fetcher) {
		f.pageSize = n
	}
}

// WithFetcherLogger sets the fetcher's logger.
func WithFetcherLogger(log zerolog.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.log = log
	}
}

// WithPageLimiter overrides the inter-page rate limiter.
func WithPageLimiter(l *rate.Limiter) FetcherOption {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a Fetcher over api.
func NewFetcher(api TokenListAPI, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		api:      api,
		limiter:  rate.NewLimiter(rate.Every(DefaultPageThrottle), defaultThrottleBurst),
		policy:   DefaultFetchPolicy,
		pageSize: DefaultPageSize,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch collects token-list pages until at least target records have arrived.
// Target is a floor, not a cap: the final page may overshoot it. A failed page
// is retried per the policy without advancing the cursor, so no page is ever
// skipped. An empty page ends the scan early (the index is exhausted).
func (f *Fetcher) Fetch(ctx context.Context, target int) ([]domain.TokenSummary, error) {
	var tokens []domain.TokenSummary
	offset := 0
	attempt := 0

	for len(tokens) < target {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		f.log.Info().Int("scanned", len(tokens)).Int("offset", offset).Msg("scanning token list")

		page, err := f.api.TokenList(ctx, offset, f.pageSize)
		if err != nil {
			attempt++
			if f.policy.Exhausted(attempt) {
				return nil, &ErrRetriesExhausted{Attempts: attempt, Last: err}
			}
			f.log.Warn().Err(err).Int("offset", offset).Msg("token list fetch failed, retrying")
			if werr := f.policy.Wait(ctx, attempt); werr != nil {
				return nil, werr
			}
			continue
		}
		attempt = 0

		if len(page) == 0 {
			break
		}
		tokens = append(tokens, page...)
		offset += f.pageSize
	}

	return tokens, nil
}
