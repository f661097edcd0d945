package screener

import (
	"context"

	"github.com/rs/zerolog"

	"solana-token-screener/internal/domain"
)

// TokenEnricher resolves one address to a tagged enrichment outcome.
type TokenEnricher interface {
	Enrich(ctx context.Context, address string) Outcome
}

// Processor drives enrichment over a batch of new launches with
// retry-until-resolved semantics per address.
type Processor struct {
	enricher TokenEnricher
	policy   RetryPolicy
	log      zerolog.Logger
}

// ProcessorOption configures Processor.
type ProcessorOption func(*Processor)

// WithEnrichPolicy overrides the retry policy for upstream errors.
func WithEnrichPolicy(p RetryPolicy) ProcessorOption {
	return func(pr *Processor) {
		pr.policy = p
	}
}

// WithProcessorLogger sets the processor's logger.
func WithProcessorLogger(log zerolog.Logger) ProcessorOption {
	return func(pr *Processor) {
		pr.log = log
	}
}

// NewProcessor creates a Processor over enricher.
func NewProcessor(enricher TokenEnricher, opts ...ProcessorOption) *Processor {
	p := &Processor{
		enricher: enricher,
		policy:   DefaultEnrichPolicy,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process enriches every launch strictly in input order. Each address is
// fully resolved before the next begins: upstream errors are retried per the
// policy, a rejection is final and logged with its reason, an acceptance is
// appended to the output. Accepted results preserve input order.
func (p *Processor) Process(ctx context.Context, launches []domain.NewLaunch) ([]domain.OverviewResult, error) {
	var results []domain.OverviewResult

	for _, launch := range launches {
		attempt := 0
		for {
			out := p.enricher.Enrich(ctx, launch.Address)

			if out.Status == OutcomeUpstreamError {
				attempt++
				if p.policy.Exhausted(attempt) {
					return results, &ErrRetriesExhausted{Attempts: attempt, Last: out.Err}
				}
				p.log.Warn().Err(out.Err).Str("address", launch.Address).
					Msg("enrichment failed, retrying")
				if err := p.policy.Wait(ctx, attempt); err != nil {
					return results, err
				}
				continue
			}

			if out.Status == OutcomeRejected {
				p.log.Debug().Str("address", launch.Address).Str("reason", string(out.Reason)).
					Msg("candidate rejected")
				break
			}

			results = append(results, *out.Result)
			break
		}
	}

	if len(results) == 0 {
		p.log.Info().Msg("no qualifying tokens after enrichment; consider relaxing thresholds or raising the scan target")
	}

	return results, nil
}
