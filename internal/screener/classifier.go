package screener

import (
	"solana-token-screener/internal/domain"
)

// Classify partitions filtered candidates into new launches and established
// tokens. A candidate is a new launch iff its 24h change percent is absent:
// the exchange has no prior-day history for it yet. Every input lands in
// exactly one of the two slices, in input order.
func Classify(candidates []domain.FilteredCandidate) (launches []domain.NewLaunch, established []domain.FilteredCandidate) {
	for _, c := range candidates {
		if c.V24hChangePercent == nil {
			launches = append(launches, domain.NewLaunch(c))
		} else {
			established = append(established, c)
		}
	}
	return launches, established
}
