package domain

import (
	"time"

	"github.com/mr-tron/base58"
)

// TokenSummary is one record from the token-list endpoint.
// Optional numeric fields are pointers so a missing value stays
// distinguishable from an explicit zero.
type TokenSummary struct {
	Address           string   // mint address, unique key
	Liquidity         *float64 // USD, nil when upstream omits it
	V24hUSD           *float64 // 24h volume in USD, nil when omitted
	MarketCap         float64  // USD, may be zero
	LastTradeUnixTime int64    // epoch seconds
	V24hChangePercent *float64 // nil for tokens with no prior 24h history
}

// FilteredCandidate is a TokenSummary that passed all static thresholds.
type FilteredCandidate struct {
	Address           string
	Liquidity         float64
	V24hUSD           float64
	MarketCap         float64
	V24hChangePercent *float64  // nil for tokens younger than 24h on the exchange
	LastTradeAt       time.Time // UTC
	TokenURL          string    // explorer deep link
}

// NewLaunch is a FilteredCandidate whose 24h change history is absent.
// It is the working set consumed by batch enrichment.
type NewLaunch FilteredCandidate

// ValidAddress reports whether s decodes as a 32-byte base58 account key.
func ValidAddress(s string) bool {
	if s == "" {
		return false
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(raw) == 32
}
