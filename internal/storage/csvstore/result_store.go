package csvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"solana-token-screener/internal/domain"
)

var resultHeader = []string{
	"address", "buy_1h", "sell_1h", "trade_1h",
	"buy_percentage", "sell_percentage", "liquidity", "description", "url",
}

// ResultStore stores accepted enrichment results in a CSV file.
type ResultStore struct {
	path string
}

// NewResultStore creates a store writing to path.
func NewResultStore(path string) *ResultStore {
	return &ResultStore{path: path}
}

// Save replaces the file with the given results. Classified links are
// rendered as a JSON array in the description column.
func (s *ResultStore) Save(_ context.Context, results []domain.OverviewResult) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Links == nil {
			r.Links = []domain.Link{}
		}
		links, err := json.Marshal(r.Links)
		if err != nil {
			return fmt.Errorf("marshal links for %s: %w", r.Address, err)
		}
		rows = append(rows, []string{
			r.Address,
			strconv.FormatInt(r.Buy1h, 10),
			strconv.FormatInt(r.Sell1h, 10),
			strconv.FormatInt(r.Trade1h, 10),
			formatFloat(r.BuyPercentage),
			formatFloat(r.SellPercentage),
			formatFloat(r.Liquidity),
			string(links),
			r.TradeURL,
		})
	}
	return writeTable(s.path, resultHeader, rows)
}
