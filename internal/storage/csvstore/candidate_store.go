// Package csvstore persists screening artifacts as tabular files with a
// header row and one record per line.
package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"solana-token-screener/internal/domain"
	"solana-token-screener/internal/storage"
)

var candidateHeader = []string{
	"address", "liquidity", "v24h_usd", "market_cap",
	"v24h_change_percent", "last_trade_at", "token_url",
}

// CandidateStore stores filtered candidates in a CSV file.
type CandidateStore struct {
	path string
}

// NewCandidateStore creates a store writing to path.
func NewCandidateStore(path string) *CandidateStore {
	return &CandidateStore{path: path}
}

// Save replaces the file with the given candidates.
func (s *CandidateStore) Save(_ context.Context, candidates []domain.FilteredCandidate) error {
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, candidateRow(c))
	}
	return writeTable(s.path, candidateHeader, rows)
}

// Load reads the persisted candidates back.
func (s *CandidateStore) Load(_ context.Context) ([]domain.FilteredCandidate, error) {
	rows, err := readTable(s.path, candidateHeader)
	if err != nil {
		return nil, err
	}
	candidates := make([]domain.FilteredCandidate, 0, len(rows))
	for i, row := range rows {
		c, err := parseCandidateRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func candidateRow(c domain.FilteredCandidate) []string {
	change := ""
	if c.V24hChangePercent != nil {
		change = formatFloat(*c.V24hChangePercent)
	}
	return []string{
		c.Address,
		formatFloat(c.Liquidity),
		formatFloat(c.V24hUSD),
		formatFloat(c.MarketCap),
		change,
		c.LastTradeAt.UTC().Format(time.RFC3339),
		c.TokenURL,
	}
}

func parseCandidateRow(row []string) (domain.FilteredCandidate, error) {
	var c domain.FilteredCandidate
	var err error

	c.Address = row[0]
	if c.Liquidity, err = strconv.ParseFloat(row[1], 64); err != nil {
		return c, fmt.Errorf("liquidity: %w", err)
	}
	if c.V24hUSD, err = strconv.ParseFloat(row[2], 64); err != nil {
		return c, fmt.Errorf("v24h_usd: %w", err)
	}
	if c.MarketCap, err = strconv.ParseFloat(row[3], 64); err != nil {
		return c, fmt.Errorf("market_cap: %w", err)
	}
	if row[4] != "" {
		change, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return c, fmt.Errorf("v24h_change_percent: %w", err)
		}
		c.V24hChangePercent = &change
	}
	if c.LastTradeAt, err = time.Parse(time.RFC3339, row[5]); err != nil {
		return c, fmt.Errorf("last_trade_at: %w", err)
	}
	c.LastTradeAt = c.LastTradeAt.UTC()
	c.TokenURL = row[6]
	return c, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// writeTable writes a header plus rows to path, creating parent directories.
func writeTable(path string, header []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// readTable reads path and validates the header row.
func readTable(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	if len(records[0]) != len(header) {
		return nil, fmt.Errorf("%s: expected %d columns, got %d", path, len(header), len(records[0]))
	}
	return records[1:], nil
}
