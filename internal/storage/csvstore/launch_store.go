package csvstore

import (
	"context"
	"fmt"

	"solana-token-screener/internal/domain"
)

// LaunchStore stores new launches in a CSV file. The column set matches the
// candidate table; only the population differs.
type LaunchStore struct {
	path string
}

// NewLaunchStore creates a store writing to path.
func NewLaunchStore(path string) *LaunchStore {
	return &LaunchStore{path: path}
}

// Save replaces the file with the given launches.
func (s *LaunchStore) Save(_ context.Context, launches []domain.NewLaunch) error {
	rows := make([][]string, 0, len(launches))
	for _, l := range launches {
		rows = append(rows, candidateRow(domain.FilteredCandidate(l)))
	}
	return writeTable(s.path, candidateHeader, rows)
}

// Load reads the persisted launches back.
func (s *LaunchStore) Load(_ context.Context) ([]domain.NewLaunch, error) {
	rows, err := readTable(s.path, candidateHeader)
	if err != nil {
		return nil, err
	}
	launches := make([]domain.NewLaunch, 0, len(rows))
	for i, row := range rows {
		c, err := parseCandidateRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		launches = append(launches, domain.NewLaunch(c))
	}
	return launches, nil
}
