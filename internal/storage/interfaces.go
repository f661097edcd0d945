// Package storage defines persistence interfaces for screening artifacts.
package storage

import (
	"context"
	"errors"

	"solana-token-screener/internal/domain"
)

// ErrNotFound is returned when a requested table does not exist yet.
var ErrNotFound = errors.New("not found")

// CandidateStore persists the filtered-candidates table.
type CandidateStore interface {
	// Save replaces the table with the given candidates.
	Save(ctx context.Context, candidates []domain.FilteredCandidate) error

	// Load returns the persisted table. Returns ErrNotFound if never saved.
	Load(ctx context.Context) ([]domain.FilteredCandidate, error)
}

// LaunchStore persists the new-launches table.
type LaunchStore interface {
	// Save replaces the table with the given launches.
	Save(ctx context.Context, launches []domain.NewLaunch) error

	// Load returns the persisted table. Returns ErrNotFound if never saved.
	Load(ctx context.Context) ([]domain.NewLaunch, error)
}

// ResultStore persists the accepted-enrichment-results table.
type ResultStore interface {
	// Save replaces the table with the given results.
	Save(ctx context.Context, results []domain.OverviewResult) error
}
