// Package memory provides in-memory store implementations for tests.
package memory

import (
	"context"
	"sync"

	"solana-token-screener/internal/domain"
	"solana-token-screener/internal/storage"
)

// CandidateStore is an in-memory storage.CandidateStore.
type CandidateStore struct {
	mu    sync.RWMutex
	saved []domain.FilteredCandidate
	set   bool
}

// NewCandidateStore creates an empty store.
func NewCandidateStore() *CandidateStore {
	return &CandidateStore{}
}

// Save replaces the stored table.
func (s *CandidateStore) Save(_ context.Context, candidates []domain.FilteredCandidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append([]domain.FilteredCandidate(nil), candidates...)
	s.set = true
	return nil
}

// Load returns the stored table or ErrNotFound.
func (s *CandidateStore) Load(_ context.Context) ([]domain.FilteredCandidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return nil, storage.ErrNotFound
	}
	return append([]domain.FilteredCandidate(nil), s.saved...), nil
}

// LaunchStore is an in-memory storage.LaunchStore.
type LaunchStore struct {
	mu    sync.RWMutex
	saved []domain.NewLaunch
	set   bool
}

// NewLaunchStore creates an empty store.
func NewLaunchStore() *LaunchStore {
	return &LaunchStore{}
}

// Save replaces the stored table.
func (s *LaunchStore) Save(_ context.Context, launches []domain.NewLaunch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append([]domain.NewLaunch(nil), launches...)
	s.set = true
	return nil
}

// Load returns the stored table or ErrNotFound.
func (s *LaunchStore) Load(_ context.Context) ([]domain.NewLaunch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return nil, storage.ErrNotFound
	}
	return append([]domain.NewLaunch(nil), s.saved...), nil
}

// ResultStore is an in-memory storage.ResultStore.
type ResultStore struct {
	mu    sync.RWMutex
	saved []domain.OverviewResult
	set   bool
}

// NewResultStore creates an empty store.
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Save replaces the stored table.
func (s *ResultStore) Save(_ context.Context, results []domain.OverviewResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append([]domain.OverviewResult(nil), results...)
	s.set = true
	return nil
}

// Saved returns a copy of the stored results.
func (s *ResultStore) Saved() []domain.OverviewResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.OverviewResult(nil), s.saved...)
}
