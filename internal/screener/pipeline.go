package screener

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"solana-token-screener/internal/storage"
)

// Pipeline runs the full screening pass: fetch, filter, classify, persist,
// enrich, persist.
type Pipeline struct {
	fetcher    *Fetcher
	filter     *Filter
	processor  *Processor
	candidates storage.CandidateStore
	launches   storage.LaunchStore
	results    storage.ResultStore
	target     int
	log        zerolog.Logger
}

// PipelineOptions wires the pipeline's collaborators.
type PipelineOptions struct {
	Fetcher        *Fetcher
	Filter         *Filter
	Processor      *Processor
	CandidateStore storage.CandidateStore
	LaunchStore    storage.LaunchStore
	ResultStore    storage.ResultStore
	Target         int // token-list records to collect before filtering
	Logger         zerolog.Logger
}

// DefaultTarget is the default token-list collection target.
const DefaultTarget = 100

// NewPipeline creates a Pipeline from opts.
func NewPipeline(opts PipelineOptions) *Pipeline {
	target := opts.Target
	if target <= 0 {
		target = DefaultTarget
	}
	return &Pipeline{
		fetcher:    opts.Fetcher,
		filter:     opts.Filter,
		processor:  opts.Processor,
		candidates: opts.CandidateStore,
		launches:   opts.LaunchStore,
		results:    opts.ResultStore,
		target:     target,
		log:        opts.Logger,
	}
}

// RunSummary reports counts from one screening pass.
type RunSummary struct {
	Fetched     int
	Filtered    int
	NewLaunches int
	Established int
	Accepted    int
}

// Run executes a full screening pass and persists all three tables.
func (p *Pipeline) Run(ctx context.Context) (*RunSummary, error) {
	tokens, err := p.fetcher.Fetch(ctx, p.target)
	if err != nil {
		return nil, fmt.Errorf("fetch tokens: %w", err)
	}

	filtered := p.filter.Filter(tokens)
	if err := p.candidates.Save(ctx, filtered); err != nil {
		return nil, fmt.Errorf("save candidates: %w", err)
	}

	launches, established := Classify(filtered)
	if err := p.launches.Save(ctx, launches); err != nil {
		return nil, fmt.Errorf("save new launches: %w", err)
	}

	p.log.Info().
		Int("fetched", len(tokens)).
		Int("filtered", len(filtered)).
		Int("new_launches", len(launches)).
		Msg("screening pass classified")

	results, err := p.processor.Process(ctx, launches)
	if err != nil {
		return nil, fmt.Errorf("process launches: %w", err)
	}
	if err := p.results.Save(ctx, results); err != nil {
		return nil, fmt.Errorf("save results: %w", err)
	}

	return &RunSummary{
		Fetched:     len(tokens),
		Filtered:    len(filtered),
		NewLaunches: len(launches),
		Established: len(established),
		Accepted:    len(results),
	}, nil
}

// RunFromSaved skips acquisition and re-processes the persisted new-launches
// table, overwriting the results table.
func (p *Pipeline) RunFromSaved(ctx context.Context) (*RunSummary, error) {
	launches, err := p.launches.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load new launches: %w", err)
	}

	results, err := p.processor.Process(ctx, launches)
	if err != nil {
		return nil, fmt.Errorf("process launches: %w", err)
	}
	if err := p.results.Save(ctx, results); err != nil {
		return nil, fmt.Errorf("save results: %w", err)
	}

	return &RunSummary{
		NewLaunches: len(launches),
		Accepted:    len(results),
	}, nil
}
