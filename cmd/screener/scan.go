package main

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"solana-token-screener/internal/birdeye"
	"solana-token-screener/internal/config"
	"solana-token-screener/internal/screener"
	"solana-token-screener/internal/storage/csvstore"
)

// Persisted table file names.
const (
	candidatesFile = "filtered_tokens.csv"
	launchesFile   = "new_launches.csv"
	resultsFile    = "screened_tokens.csv"
)

func newScanCmd() *cobra.Command {
	var (
		target      int
		skipFetch   bool
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run a screening pass over the token index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.RequireAPIKey(); err != nil {
				return err
			}

			var apiOpts []birdeye.ClientOption
			if cfg.ListAPIURL != "" {
				apiOpts = append(apiOpts, birdeye.WithBaseURL(cfg.ListAPIURL))
			}
			api := birdeye.NewClient(cfg.APIKey, apiOpts...)

			fetchPolicy := screener.DefaultFetchPolicy
			enrichPolicy := screener.DefaultEnrichPolicy
			fetchPolicy.MaxAttempts = maxAttempts
			enrichPolicy.MaxAttempts = maxAttempts

			pipeline := screener.NewPipeline(screener.PipelineOptions{
				Fetcher: screener.NewFetcher(api,
					screener.WithFetchPolicy(fetchPolicy),
					screener.WithFetcherLogger(log.Logger)),
				Filter: screener.NewFilter(screener.DefaultThresholds()),
				Processor: screener.NewProcessor(
					screener.NewEnricher(api, screener.WithEnricherLogger(log.Logger)),
					screener.WithEnrichPolicy(enrichPolicy),
					screener.WithProcessorLogger(log.Logger)),
				CandidateStore: csvstore.NewCandidateStore(filepath.Join(cfg.DataDir, candidatesFile)),
				LaunchStore:    csvstore.NewLaunchStore(filepath.Join(cfg.DataDir, launchesFile)),
				ResultStore:    csvstore.NewResultStore(filepath.Join(cfg.DataDir, resultsFile)),
				Target:         target,
				Logger:         log.Logger,
			})

			start := time.Now()
			var summary *screener.RunSummary
			var err error
			if skipFetch {
				summary, err = pipeline.RunFromSaved(cmd.Context())
			} else {
				summary, err = pipeline.Run(cmd.Context())
			}
			if err != nil {
				return err
			}

			log.Info().
				Int("fetched", summary.Fetched).
				Int("filtered", summary.Filtered).
				Int("new_launches", summary.NewLaunches).
				Int("accepted", summary.Accepted).
				Dur("elapsed", time.Since(start)).
				Msg("scan completed")
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", screener.DefaultTarget, "token-list records to collect before filtering")
	cmd.Flags().BoolVar(&skipFetch, "skip-fetch", false, "re-process the saved new-launches table instead of fetching")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "retry budget per upstream call, 0 retries forever")
	return cmd
}
