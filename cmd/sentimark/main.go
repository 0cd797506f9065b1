// Command sentimark ingests Reddit posts, scores their sentiment and
// serves aggregate insights and lazily generated summaries.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	configfile "github.com/sentimark/sentimark/internal/adapters/driven/config/file"
	"github.com/sentimark/sentimark/internal/adapters/driven/fetch/reddit"
	"github.com/sentimark/sentimark/internal/adapters/driven/sentiment/vader"
	"github.com/sentimark/sentimark/internal/adapters/driven/storage/sqlite"
	"github.com/sentimark/sentimark/internal/adapters/driven/summarize"
	"github.com/sentimark/sentimark/internal/adapters/driving/cli"
	"github.com/sentimark/sentimark/internal/core/services"
	"github.com/sentimark/sentimark/internal/logger"
)

func main() {
	// Secrets come from the environment; a .env file is optional.
	_ = godotenv.Load()

	if err := cli.Execute(wireDeps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// wireDeps builds the service graph from configuration.
func wireDeps(configDir, dataDir string) (*cli.Deps, error) {
	cfg, err := configfile.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}
	if dataDir == "" {
		dataDir = cfg.DataDir
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	logger.Debug("main: store at %s", store.Path())

	fetcherOpts := []reddit.Option{
		reddit.WithUserAgent(cfg.Reddit.UserAgent),
	}
	if cfg.Reddit.BaseURL != "" {
		fetcherOpts = append(fetcherOpts, reddit.WithBaseURL(cfg.Reddit.BaseURL))
	}
	fetcher := reddit.NewClient(fetcherOpts...)

	summarizer, err := summarize.NewSummarizer(summarize.Settings{
		Provider: cfg.Summarizer.Provider,
		Model:    cfg.Summarizer.Model,
		BaseURL:  cfg.Summarizer.BaseURL,
		APIKey:   configfile.APIKey(cfg.Summarizer.Provider),
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("configuring summarizer: %w", err)
	}

	classifier := services.NewClassifier(vader.NewScorer())

	return &cli.Deps{
		Ingestor:   services.NewIngestPipeline(fetcher, classifier, store),
		Insights:   services.NewInsightsService(store),
		Summaries:  services.NewSummaryCache(store, summarizer),
		ListenAddr: cfg.ListenAddr,
		Defaults: cli.IngestDefaults{
			Subreddit: cfg.Reddit.Subreddit,
			Keywords:  cfg.Reddit.Keywords,
			Limit:     cfg.Reddit.FetchLimit,
		},
		Close: func() {
			if err := store.Close(); err != nil {
				logger.Warn("main: closing store: %v", err)
			}
		},
	}, nil
}
