// Package cli implements the sentimark command-line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sentimark/sentimark/internal/core/ports/driving"
	"github.com/sentimark/sentimark/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// IngestDefaults are the configured defaults for ingestion runs.
type IngestDefaults struct {
	Subreddit string
	Keywords  []string
	Limit     int
}

// Deps holds the wired services commands depend on.
type Deps struct {
	Ingestor  driving.Ingestor
	Insights  driving.Insights
	Summaries driving.SummaryService

	// ListenAddr is the HTTP API bind address for the serve command.
	ListenAddr string

	Defaults IngestDefaults

	// Close releases held resources. May be nil.
	Close func()
}

// WireFunc builds Deps once the global flags have been parsed.
type WireFunc func(configDir, dataDir string) (*Deps, error)

var (
	flagConfigDir string
	flagDataDir   string
	flagVerbose   bool

	wire WireFunc
	deps *Deps
)

var rootCmd = &cobra.Command{
	Use:   "sentimark",
	Short: "Reddit sentiment tracking and summarisation",
	Long: `sentimark ingests posts from a subreddit, scores their sentiment,
and serves aggregate insights and lazily generated summaries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		// The version command needs no services.
		if cmd.Name() == "version" {
			return nil
		}
		if wire == nil {
			return errors.New("cli: no wiring installed")
		}

		var err error
		deps, err = wire(flagConfigDir, flagDataDir)
		return err
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if deps != nil && deps.Close != nil {
			deps.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.sentimark)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.sentimark/data)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the CLI with the given wiring.
func Execute(w WireFunc) error {
	wire = w
	return rootCmd.Execute()
}
