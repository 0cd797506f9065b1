package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch, score and store posts from a subreddit",
	Long: `Fetches the newest posts from a subreddit, filters them by keyword,
scores their sentiment and stores the results. Posts already stored are
left untouched, so overlapping runs are safe.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringP("subreddit", "s", "", "subreddit to fetch (default from config)")
	ingestCmd.Flags().StringSliceP("keyword", "k", nil, "keyword filter, repeatable (default from config)")
	ingestCmd.Flags().IntP("limit", "n", 0, "maximum posts to fetch (default from config)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	subreddit, err := cmd.Flags().GetString("subreddit")
	if err != nil {
		return fmt.Errorf("getting subreddit flag: %w", err)
	}
	keywords, err := cmd.Flags().GetStringSlice("keyword")
	if err != nil {
		return fmt.Errorf("getting keyword flag: %w", err)
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("getting limit flag: %w", err)
	}

	if subreddit == "" {
		subreddit = deps.Defaults.Subreddit
	}
	if len(keywords) == 0 {
		keywords = deps.Defaults.Keywords
	}
	if limit <= 0 {
		limit = deps.Defaults.Limit
	}

	cmd.Printf("Ingesting r/%s...\n", subreddit)

	report, err := deps.Ingestor.Run(cmd.Context(), subreddit, keywords, limit)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Run %s: fetched %d, matched %d, written %d, skipped %d\n",
		report.RunID, report.Fetched, report.Matched, report.Written, report.Skipped)
	return nil
}
