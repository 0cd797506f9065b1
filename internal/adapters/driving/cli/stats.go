package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate sentiment statistics",
	Long: `Prints label counts and the mean sentiment score over all stored
posts, plus a per-day breakdown over the trailing window.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().Int("days", 7, "trailing window for the daily breakdown")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	days, err := cmd.Flags().GetInt("days")
	if err != nil {
		return fmt.Errorf("getting days flag: %w", err)
	}

	summary, err := deps.Insights.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading summary: %w", err)
	}

	cmd.Printf("Posts: %d total (%d positive, %d neutral, %d negative)\n",
		summary.TotalCount, summary.PositiveCount, summary.NeutralCount, summary.NegativeCount)
	cmd.Printf("Average score: %+.4f\n", summary.AverageScore)

	counts, err := deps.Insights.DailyCounts(cmd.Context(), days)
	if err != nil {
		return fmt.Errorf("loading daily counts: %w", err)
	}
	if len(counts) == 0 {
		cmd.Printf("No posts in the last %d days.\n", days)
		return nil
	}

	cmd.Printf("\nLast %d days:\n", days)
	for _, day := range counts {
		cmd.Printf("  %s  +%-4d =%-4d -%-4d\n", day.Day, day.Positive, day.Neutral, day.Negative)
	}
	return nil
}
