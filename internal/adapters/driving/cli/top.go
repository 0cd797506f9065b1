package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sentimark/sentimark/internal/core/domain"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most extreme posts for a label",
	Long: `Lists the posts with the most extreme sentiment scores for a
label within the trailing window.`,
	RunE: runTop,
}

func init() {
	topCmd.Flags().StringP("label", "l", "Positive", "sentiment label (Positive, Neutral, Negative)")
	topCmd.Flags().IntP("count", "n", 5, "number of posts to show")
	topCmd.Flags().Int("days", 7, "trailing window in days")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, _ []string) error {
	rawLabel, err := cmd.Flags().GetString("label")
	if err != nil {
		return fmt.Errorf("getting label flag: %w", err)
	}
	n, err := cmd.Flags().GetInt("count")
	if err != nil {
		return fmt.Errorf("getting count flag: %w", err)
	}
	days, err := cmd.Flags().GetInt("days")
	if err != nil {
		return fmt.Errorf("getting days flag: %w", err)
	}

	label, err := domain.ParseLabel(rawLabel)
	if err != nil {
		return err
	}

	posts, err := deps.Insights.TopPosts(cmd.Context(), label, n, days)
	if err != nil {
		return fmt.Errorf("loading top posts: %w", err)
	}
	if len(posts) == 0 {
		cmd.Printf("No %s posts in the last %d days.\n", label, days)
		return nil
	}

	for i, post := range posts {
		cmd.Printf("%2d. [%+.4f] %s\n    %s\n", i+1, post.SentimentScore, post.Title, post.Permalink)
	}
	return nil
}
