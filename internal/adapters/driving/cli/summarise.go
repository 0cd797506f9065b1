package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summariseCmd = &cobra.Command{
	Use:   "summarise <post-id>",
	Short: "Show or generate summaries for a post",
	Long: `Prints the stored summaries of a post and its comment thread,
generating them first if they do not exist yet.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarise,
}

func init() {
	rootCmd.AddCommand(summariseCmd)
}

func runSummarise(cmd *cobra.Command, args []string) error {
	summaries, err := deps.Summaries.GetOrCreate(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("summarising post %s: %w", args[0], err)
	}

	cmd.Printf("Post summary:\n  %s\n\nComment summary:\n  %s\n",
		summaries.TextSummary, summaries.CommentSummary)
	return nil
}
