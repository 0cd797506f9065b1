package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sentimark/sentimark/internal/core/domain"
)

// SummaryOutput is the output schema for the sentiment_summary tool.
type SummaryOutput struct {
	PositiveCount int     `json:"positive_count"`
	NeutralCount  int     `json:"neutral_count"`
	NegativeCount int     `json:"negative_count"`
	TotalCount    int     `json:"total_count"`
	AverageScore  float64 `json:"average_score"`
}

// DailyCountsInput is the input schema for the daily_counts tool.
type DailyCountsInput struct {
	Days int `json:"days,omitempty" jsonschema:"trailing window in days (default 7)"`
}

// DailyCountsOutput is the output schema for the daily_counts tool.
type DailyCountsOutput struct {
	Days []DayOutput `json:"days"`
}

// DayOutput is one calendar day of label counts.
type DayOutput struct {
	Day      string `json:"day"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// TopPostsInput is the input schema for the top_posts tool.
type TopPostsInput struct {
	Label string `json:"label" jsonschema:"sentiment label: Positive, Neutral or Negative"`
	N     int    `json:"n,omitempty" jsonschema:"maximum number of posts to return (default 5)"`
	Days  int    `json:"days,omitempty" jsonschema:"trailing window in days (default 7)"`
}

// TopPostsOutput is the output schema for the top_posts tool.
type TopPostsOutput struct {
	Posts []PostOutput `json:"posts"`
	Count int          `json:"count"`
}

// PostOutput represents a single post.
type PostOutput struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Permalink string  `json:"permalink"`
	Sentiment float64 `json:"sentiment"`
	Label     string  `json:"label"`
}

// PostSummariesInput is the input schema for the post_summaries tool.
type PostSummariesInput struct {
	PostID string `json:"post_id" jsonschema:"the id of the post to summarise"`
}

// PostSummariesOutput is the output schema for the post_summaries tool.
type PostSummariesOutput struct {
	TextSummary    string `json:"text_summary"`
	CommentSummary string `json:"comment_summary"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sentiment_summary",
		Description: "Aggregate sentiment counts and mean score over all stored posts",
	}, s.handleSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daily_counts",
		Description: "Per-day sentiment label counts over a trailing window",
	}, s.handleDailyCounts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "top_posts",
		Description: "Most extreme posts for a sentiment label within a trailing window",
	}, s.handleTopPosts)

	if s.ports.Summaries != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "post_summaries",
			Description: "Generated summaries of a post and its comment thread",
		}, s.handlePostSummaries)
	}
}

// handleSummary handles the sentiment_summary tool invocation.
func (s *Server) handleSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, SummaryOutput, error) {
	summary, err := s.ports.Insights.Summary(ctx)
	if err != nil {
		return nil, SummaryOutput{}, err
	}

	return nil, SummaryOutput{
		PositiveCount: summary.PositiveCount,
		NeutralCount:  summary.NeutralCount,
		NegativeCount: summary.NegativeCount,
		TotalCount:    summary.TotalCount,
		AverageScore:  summary.AverageScore,
	}, nil
}

// handleDailyCounts handles the daily_counts tool invocation.
func (s *Server) handleDailyCounts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DailyCountsInput,
) (*mcp.CallToolResult, DailyCountsOutput, error) {
	days := input.Days
	if days <= 0 {
		days = 7
	}

	counts, err := s.ports.Insights.DailyCounts(ctx, days)
	if err != nil {
		return nil, DailyCountsOutput{}, err
	}

	output := DailyCountsOutput{Days: make([]DayOutput, len(counts))}
	for i := range counts {
		output.Days[i] = DayOutput{
			Day:      counts[i].Day,
			Positive: counts[i].Positive,
			Neutral:  counts[i].Neutral,
			Negative: counts[i].Negative,
		}
	}
	return nil, output, nil
}

// handleTopPosts handles the top_posts tool invocation.
func (s *Server) handleTopPosts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopPostsInput,
) (*mcp.CallToolResult, TopPostsOutput, error) {
	label, err := domain.ParseLabel(input.Label)
	if err != nil {
		return nil, TopPostsOutput{}, err
	}

	n := input.N
	if n <= 0 {
		n = 5
	}
	days := input.Days
	if days <= 0 {
		days = 7
	}

	posts, err := s.ports.Insights.TopPosts(ctx, label, n, days)
	if err != nil {
		return nil, TopPostsOutput{}, err
	}

	output := TopPostsOutput{
		Posts: make([]PostOutput, len(posts)),
		Count: len(posts),
	}
	for i := range posts {
		output.Posts[i] = PostOutput{
			ID:        posts[i].ID,
			Title:     posts[i].Title,
			Permalink: posts[i].Permalink,
			Sentiment: posts[i].SentimentScore,
			Label:     string(posts[i].Label),
		}
	}
	return nil, output, nil
}

// handlePostSummaries handles the post_summaries tool invocation.
func (s *Server) handlePostSummaries(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PostSummariesInput,
) (*mcp.CallToolResult, PostSummariesOutput, error) {
	summaries, err := s.ports.Summaries.GetOrCreate(ctx, input.PostID)
	if err != nil {
		return nil, PostSummariesOutput{}, err
	}

	return nil, PostSummariesOutput{
		TextSummary:    summaries.TextSummary,
		CommentSummary: summaries.CommentSummary,
	}, nil
}
