package driving

import (
	"context"

	"github.com/sentimark/sentimark/internal/core/domain"
)

// Insights exposes the read-only aggregation queries.
// Implementations validate arguments and never mutate stored rows.
type Insights interface {
	// Summary aggregates over all stored posts.
	Summary(ctx context.Context) (*domain.SentimentSummary, error)

	// DailyCounts returns per-day label counts for the trailing window.
	// days must be positive.
	DailyCounts(ctx context.Context, days int) ([]domain.DailyCount, error)

	// TopPosts returns up to n most-extreme posts for label within the
	// trailing window. n and days must be positive.
	TopPosts(ctx context.Context, label domain.Label, n, days int) ([]domain.Post, error)

	// Post retrieves one post by ID.
	Post(ctx context.Context, id string) (*domain.Post, error)
}
