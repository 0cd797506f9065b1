package driven

import (
	"context"

	"github.com/sentimark/sentimark/internal/core/domain"
)

// Fetcher retrieves raw posts from an external source.
//
// Fetch is a blocking network operation; callers bound it with a
// context deadline. Rate limiting and pagination are the fetcher's
// concern. Transient failures (rate limit, network) are wrapped in
// domain.ErrUpstreamUnavailable and propagated, not retried here.
type Fetcher interface {
	// Fetch returns up to limit raw posts for the source query
	// (for Reddit, the subreddit name).
	Fetch(ctx context.Context, query string, limit int) ([]domain.RawPost, error)
}
