package driving

import (
	"context"

	"github.com/sentimark/sentimark/internal/core/domain"
)

// SummaryService is the get-or-create path for the two derived
// summary fields of a post. The expensive external summarizer is
// invoked at most once per field per post, even under concurrent
// callers; a failed generation leaves the row untouched and is
// retryable on the next request.
type SummaryService interface {
	// GetOrCreate returns the stored summaries for id, generating and
	// persisting any that are still unset. Returns domain.ErrNotFound
	// for an unknown id.
	GetOrCreate(ctx context.Context, id string) (*domain.PostSummaries, error)
}
