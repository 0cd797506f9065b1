package driven

import (
	"context"

	"github.com/sentimark/sentimark/internal/core/domain"
)

// PostStore persists scored posts and owns all query logic.
// Backed by SQLite; the store is the only component holding the
// write handle, and schema migration runs once at open.
type PostStore interface {
	// SavePosts writes a batch with ignore-on-conflict semantics keyed
	// by ID: posts whose ID already exists are silently skipped.
	// Invalid posts are skipped without aborting the batch. Returns the
	// number of new rows actually written. An empty batch is a no-op.
	SavePosts(ctx context.Context, posts []domain.Post) (int, error)

	// GetPost retrieves a full row by ID, including summary fields.
	// Returns domain.ErrNotFound when the ID is unknown.
	GetPost(ctx context.Context, id string) (*domain.Post, error)

	// UpdateSummaries overwrites both summary fields for one post.
	// Returns domain.ErrNotFound when the ID is unknown. Overwrite is
	// permitted at this layer; get-or-create logic lives above it.
	UpdateSummaries(ctx context.Context, id, textSummary, commentSummary string) error

	// SetTextSummaryIfUnset writes the text summary only when the field
	// is still null. Reports whether this call performed the write.
	// Returns domain.ErrNotFound when the ID is unknown.
	SetTextSummaryIfUnset(ctx context.Context, id, summary string) (bool, error)

	// SetCommentSummaryIfUnset writes the comment summary only when the
	// field is still null. Reports whether this call performed the write.
	// Returns domain.ErrNotFound when the ID is unknown.
	SetCommentSummaryIfUnset(ctx context.Context, id, summary string) (bool, error)

	// Summary aggregates over all stored posts regardless of age.
	Summary(ctx context.Context) (*domain.SentimentSummary, error)

	// DailyCounts returns per-day label counts for calendar days (UTC)
	// inside the trailing window, most recent day first. Days with no
	// posts are omitted.
	DailyCounts(ctx context.Context, days int) ([]domain.DailyCount, error)

	// TopPosts returns up to n posts with the given label inside the
	// trailing window, ordered from most extreme toward neutral
	// (descending score for Positive, ascending for Negative), ties
	// broken by ID.
	TopPosts(ctx context.Context, label domain.Label, n, days int) ([]domain.Post, error)

	// Close releases the underlying database handle.
	Close() error
}
