package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sentimark/sentimark/internal/core/domain"
	"github.com/sentimark/sentimark/internal/core/ports/driven"
	"github.com/sentimark/sentimark/internal/core/ports/driving"
	"github.com/sentimark/sentimark/internal/logger"
)

// Ensure SummaryCache implements the interface.
var _ driving.SummaryService = (*SummaryCache)(nil)

// NoCommentsSummary is stored for posts with an empty comment thread;
// the summarizer is never invoked for them.
const NoCommentsSummary = "no comments to summarize"

// maxCommentSample bounds how many comments are sent to the
// summarizer. Sampling is for cost control, not correctness, and is
// not reproducible across calls.
const maxCommentSample = 50

// SummaryCache is the get-or-create layer for the two derived summary
// fields of a post.
//
// A per-id mutex serialises the read-decide-compute-persist sequence,
// so concurrent callers for the same id queue behind one computation
// while callers for different ids proceed in parallel. The store
// writes are additionally conditioned on the field still being unset,
// so a result persisted first is never clobbered. Summarizer failure
// leaves the row untouched and is retryable on the next request.
type SummaryCache struct {
	store      driven.PostStore
	summarizer driven.Summarizer
	locks      *keyedMutex
}

// NewSummaryCache creates a new summary cache.
func NewSummaryCache(store driven.PostStore, summarizer driven.Summarizer) *SummaryCache {
	return &SummaryCache{
		store:      store,
		summarizer: summarizer,
		locks:      newKeyedMutex(),
	}
}

// GetOrCreate returns the summaries for id, generating and persisting
// any that are still unset.
func (c *SummaryCache) GetOrCreate(ctx context.Context, id string) (*domain.PostSummaries, error) {
	c.locks.Lock(id)
	defer c.locks.Unlock(id)

	post, err := c.store.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &domain.PostSummaries{}

	if post.TextSummary != nil {
		result.TextSummary = *post.TextSummary
	} else {
		summary, err := c.fillTextSummary(ctx, post)
		if err != nil {
			return nil, err
		}
		result.TextSummary = summary
	}

	if post.CommentSummary != nil {
		result.CommentSummary = *post.CommentSummary
	} else {
		summary, err := c.fillCommentSummary(ctx, post)
		if err != nil {
			return nil, err
		}
		result.CommentSummary = summary
	}

	return result, nil
}

// fillTextSummary generates, persists and returns the post summary.
func (c *SummaryCache) fillTextSummary(ctx context.Context, post *domain.Post) (string, error) {
	logger.Debug("Generating text summary for post %s", post.ID)

	summary, err := c.summarizer.SummarizeDocument(ctx, post.Title, post.Body)
	if err != nil {
		return "", fmt.Errorf("summarise post %s: %w", post.ID, err)
	}

	return c.persist(ctx, post.ID, summary, c.store.SetTextSummaryIfUnset, func(p *domain.Post) *string {
		return p.TextSummary
	})
}

// fillCommentSummary generates, persists and returns the comment
// summary, or the sentinel when the thread is empty.
func (c *SummaryCache) fillCommentSummary(ctx context.Context, post *domain.Post) (string, error) {
	var summary string
	if len(post.Comments) == 0 {
		summary = NoCommentsSummary
	} else {
		logger.Debug("Generating comment summary for post %s (%d comments)", post.ID, len(post.Comments))
		var err error
		summary, err = c.summarizer.SummarizeComments(ctx, sampleComments(post.Comments))
		if err != nil {
			return "", fmt.Errorf("summarise comments for post %s: %w", post.ID, err)
		}
	}

	return c.persist(ctx, post.ID, summary, c.store.SetCommentSummaryIfUnset, func(p *domain.Post) *string {
		return p.CommentSummary
	})
}

// persist writes a computed summary through the conditional setter.
// If a concurrent writer got there first (possible across processes),
// the computed value is discarded and the stored one returned.
func (c *SummaryCache) persist(
	ctx context.Context,
	id, summary string,
	set func(ctx context.Context, id, summary string) (bool, error),
	field func(*domain.Post) *string,
) (string, error) {
	won, err := set(ctx, id, summary)
	if err != nil {
		return "", fmt.Errorf("persist summary for post %s: %w", id, err)
	}
	if won {
		return summary, nil
	}

	stored, err := c.store.GetPost(ctx, id)
	if err != nil {
		return "", err
	}
	if v := field(stored); v != nil {
		return *v, nil
	}
	// Lost the conditional write yet the field reads as unset; treat
	// our own computation as authoritative rather than failing.
	return summary, nil
}

// sampleComments returns at most maxCommentSample comments, randomly
// sampled without replacement when the thread is larger.
func sampleComments(comments []string) []string {
	if len(comments) <= maxCommentSample {
		return comments
	}
	idx := rand.Perm(len(comments))[:maxCommentSample]
	sampled := make([]string, 0, maxCommentSample)
	for _, i := range idx {
		sampled = append(sampled, comments[i])
	}
	return sampled
}
