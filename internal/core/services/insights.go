package services

import (
	"context"
	"fmt"

	"github.com/sentimark/sentimark/internal/core/domain"
	"github.com/sentimark/sentimark/internal/core/ports/driven"
	"github.com/sentimark/sentimark/internal/core/ports/driving"
)

// Ensure InsightsService implements the interface.
var _ driving.Insights = (*InsightsService)(nil)

// InsightsService exposes the read-only aggregation queries.
// It validates arguments and delegates to the store; it never mutates.
type InsightsService struct {
	store driven.PostStore
}

// NewInsightsService creates a new insights service.
func NewInsightsService(store driven.PostStore) *InsightsService {
	return &InsightsService{store: store}
}

// Summary aggregates over all stored posts.
func (s *InsightsService) Summary(ctx context.Context) (*domain.SentimentSummary, error) {
	return s.store.Summary(ctx)
}

// DailyCounts returns per-day label counts for the trailing window.
func (s *InsightsService) DailyCounts(ctx context.Context, days int) ([]domain.DailyCount, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", domain.ErrInvalidArgument, days)
	}
	return s.store.DailyCounts(ctx, days)
}

// TopPosts returns up to n most-extreme posts for label within the window.
func (s *InsightsService) TopPosts(
	ctx context.Context,
	label domain.Label,
	n, days int,
) ([]domain.Post, error) {
	if _, err := domain.ParseLabel(string(label)); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", domain.ErrInvalidArgument, n)
	}
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", domain.ErrInvalidArgument, days)
	}
	return s.store.TopPosts(ctx, label, n, days)
}

// Post retrieves one post by ID.
func (s *InsightsService) Post(ctx context.Context, id string) (*domain.Post, error) {
	return s.store.GetPost(ctx, id)
}
