package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sentimark/sentimark/internal/core/domain"
	"github.com/sentimark/sentimark/internal/core/ports/driven"
	"github.com/sentimark/sentimark/internal/core/ports/driving"
	"github.com/sentimark/sentimark/internal/logger"
)

// Ensure IngestPipeline implements the interface.
var _ driving.Ingestor = (*IngestPipeline)(nil)

// IngestPipeline orchestrates one discrete batch run:
// fetch -> keyword filter -> classify -> store.
//
// The commit boundary is the store write, which is atomic per batch;
// a fetch failure aborts the run with nothing committed. Idempotence
// comes from the store's ignore-on-conflict write.
type IngestPipeline struct {
	fetcher    driven.Fetcher
	classifier *Classifier
	store      driven.PostStore
}

// NewIngestPipeline creates a new ingestion pipeline.
func NewIngestPipeline(fetcher driven.Fetcher, classifier *Classifier, store driven.PostStore) *IngestPipeline {
	return &IngestPipeline{
		fetcher:    fetcher,
		classifier: classifier,
		store:      store,
	}
}

// Run executes one ingestion batch.
func (p *IngestPipeline) Run(
	ctx context.Context,
	query string,
	keywords []string,
	limit int,
) (*driving.IngestReport, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty source query", domain.ErrInvalidArgument)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", domain.ErrInvalidArgument, limit)
	}

	report := &driving.IngestReport{RunID: uuid.NewString()}
	logger.Info("Ingest run %s: query=%q limit=%d keywords=%v", report.RunID, query, limit, keywords)

	raw, err := p.fetcher.Fetch(ctx, query, limit)
	if err != nil {
		// Whatever was fetched before the failure is discarded; the
		// run commits nothing.
		return nil, fmt.Errorf("fetch %q: %w", query, err)
	}
	report.Fetched = len(raw)

	batch := make([]domain.Post, 0, len(raw))
	for _, r := range raw {
		if !matchesKeywords(r.Title+" "+r.Body, keywords) {
			continue
		}
		report.Matched++

		score, label := p.classifier.Classify(r.Title, r.Body)
		post := domain.Post{
			ID:             r.ID,
			Title:          r.Title,
			Body:           r.Body,
			Comments:       r.Comments,
			CreatedAt:      r.CreatedAt,
			Permalink:      r.Permalink,
			SentimentScore: score,
			Label:          label,
		}

		if err := post.Validate(); err != nil {
			report.Skipped++
			logger.Warn("Ingest run %s: skipping post: %v", report.RunID, err)
			continue
		}
		batch = append(batch, post)
	}

	written, err := p.store.SavePosts(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("save batch: %w", err)
	}
	report.Written = written

	logger.Info("Ingest run %s: fetched=%d matched=%d written=%d skipped=%d",
		report.RunID, report.Fetched, report.Matched, report.Written, report.Skipped)
	return report, nil
}

// matchesKeywords reports whether at least one keyword occurs in text,
// case-insensitively. An empty keyword list matches everything.
func matchesKeywords(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
