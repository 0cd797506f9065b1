// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and as lightweight stand-ins.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sentimark/sentimark/internal/core/domain"
	"github.com/sentimark/sentimark/internal/core/ports/driven"
)

// Ensure PostStore implements the interface.
var _ driven.PostStore = (*PostStore)(nil)

// PostStore is an in-memory implementation of driven.PostStore.
// Semantics match the SQLite store: first write wins, summaries are
// conditionally settable, windows are measured from time.Now.
type PostStore struct {
	mu    sync.RWMutex
	posts map[string]domain.Post

	// now is replaceable in tests to pin the query window.
	now func() time.Time
}

// NewPostStore creates a new in-memory post store.
func NewPostStore() *PostStore {
	return &PostStore{
		posts: make(map[string]domain.Post),
		now:   time.Now,
	}
}

// SetNow overrides the clock used for windowed queries. Test hook.
func (s *PostStore) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SavePosts writes a batch with ignore-on-conflict semantics.
func (s *PostStore) SavePosts(_ context.Context, posts []domain.Post) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	written := 0
	for _, p := range posts {
		if err := p.Validate(); err != nil {
			continue
		}
		if _, exists := s.posts[p.ID]; exists {
			continue
		}
		s.posts[p.ID] = p
		written++
	}
	return written, nil
}

// GetPost retrieves a post by ID.
func (s *PostStore) GetPost(_ context.Context, id string) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// UpdateSummaries overwrites both summary fields.
func (s *PostStore) UpdateSummaries(_ context.Context, id, textSummary, commentSummary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.TextSummary = &textSummary
	p.CommentSummary = &commentSummary
	s.posts[id] = p
	return nil
}

// SetTextSummaryIfUnset writes the text summary only when still unset.
func (s *PostStore) SetTextSummaryIfUnset(_ context.Context, id, summary string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if p.TextSummary != nil {
		return false, nil
	}
	p.TextSummary = &summary
	s.posts[id] = p
	return true, nil
}

// SetCommentSummaryIfUnset writes the comment summary only when still unset.
func (s *PostStore) SetCommentSummaryIfUnset(_ context.Context, id, summary string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if p.CommentSummary != nil {
		return false, nil
	}
	p.CommentSummary = &summary
	s.posts[id] = p
	return true, nil
}

// Summary aggregates over all stored posts.
func (s *PostStore) Summary(_ context.Context) (*domain.SentimentSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var summary domain.SentimentSummary
	var total float64
	for _, p := range s.posts {
		switch p.Label {
		case domain.LabelPositive:
			summary.PositiveCount++
		case domain.LabelNeutral:
			summary.NeutralCount++
		case domain.LabelNegative:
			summary.NegativeCount++
		}
		summary.TotalCount++
		total += p.SentimentScore
	}
	if summary.TotalCount > 0 {
		summary.AverageScore = total / float64(summary.TotalCount)
	}
	return &summary, nil
}

// DailyCounts returns per-day label counts inside the trailing window,
// most recent day first.
func (s *PostStore) DailyCounts(_ context.Context, days int) ([]domain.DailyCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.now().Unix() - int64(days)*86400
	byDay := make(map[string]*domain.DailyCount)
	for _, p := range s.posts {
		if p.CreatedAt < cutoff {
			continue
		}
		day := time.Unix(p.CreatedAt, 0).UTC().Format("2006-01-02")
		count, ok := byDay[day]
		if !ok {
			count = &domain.DailyCount{Day: day}
			byDay[day] = count
		}
		switch p.Label {
		case domain.LabelPositive:
			count.Positive++
		case domain.LabelNeutral:
			count.Neutral++
		case domain.LabelNegative:
			count.Negative++
		}
	}

	counts := make([]domain.DailyCount, 0, len(byDay))
	for _, c := range byDay {
		counts = append(counts, *c)
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Day > counts[j].Day
	})
	return counts, nil
}

// TopPosts returns the most extreme posts for a label inside the window.
func (s *PostStore) TopPosts(_ context.Context, label domain.Label, n, days int) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.now().Unix() - int64(days)*86400
	var matched []domain.Post
	for _, p := range s.posts {
		if p.Label == label && p.CreatedAt >= cutoff {
			matched = append(matched, p)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].SentimentScore != matched[j].SentimentScore {
			if label == domain.LabelNegative {
				return matched[i].SentimentScore < matched[j].SentimentScore
			}
			return matched[i].SentimentScore > matched[j].SentimentScore
		}
		return matched[i].ID < matched[j].ID
	})

	if len(matched) > n {
		matched = matched[:n]
	}
	return matched, nil
}

// Close is a no-op for the in-memory store.
func (s *PostStore) Close() error {
	return nil
}
