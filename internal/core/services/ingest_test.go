package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentimark/sentimark/internal/adapters/driven/storage/memory"
	"github.com/sentimark/sentimark/internal/core/domain"
)

// mockFetcher implements driven.Fetcher with canned results.
type mockFetcher struct {
	posts []domain.RawPost
	err   error
	calls int
}

func (f *mockFetcher) Fetch(_ context.Context, _ string, limit int) ([]domain.RawPost, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.posts) > limit {
		return f.posts[:limit], nil
	}
	return f.posts, nil
}

func newTestPipeline(fetcher *mockFetcher, store *memory.PostStore) *IngestPipeline {
	scorer := &stubScorer{scores: map[string]float64{
		"I love it amazing": 0.84,
		"terrible product ": -0.62,
	}}
	return NewIngestPipeline(fetcher, NewClassifier(scorer), store)
}

// TestIngestPipeline_Run tests the fetch-filter-classify-store flow.
func TestIngestPipeline_Run(t *testing.T) {
	now := time.Now().Unix()
	fetcher := &mockFetcher{posts: []domain.RawPost{
		{ID: "p1", Title: "I love it", Body: "amazing", CreatedAt: now, Permalink: "https://example.com/p1"},
		{ID: "p2", Title: "terrible product", Body: "", CreatedAt: now, Permalink: "https://example.com/p2"},
	}}
	store := memory.NewPostStore()
	pipeline := newTestPipeline(fetcher, store)

	report, err := pipeline.Run(context.Background(), "technology", []string{"love"}, 100)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.Fetched)
	assert.Equal(t, 1, report.Matched)
	assert.Equal(t, 1, report.Written)
	assert.Equal(t, 0, report.Skipped)

	stored, err := store.GetPost(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.LabelPositive, stored.Label)
	assert.InDelta(t, 0.84, stored.SentimentScore, 1e-9)

	_, err = store.GetPost(context.Background(), "p2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestIngestPipeline_Rerun tests idempotence across overlapping runs.
func TestIngestPipeline_Rerun(t *testing.T) {
	now := time.Now().Unix()
	fetcher := &mockFetcher{posts: []domain.RawPost{
		{ID: "p1", Title: "I love it", Body: "amazing", CreatedAt: now, Permalink: "https://example.com/p1"},
	}}
	store := memory.NewPostStore()
	pipeline := newTestPipeline(fetcher, store)

	first, err := pipeline.Run(context.Background(), "technology", []string{"love"}, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Written)

	second, err := pipeline.Run(context.Background(), "technology", []string{"love"}, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Written)
	assert.Equal(t, 1, second.Matched)
}

// TestIngestPipeline_KeywordFilter tests case-insensitive substring matching.
func TestIngestPipeline_KeywordFilter(t *testing.T) {
	assert.True(t, matchesKeywords("State Farm raised my rates", []string{"state farm"}))
	assert.True(t, matchesKeywords("STATE FARM", []string{"State Farm"}))
	assert.True(t, matchesKeywords("anything", nil))
	assert.False(t, matchesKeywords("progressive quote", []string{"state farm", "geico"}))
	assert.False(t, matchesKeywords("anything", []string{""}), "blank keywords never match")
}

// TestIngestPipeline_FetchFailure tests that a failed fetch commits nothing.
func TestIngestPipeline_FetchFailure(t *testing.T) {
	fetcher := &mockFetcher{err: domain.ErrUpstreamUnavailable}
	store := memory.NewPostStore()
	pipeline := newTestPipeline(fetcher, store)

	_, err := pipeline.Run(context.Background(), "technology", nil, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	summary, err := store.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalCount)
}

// TestIngestPipeline_InvalidPostSkipped tests partial success within a batch.
func TestIngestPipeline_InvalidPostSkipped(t *testing.T) {
	now := time.Now().Unix()
	fetcher := &mockFetcher{posts: []domain.RawPost{
		{ID: "", Title: "no id", Body: "", CreatedAt: now, Permalink: "https://example.com/x"},
		{ID: "p1", Title: "I love it", Body: "amazing", CreatedAt: now, Permalink: "https://example.com/p1"},
	}}
	store := memory.NewPostStore()
	pipeline := newTestPipeline(fetcher, store)

	report, err := pipeline.Run(context.Background(), "technology", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Written)
}

// TestIngestPipeline_InvalidArguments tests argument validation.
func TestIngestPipeline_InvalidArguments(t *testing.T) {
	pipeline := newTestPipeline(&mockFetcher{}, memory.NewPostStore())

	_, err := pipeline.Run(context.Background(), "", nil, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = pipeline.Run(context.Background(), "technology", nil, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = pipeline.Run(context.Background(), "technology", nil, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

// TestIngestPipeline_StoreFailure tests that store errors surface.
func TestIngestPipeline_StoreFailure(t *testing.T) {
	fetcher := &mockFetcher{posts: []domain.RawPost{
		{ID: "p1", Title: "t", Body: "b", CreatedAt: 1, Permalink: "https://example.com/p1"},
	}}
	pipeline := NewIngestPipeline(fetcher, NewClassifier(&stubScorer{}), &failingStore{})

	_, err := pipeline.Run(context.Background(), "technology", nil, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

// failingStore implements driven.PostStore and fails every call.
type failingStore struct{}

func (f *failingStore) SavePosts(context.Context, []domain.Post) (int, error) {
	return 0, domain.ErrStorageUnavailable
}
func (f *failingStore) GetPost(context.Context, string) (*domain.Post, error) {
	return nil, domain.ErrStorageUnavailable
}
func (f *failingStore) UpdateSummaries(context.Context, string, string, string) error {
	return domain.ErrStorageUnavailable
}
func (f *failingStore) SetTextSummaryIfUnset(context.Context, string, string) (bool, error) {
	return false, domain.ErrStorageUnavailable
}
func (f *failingStore) SetCommentSummaryIfUnset(context.Context, string, string) (bool, error) {
	return false, domain.ErrStorageUnavailable
}
func (f *failingStore) Summary(context.Context) (*domain.SentimentSummary, error) {
	return nil, domain.ErrStorageUnavailable
}
func (f *failingStore) DailyCounts(context.Context, int) ([]domain.DailyCount, error) {
	return nil, domain.ErrStorageUnavailable
}
func (f *failingStore) TopPosts(context.Context, domain.Label, int, int) ([]domain.Post, error) {
	return nil, domain.ErrStorageUnavailable
}
func (f *failingStore) Close() error { return errors.New("closed") }
