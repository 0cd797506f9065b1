package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentimark/sentimark/internal/adapters/driven/storage/memory"
	"github.com/sentimark/sentimark/internal/core/domain"
	"github.com/sentimark/sentimark/internal/core/services"
)

// stubFetcher implements driven.Fetcher with canned posts.
type stubFetcher struct {
	posts []domain.RawPost
}

func (f *stubFetcher) Fetch(_ context.Context, _ string, limit int) ([]domain.RawPost, error) {
	if len(f.posts) > limit {
		return f.posts[:limit], nil
	}
	return f.posts, nil
}

// stubScorer implements driven.Scorer with a fixed score.
type stubScorer struct {
	compound float64
}

func (s *stubScorer) Score(string) domain.SentimentScores {
	return domain.SentimentScores{Compound: s.compound}
}

// stubSummarizer implements driven.Summarizer with fixed output.
type stubSummarizer struct{}

func (stubSummarizer) SummarizeDocument(context.Context, string, string) (string, error) {
	return "post summary", nil
}

func (stubSummarizer) SummarizeComments(context.Context, []string) (string, error) {
	return "comment summary", nil
}

// execute runs the CLI against in-memory services and returns output.
func execute(t *testing.T, store *memory.PostStore, args ...string) (string, error) {
	t.Helper()

	fetcher := &stubFetcher{posts: []domain.RawPost{
		{ID: "p1", Title: "great stuff", CreatedAt: time.Now().Unix(), Permalink: "https://e.com/p1"},
	}}
	testWire := func(_, _ string) (*Deps, error) {
		return &Deps{
			Ingestor:   services.NewIngestPipeline(fetcher, services.NewClassifier(&stubScorer{compound: 0.7}), store),
			Insights:   services.NewInsightsService(store),
			Summaries:  services.NewSummaryCache(store, stubSummarizer{}),
			ListenAddr: ":0",
			Defaults:   IngestDefaults{Subreddit: "technology", Limit: 100},
		}, nil
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := Execute(testWire)
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, memory.NewPostStore(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sentimark version dev")
}

func TestIngestCmd(t *testing.T) {
	store := memory.NewPostStore()

	out, err := execute(t, store, "ingest")
	require.NoError(t, err)
	assert.Contains(t, out, "Ingesting r/technology")
	assert.Contains(t, out, "written 1")

	stored, err := store.GetPost(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.LabelPositive, stored.Label)
}

func TestIngestCmd_SubredditFlag(t *testing.T) {
	out, err := execute(t, memory.NewPostStore(), "ingest", "--subreddit", "golang")
	require.NoError(t, err)
	assert.Contains(t, out, "Ingesting r/golang")
}

func TestStatsCmd(t *testing.T) {
	store := memory.NewPostStore()
	_, err := store.SavePosts(context.Background(), []domain.Post{{
		ID: "p1", Title: "t", CreatedAt: time.Now().Unix(),
		Permalink: "https://e.com/p1", SentimentScore: 0.7, Label: domain.LabelPositive,
	}})
	require.NoError(t, err)

	out, err := execute(t, store, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "1 total")
	assert.Contains(t, out, "1 positive")
}

func TestTopCmd(t *testing.T) {
	store := memory.NewPostStore()
	_, err := store.SavePosts(context.Background(), []domain.Post{{
		ID: "p1", Title: "the best post", CreatedAt: time.Now().Unix(),
		Permalink: "https://e.com/p1", SentimentScore: 0.9, Label: domain.LabelPositive,
	}})
	require.NoError(t, err)

	out, err := execute(t, store, "top", "--label", "Positive")
	require.NoError(t, err)
	assert.Contains(t, out, "the best post")

	_, err = execute(t, store, "top", "--label", "Mixed")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSummariseCmd(t *testing.T) {
	store := memory.NewPostStore()
	_, err := store.SavePosts(context.Background(), []domain.Post{{
		ID: "p1", Title: "t", Comments: []string{"c"}, CreatedAt: time.Now().Unix(),
		Permalink: "https://e.com/p1",
	}})
	require.NoError(t, err)

	out, err := execute(t, store, "summarise", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "post summary")
	assert.Contains(t, out, "comment summary")

	_, err = execute(t, store, "summarise", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
