package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentimark/sentimark/internal/core/domain"
)

func newTestSummarizer(t *testing.T, handler http.Handler) *Summarizer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s, err := NewSummarizer(Config{APIKey: "sk-test", BaseURL: server.URL})
	require.NoError(t, err)
	return s
}

// TestSummarizeDocument tests the request shape and response extraction.
func TestSummarizeDocument(t *testing.T) {
	var gotReq messagesRequest
	s := newTestSummarizer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprint(w, `{"content":[{"type":"text","text":"  a tidy summary  "}]}`)
	}))

	summary, err := s.SummarizeDocument(context.Background(), "the title", "the body")
	require.NoError(t, err)
	assert.Equal(t, "a tidy summary", summary)

	require.Len(t, gotReq.Messages, 1)
	assert.Contains(t, gotReq.Messages[0].Content, "the title")
	assert.Contains(t, gotReq.Messages[0].Content, "the body")
	assert.Equal(t, DefaultModel, gotReq.Model)
}

// TestSummarizeComments tests that all comments reach the prompt.
func TestSummarizeComments(t *testing.T) {
	var gotReq messagesRequest
	s := newTestSummarizer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprint(w, `{"content":[{"type":"text","text":"opinions vary"}]}`)
	}))

	summary, err := s.SummarizeComments(context.Background(), []string{"love it", "hate it"})
	require.NoError(t, err)
	assert.Equal(t, "opinions vary", summary)
	assert.Contains(t, gotReq.Messages[0].Content, "love it")
	assert.Contains(t, gotReq.Messages[0].Content, "hate it")
}

// TestSummarize_Overloaded tests the 529/5xx upstream mapping.
func TestSummarize_Overloaded(t *testing.T) {
	s := newTestSummarizer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(529)
	}))

	_, err := s.SummarizeDocument(context.Background(), "t", "b")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

// TestSummarize_APIError tests the structured error path.
func TestSummarize_APIError(t *testing.T) {
	s := newTestSummarizer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"type":"invalid_request_error","message":"bad prompt"}}`)
	}))

	_, err := s.SummarizeDocument(context.Background(), "t", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad prompt")
	assert.NotErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

// TestNewSummarizer_RequiresKey tests construction validation.
func TestNewSummarizer_RequiresKey(t *testing.T) {
	_, err := NewSummarizer(Config{})
	assert.Error(t, err)
}
