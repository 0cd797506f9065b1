// Package reddit fetches posts and comment threads from the public
// Reddit JSON listings, without authentication.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sentimark/sentimark/internal/core/domain"
	"github.com/sentimark/sentimark/internal/core/ports/driven"
	"github.com/sentimark/sentimark/internal/logger"
)

const (
	// DefaultBaseURL is the public Reddit endpoint.
	DefaultBaseURL = "https://www.reddit.com"

	// DefaultUserAgent identifies the client to Reddit. Unidentified
	// clients get aggressively throttled.
	DefaultUserAgent = "sentimark/1.0"

	// requestsPerSecond is the proactive throttle for unauthenticated
	// access. Reddit allows roughly 10/minute for anonymous clients.
	requestsPerSecond = 0.15

	// commentFetchLimit caps comments requested per post.
	commentFetchLimit = 100

	requestTimeout = 30 * time.Second
)

// Client fetches posts from a subreddit's newest listing.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

var _ driven.Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Reddit endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit overrides the proactive request rate.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewClient creates a Reddit listing client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listing is the envelope Reddit wraps around every JSON response.
type listing struct {
	Data struct {
		Children []struct {
			Data json.RawMessage `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// postData is the subset of a post's fields the pipeline needs.
type postData struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	SelfText   string  `json:"selftext"`
	CreatedUTC float64 `json:"created_utc"`
	Permalink  string  `json:"permalink"`
}

// commentData is the subset of a comment's fields the pipeline needs.
type commentData struct {
	Body string `json:"body"`
}

// Fetch returns up to limit of the newest posts in the given subreddit,
// each with its comment thread. A failed comment fetch degrades that
// post to an empty thread rather than failing the whole listing.
func (c *Client) Fetch(ctx context.Context, subreddit string, limit int) ([]domain.RawPost, error) {
	listingURL := fmt.Sprintf("%s/r/%s/new.json?limit=%d",
		c.baseURL, url.PathEscape(subreddit), limit)

	var posts listing
	if err := c.getJSON(ctx, listingURL, &posts); err != nil {
		return nil, fmt.Errorf("fetching r/%s listing: %w", subreddit, err)
	}

	raw := make([]domain.RawPost, 0, len(posts.Data.Children))
	for _, child := range posts.Data.Children {
		var post postData
		if err := json.Unmarshal(child.Data, &post); err != nil {
			logger.Warn("reddit: skipping malformed post in r/%s: %v", subreddit, err)
			continue
		}

		comments, err := c.fetchComments(ctx, post.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("reddit: comments for %s unavailable: %v", post.ID, err)
			comments = nil
		}

		raw = append(raw, domain.RawPost{
			ID:        post.ID,
			Title:     post.Title,
			Body:      post.SelfText,
			Comments:  comments,
			CreatedAt: int64(post.CreatedUTC),
			Permalink: c.absolutePermalink(post.Permalink),
		})
		if len(raw) == limit {
			break
		}
	}
	return raw, nil
}

// fetchComments returns the flattened top-level comment bodies of a post.
func (c *Client) fetchComments(ctx context.Context, postID string) ([]string, error) {
	commentsURL := fmt.Sprintf("%s/comments/%s.json?limit=%d",
		c.baseURL, url.PathEscape(postID), commentFetchLimit)

	// The comments endpoint returns two listings: the post itself,
	// then the comment tree.
	var payload []listing
	if err := c.getJSON(ctx, commentsURL, &payload); err != nil {
		return nil, err
	}
	if len(payload) < 2 {
		return nil, nil
	}

	var comments []string
	for _, child := range payload[1].Data.Children {
		var comment commentData
		if err := json.Unmarshal(child.Data, &comment); err != nil {
			continue
		}
		body := strings.TrimSpace(comment.Body)
		if body == "" || body == "[deleted]" || body == "[removed]" {
			continue
		}
		// Flatten so the thread survives a newline-delimited column.
		comments = append(comments, strings.ReplaceAll(body, "\n", " "))
	}
	return comments, nil
}

// getJSON performs a rate-limited GET and decodes the response body.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		// A nonexistent subreddit, not an infrastructure failure.
		return fmt.Errorf("%w: status %d", domain.ErrNotFound, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: status %d", domain.ErrInvalidArgument, resp.StatusCode)
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) absolutePermalink(permalink string) string {
	if strings.HasPrefix(permalink, "http://") || strings.HasPrefix(permalink, "https://") {
		return permalink
	}
	return DefaultBaseURL + permalink
}
