package domain

import "fmt"

// Post is the persisted unit: one ingested post plus its comment thread.
//
// SentimentScore and Label are set exactly once at ingestion and are
// always consistent with LabelForScore. TextSummary and CommentSummary
// start unset and are each filled at most once by the summary cache.
type Post struct {
	// ID is globally unique per source and is the primary key.
	ID string `json:"id"`

	// Title is the post title.
	Title string `json:"title"`

	// Body is the post body text. May be empty.
	Body string `json:"body"`

	// Comments are the raw comment bodies in source order.
	// Persisted as a single newline-joined blob.
	Comments []string `json:"comments,omitempty"`

	// CreatedAt is the source-supplied Unix timestamp (seconds).
	// Immutable; the sole ordering key for windowed queries.
	CreatedAt int64 `json:"created_utc"`

	// Permalink is the canonical URL of the post. Immutable.
	Permalink string `json:"permalink"`

	// SentimentScore is the compound sentiment score in [-1, 1].
	SentimentScore float64 `json:"sentiment"`

	// Label is the bucketed sentiment derived from SentimentScore.
	Label Label `json:"label"`

	// TextSummary is the lazily generated post summary. Nil until set.
	TextSummary *string `json:"text_summary,omitempty"`

	// CommentSummary is the lazily generated comment-thread summary.
	// Nil until set.
	CommentSummary *string `json:"comment_summary,omitempty"`
}

// Validate checks the fields required before a post may be stored.
// Title and body may be empty; identity and ordering fields may not.
func (p *Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidPost)
	}
	if p.Permalink == "" {
		return fmt.Errorf("%w: missing permalink (post %s)", ErrInvalidPost, p.ID)
	}
	if p.CreatedAt <= 0 {
		return fmt.Errorf("%w: missing created timestamp (post %s)", ErrInvalidPost, p.ID)
	}
	return nil
}

// Text returns the title and body joined the way the classifier
// consumes them: title first, separated by a single space.
func (p *Post) Text() string {
	return p.Title + " " + p.Body
}

// RawPost is a post as produced by a fetcher, before classification.
type RawPost struct {
	// ID is the source-assigned identifier.
	ID string

	// Title is the post title.
	Title string

	// Body is the post body text. May be empty.
	Body string

	// CreatedAt is the source-supplied Unix timestamp (seconds).
	CreatedAt int64

	// Permalink is the canonical URL of the post.
	Permalink string

	// Comments are the raw comment bodies in source order.
	Comments []string
}
