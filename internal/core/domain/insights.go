package domain

// SentimentSummary aggregates over all stored posts regardless of age.
// On an empty store every field is zero; AverageScore is never NaN.
type SentimentSummary struct {
	// PositiveCount, NeutralCount and NegativeCount are per-label totals.
	PositiveCount int `json:"positive_count"`
	NeutralCount  int `json:"neutral_count"`
	NegativeCount int `json:"negative_count"`

	// TotalCount is the number of stored posts.
	TotalCount int `json:"total_count"`

	// AverageScore is the arithmetic mean of the compound scores.
	AverageScore float64 `json:"average_score"`
}

// DailyCount is the per-label post count for one calendar day (UTC).
// Days with no posts are omitted from results, not zero-filled.
type DailyCount struct {
	// Day is the calendar day in YYYY-MM-DD form.
	Day string `json:"day"`

	// Positive, Neutral and Negative are the per-label counts.
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// PostSummaries is the pair of derived summaries for one post.
type PostSummaries struct {
	// TextSummary is the generated summary of the post text.
	TextSummary string `json:"text_summary"`

	// CommentSummary is the generated summary of the comment thread,
	// or the fixed sentinel when the thread is empty.
	CommentSummary string `json:"comment_summary"`
}
