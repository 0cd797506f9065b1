package driven

import "context"

// Summarizer generates natural-language summaries via an external
// model. Calls are slow (seconds) and fallible; callers bound them
// with a context deadline. Failure is distinguishable from a
// successfully produced empty string: an error return means no
// summary was generated.
type Summarizer interface {
	// SummarizeDocument summarises a post's title and body.
	SummarizeDocument(ctx context.Context, title, body string) (string, error)

	// SummarizeComments summarises a comment thread. The caller is
	// responsible for any sampling; the slice is used as given.
	SummarizeComments(ctx context.Context, comments []string) (string, error)
}
