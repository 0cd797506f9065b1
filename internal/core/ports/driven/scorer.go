package driven

import "github.com/sentimark/sentimark/internal/core/domain"

// Scorer produces sentiment scores for a piece of text.
//
// Score must be total: it never fails, and accepts arbitrary UTF-8
// input including the empty string. Implementations are pure and
// perform no I/O, so there is no context or error in the signature.
type Scorer interface {
	// Score returns the sentiment breakdown for text.
	// The Compound field is always within [-1, 1].
	Score(text string) domain.SentimentScores
}
