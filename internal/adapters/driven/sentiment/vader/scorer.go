// Package vader scores text with the VADER lexicon, a rule-based model
// tuned for short social-media language.
package vader

import (
	"sync"

	"github.com/jonreiter/govader"

	"github.com/sentimark/sentimark/internal/core/domain"
	"github.com/sentimark/sentimark/internal/core/ports/driven"
)

// Scorer wraps a VADER analyzer behind the scorer port.
type Scorer struct {
	mu       sync.Mutex
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ driven.Scorer = (*Scorer)(nil)

// NewScorer creates a scorer with the default VADER lexicon.
func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns polarity scores for the given text. VADER is total over
// its input: empty or unrecognised text scores neutral.
func (s *Scorer) Score(text string) domain.SentimentScores {
	// The analyzer mutates internal state while scoring.
	s.mu.Lock()
	result := s.analyzer.PolarityScores(text)
	s.mu.Unlock()

	return domain.SentimentScores{
		Compound: result.Compound,
		Positive: result.Positive,
		Neutral:  result.Neutral,
		Negative: result.Negative,
	}
}
