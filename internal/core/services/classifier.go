package services

import (
	"github.com/sentimark/sentimark/internal/core/domain"
	"github.com/sentimark/sentimark/internal/core/ports/driven"
)

// Classifier maps post text to a compound sentiment score and label.
// Pure and deterministic for a deterministic scorer: no I/O, no
// failure mode. The scorer is assumed total over any string input.
type Classifier struct {
	scorer driven.Scorer
}

// NewClassifier creates a classifier backed by the given scorer.
func NewClassifier(scorer driven.Scorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// Classify scores the concatenation of title and body (title first,
// separated by a single space; a missing body is treated as empty)
// and buckets the compound score into a label.
func (c *Classifier) Classify(title, body string) (float64, domain.Label) {
	scores := c.scorer.Score(title + " " + body)
	return scores.Compound, domain.LabelForScore(scores.Compound)
}
