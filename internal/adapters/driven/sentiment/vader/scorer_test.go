package vader

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sentimark/sentimark/internal/core/domain"
)

// TestScore tests polarity direction on clearly signed text.
func TestScore(t *testing.T) {
	scorer := NewScorer()

	positive := scorer.Score("I absolutely love this, it is amazing and wonderful!")
	assert.Greater(t, positive.Compound, domain.PositiveThreshold)
	assert.Equal(t, domain.LabelPositive, domain.LabelForScore(positive.Compound))

	negative := scorer.Score("This is terrible, I hate it, worst experience ever.")
	assert.Less(t, negative.Compound, domain.NegativeThreshold)
	assert.Equal(t, domain.LabelNegative, domain.LabelForScore(negative.Compound))
}

// TestScore_Neutral tests that empty and flat text score neutral.
func TestScore_Neutral(t *testing.T) {
	scorer := NewScorer()

	assert.Equal(t, 0.0, scorer.Score("").Compound)

	flat := scorer.Score("the table has four legs")
	assert.Equal(t, domain.LabelNeutral, domain.LabelForScore(flat.Compound))
}

// TestScore_Deterministic tests that repeated scoring is stable.
func TestScore_Deterministic(t *testing.T) {
	scorer := NewScorer()
	text := "pretty good overall, some rough edges"

	first := scorer.Score(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, scorer.Score(text))
	}
}

// TestScore_Concurrent tests that the scorer is safe for parallel use.
func TestScore_Concurrent(t *testing.T) {
	scorer := NewScorer()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				scorer.Score("concurrent scoring should not race")
			}
		}()
	}
	wg.Wait()
}
