package domain

import "fmt"

// Label is the three-way sentiment bucket derived from the compound score.
type Label string

const (
	// LabelPositive marks posts with a compound score >= 0.05.
	LabelPositive Label = "Positive"

	// LabelNeutral marks posts between the two thresholds.
	LabelNeutral Label = "Neutral"

	// LabelNegative marks posts with a compound score <= -0.05.
	LabelNegative Label = "Negative"
)

// Classification thresholds on the compound score.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// LabelForScore buckets a compound score into a Label.
// The thresholds are fixed; score and label must never disagree.
func LabelForScore(score float64) Label {
	switch {
	case score >= PositiveThreshold:
		return LabelPositive
	case score <= NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// ParseLabel converts external input into a Label.
// Returns ErrInvalidArgument for unknown values.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case LabelPositive, LabelNeutral, LabelNegative:
		return Label(s), nil
	default:
		return "", fmt.Errorf("%w: unknown label %q", ErrInvalidArgument, s)
	}
}

// SentimentScores is the full output of a scorer over one text.
// Compound is the single scalar in [-1, 1] used for classification;
// the per-polarity proportions are kept for diagnostics.
type SentimentScores struct {
	// Compound summarises overall polarity in [-1, 1].
	Compound float64

	// Positive, Neutral and Negative are the proportion of the text
	// falling into each polarity. They sum to roughly 1.
	Positive float64
	Neutral  float64
	Negative float64
}
