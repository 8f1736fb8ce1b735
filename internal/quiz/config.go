package quiz

// DefaultReviewProbability is the chance that a question revisits one of
// the learner's outstanding mistakes when any exist.
const DefaultReviewProbability = 0.4

// Config controls focus selection.
type Config struct {
	// ReviewProbability is the chance in [0, 1] of drawing the focus item
	// from the mistakes list instead of the whole bank.
	ReviewProbability float64
}

// DefaultConfig returns a Config with the standard review weighting.
func DefaultConfig() Config {
	return Config{ReviewProbability: DefaultReviewProbability}
}
