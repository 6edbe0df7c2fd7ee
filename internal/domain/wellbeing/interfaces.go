package wellbeing

// Scorer maps snapshot signals to a wellbeing summary. ThresholdScorer is the
// built-in implementation; a trained model can replace it behind this interface.
type Scorer interface {
	Score(signals Signals) Summary
}
