// Package entity defines the domain model for the prediction feature.
package entity

// Confidence tiers shown to the user alongside a probability. The
// thresholds match the result card colors of the original field app.
const (
	ConfidenceHigh   = "high"   // probability > 0.7
	ConfidenceMedium = "medium" // probability > 0.5
	ConfidenceLow    = "low"
)

// BreedScore is one ranked classification candidate.
type BreedScore struct {
	Breed       string  // catalog breed name
	Probability float32 // post-softmax probability in [0, 1]
}

// ConfidenceTier maps the probability to a coarse display tier.
func (s BreedScore) ConfidenceTier() string {
	switch {
	case s.Probability > 0.7:
		return ConfidenceHigh
	case s.Probability > 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
