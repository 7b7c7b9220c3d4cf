package vision

import "github.com/Hustada/dynastylab/constants"

// ClassificationResult is what the classification stage produces for one
// screenshot. DetectedTeam is empty when the screen is not team-specific or
// the model could not identify one.
type ClassificationResult struct {
	ScreenType   constants.ScreenType `json:"screenType"`
	Confidence   float64              `json:"confidence"`
	DetectedTeam string               `json:"detectedTeam,omitempty"`
}

// ConfidenceLabel buckets the advisory confidence for UI display.
func (r ClassificationResult) ConfidenceLabel() string {
	return constants.ConfidenceLabel(r.Confidence)
}
