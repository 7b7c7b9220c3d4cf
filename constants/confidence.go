package constants

// Confidence thresholds for labeling classification results in the review UI.
const (
	HighConfidenceThreshold   = 0.9
	MediumConfidenceThreshold = 0.7

	// FallbackConfidence is reported when classification output could not be
	// parsed and the stage degraded to the unknown result.
	FallbackConfidence = 0.5
)

// ConfidenceLabel buckets a classification confidence for display.
func ConfidenceLabel(confidence float64) string {
	switch {
	case confidence >= HighConfidenceThreshold:
		return "High"
	case confidence >= MediumConfidenceThreshold:
		return "Medium"
	default:
		return "Low"
	}
}
