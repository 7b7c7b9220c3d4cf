package vision

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/llm"
	"github.com/Hustada/dynastylab/internal/metrics"
)

// Classifier decides which in-game screen a screenshot depicts.
type Classifier struct {
	client llm.VisionClient
	logger *slog.Logger
}

// NewClassifier builds a classifier. A nil client means offline mode.
func NewClassifier(client llm.VisionClient, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{client: client, logger: logger}
}

// Classify produces a ClassificationResult for the image. It never returns an
// error for model or parse failures: those degrade to deterministic results
// so one bad screenshot cannot abort a batch. The only errors surfaced are
// unusable image references.
func (c *Classifier) Classify(ctx context.Context, img Image) (ClassificationResult, error) {
	if c.client == nil || !c.client.Configured() {
		c.logger.Info("classify.offline", "image", img.Ref())
		return OfflineClassification(), nil
	}

	dataURL, err := img.DataURL()
	if err != nil {
		return ClassificationResult{}, err
	}

	raw, err := c.client.Complete(ctx, llm.VisionRequest{
		Instruction:  classificationInstruction,
		ImageDataURL: dataURL,
	})
	if err != nil {
		c.logger.Warn("classify.call_failed", "image", img.Ref(), "error", err)
		metrics.ClassificationFallbacks.Inc()
		return FallbackClassification(), nil
	}

	result, ok := parseClassification(raw)
	if !ok {
		c.logger.Warn("classify.unparseable", "image", img.Ref(), "raw_bytes", len(raw))
		metrics.ClassificationFallbacks.Inc()
		return FallbackClassification(), nil
	}

	c.logger.Info("classify.ok",
		"image", img.Ref(),
		"screen_type", result.ScreenType,
		"confidence", result.Confidence,
		"team", result.DetectedTeam,
	)
	return result, nil
}

func parseClassification(raw string) (ClassificationResult, bool) {
	doc, _, err := llm.DecodeJSON(raw)
	if err != nil {
		return ClassificationResult{}, false
	}

	var payload struct {
		ScreenType   string   `json:"screenType"`
		Confidence   *float64 `json:"confidence"`
		DetectedTeam *string  `json:"detectedTeam"`
	}
	if err := json.Unmarshal(doc, &payload); err != nil {
		return ClassificationResult{}, false
	}
	if payload.ScreenType == "" || payload.Confidence == nil {
		return ClassificationResult{}, false
	}

	result := ClassificationResult{
		ScreenType: constants.ParseScreenType(payload.ScreenType),
		Confidence: clamp01(*payload.Confidence),
	}
	if payload.DetectedTeam != nil {
		result.DetectedTeam = *payload.DetectedTeam
	}
	return result, true
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
