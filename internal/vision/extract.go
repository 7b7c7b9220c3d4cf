package vision

import (
	"context"
	"log/slog"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/llm"
	"github.com/Hustada/dynastylab/internal/metrics"
)

// Extractor pulls structured data out of a screenshot whose screen type is
// already known.
type Extractor struct {
	client llm.VisionClient
	logger *slog.Logger
}

// NewExtractor builds an extractor. A nil client means offline mode.
func NewExtractor(client llm.VisionClient, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{client: client, logger: logger}
}

// Extract returns the typed variant for screenType. ScreenUnknown
// short-circuits to an empty structure without touching the model. Every
// failure mode (no credential, call error, unparseable or schema-violating
// output) substitutes the deterministic mock payload — this stage never
// throws past an unusable image reference, so routing and review always have
// something to work with.
func (e *Extractor) Extract(ctx context.Context, img Image, screenType constants.ScreenType, detectedTeam string) (ExtractedData, error) {
	if screenType == constants.ScreenUnknown {
		return ExtractedData{ScreenType: constants.ScreenUnknown}, nil
	}

	if e.client == nil || !e.client.Configured() {
		e.logger.Info("extract.offline", "image", img.Ref(), "screen_type", screenType)
		return MockExtraction(screenType), nil
	}

	dataURL, err := img.DataURL()
	if err != nil {
		return ExtractedData{}, err
	}

	raw, err := e.client.Complete(ctx, llm.VisionRequest{
		Instruction:  InstructionFor(screenType, detectedTeam),
		ImageDataURL: dataURL,
	})
	if err != nil {
		e.logger.Warn("extract.call_failed", "image", img.Ref(), "screen_type", screenType, "error", err)
		return e.fallback(screenType), nil
	}

	doc, strategy, err := llm.DecodeJSON(raw)
	if err != nil {
		e.logger.Warn("extract.unparseable", "image", img.Ref(), "screen_type", screenType, "raw_bytes", len(raw))
		return e.fallback(screenType), nil
	}
	if strategy != "strict" {
		e.logger.Debug("extract.recovered", "image", img.Ref(), "strategy", strategy)
	}

	if err := ValidateJSONAgainstSchema(SchemaFor(screenType), doc); err != nil {
		e.logger.Warn("extract.schema_violation", "image", img.Ref(), "screen_type", screenType, "error", err)
		return e.fallback(screenType), nil
	}

	data, err := decodeVariant(screenType, doc)
	if err != nil {
		e.logger.Warn("extract.decode_failed", "image", img.Ref(), "screen_type", screenType, "error", err)
		return e.fallback(screenType), nil
	}

	e.logger.Info("extract.ok", "image", img.Ref(), "screen_type", screenType)
	return data, nil
}

func (e *Extractor) fallback(screenType constants.ScreenType) ExtractedData {
	metrics.ExtractionFallbacks.WithLabelValues(string(screenType)).Inc()
	return MockExtraction(screenType)
}
