package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/metrics"
	"github.com/Hustada/dynastylab/internal/vision"
)

// AnalysisResult is the orchestrator's unit of output for one screenshot:
// what the reviewer approves or rejects. It is never mutated after being
// produced; routing consumes the embedded data by value.
type AnalysisResult struct {
	ScreenType       constants.ScreenType   `json:"screenType"`
	Confidence       float64                `json:"confidence"`
	DetectedTeam     string                 `json:"detectedTeam,omitempty"`
	Data             vision.ExtractedData   `json:"data"`
	SuggestedActions []string               `json:"suggestedActions"`
	RelatedScreens   []constants.ScreenType `json:"relatedScreens"`
}

// Orchestrator sequences classification, extraction, routing, and trigger
// evaluation for one screenshot, and emits a typed event stream along the
// way. All collaborators are injected; there is no ambient global state.
type Orchestrator struct {
	classifier *vision.Classifier
	extractor  *vision.Extractor
	router     *Router
	events     broadcaster
	logger     *slog.Logger
}

func NewOrchestrator(classifier *vision.Classifier, extractor *vision.Extractor, router *Router, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		classifier: classifier,
		extractor:  extractor,
		router:     router,
		logger:     logger,
	}
}

// Subscribe registers a callback for every subsequent event and returns an
// unsubscribe function. There is no replay: subscribe before processing.
func (o *Orchestrator) Subscribe(fn func(Event)) func() {
	return o.events.subscribe(fn)
}

// ProcessScreenshot runs classify then extract, emitting events for each.
// With skipRouting true (human-review mode) it stops there and no store is
// touched; the caller commits later via RouteExtractedData. With skipRouting
// false it routes and evaluates triggers before returning.
//
// Errors inside classify/extract emit an error event and are returned; a
// batch caller is expected to catch per item and continue. The per-stage
// fallbacks make that path rare.
func (o *Orchestrator) ProcessScreenshot(ctx context.Context, img vision.Image, skipRouting bool) (*AnalysisResult, error) {
	start := time.Now()

	classification, err := o.classifier.Classify(ctx, img)
	if err != nil {
		o.emitError(constants.ScreenUnknown, fmt.Errorf("classify: %w", err))
		return nil, fmt.Errorf("classify: %w", err)
	}
	o.events.emit(Event{
		Type:       EventScreenIdentified,
		ScreenType: classification.ScreenType,
		Data:       classification,
		Message: fmt.Sprintf("Identified %s (%s confidence)",
			classification.ScreenType, classification.ConfidenceLabel()),
	})

	data, err := o.extractor.Extract(ctx, img, classification.ScreenType, classification.DetectedTeam)
	if err != nil {
		o.emitError(classification.ScreenType, fmt.Errorf("extract: %w", err))
		return nil, fmt.Errorf("extract: %w", err)
	}
	o.events.emit(Event{
		Type:       EventDataExtracted,
		ScreenType: data.ScreenType,
		Data:       data,
		Message:    fmt.Sprintf("Extracted %s data", data.ScreenType),
	})

	metrics.ScreenshotsProcessed.WithLabelValues(string(data.ScreenType)).Inc()
	metrics.ProcessingSeconds.Observe(time.Since(start).Seconds())

	result := &AnalysisResult{
		ScreenType:       classification.ScreenType,
		Confidence:       classification.Confidence,
		DetectedTeam:     classification.DetectedTeam,
		Data:             data,
		SuggestedActions: SuggestedActions(classification.ScreenType),
		RelatedScreens:   RelatedScreens(classification.ScreenType),
	}

	if skipRouting {
		o.logger.Info("orchestrator.analyzed",
			"image", img.Ref(),
			"screen_type", result.ScreenType,
			"confidence", result.Confidence,
		)
		return result, nil
	}

	if err := o.RouteExtractedData(ctx, data); err != nil {
		return result, err
	}
	return result, nil
}

// RouteExtractedData is the commit half of the two-phase flow: route the
// approved data into its store, then evaluate content triggers. Failures
// here propagate — once a human approved data for commit, a failure to
// commit it must surface.
func (o *Orchestrator) RouteExtractedData(ctx context.Context, data vision.ExtractedData) error {
	written, err := o.router.Route(ctx, data)
	if err != nil {
		o.emitError(data.ScreenType, fmt.Errorf("route: %w", err))
		return err
	}
	o.events.emit(Event{
		Type:       EventDataRouted,
		ScreenType: data.ScreenType,
		Message:    fmt.Sprintf("Routed %d record(s) from %s", written, data.ScreenType),
	})

	for _, trigger := range EvaluateTriggers(data) {
		metrics.TriggersFired.WithLabelValues(string(data.ScreenType)).Inc()
		o.events.emit(Event{
			Type:       EventContentTriggered,
			ScreenType: data.ScreenType,
			Data:       trigger,
			Message:    trigger.Message,
		})
	}
	return nil
}

func (o *Orchestrator) emitError(st constants.ScreenType, err error) {
	o.logger.Error("orchestrator.stage_failed", "screen_type", st, "error", err)
	o.events.emit(Event{
		Type:       EventError,
		ScreenType: st,
		Message:    err.Error(),
	})
}
