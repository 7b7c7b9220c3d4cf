package pipeline

import (
	"context"
	"log/slog"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/vision"
)

// BatchItem tracks one screenshot through a batch run.
type BatchItem struct {
	Path   string               `json:"path"`
	Status constants.ItemStatus `json:"status"`
	Result *AnalysisResult      `json:"result,omitempty"`
	Err    string               `json:"error,omitempty"`
}

// BatchStats aggregates a batch run.
type BatchStats struct {
	Total          int `json:"total"`
	Committed      int `json:"committed"`
	AwaitingReview int `json:"awaiting_review"`
	Failed         int `json:"failed"`
}

// BatchRunner drives the orchestrator across a set of screenshots, strictly
// sequentially: each item fully completes before the next begins, so events
// for item i always precede events for item i+1. One item's failure never
// stops the batch.
type BatchRunner struct {
	orch   *Orchestrator
	logger *slog.Logger
}

func NewBatchRunner(orch *Orchestrator, logger *slog.Logger) *BatchRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchRunner{orch: orch, logger: logger}
}

// Run processes paths in order. With autoApprove true every item commits
// immediately; otherwise items stop after analysis for later review.
func (b *BatchRunner) Run(ctx context.Context, paths []string, autoApprove bool) ([]BatchItem, BatchStats) {
	items := make([]BatchItem, 0, len(paths))
	var stats BatchStats
	stats.Total = len(paths)

	for _, path := range paths {
		item := BatchItem{Path: path, Status: constants.ItemStatusAnalyzing}

		result, err := b.orch.ProcessScreenshot(ctx, vision.ImageFromFile(path), !autoApprove)
		if err != nil {
			b.logger.Warn("batch.item_failed", "path", path, "error", err)
			item.Status = constants.ItemStatusError
			item.Err = err.Error()
			stats.Failed++
			items = append(items, item)
			continue
		}

		item.Result = result
		if autoApprove {
			item.Status = constants.ItemStatusCommitted
			stats.Committed++
		} else {
			item.Status = constants.ItemStatusAwaitingReview
			stats.AwaitingReview++
		}
		items = append(items, item)
	}

	b.logger.Info("batch.done",
		"total", stats.Total,
		"committed", stats.Committed,
		"awaiting_review", stats.AwaitingReview,
		"failed", stats.Failed,
	)
	return items, stats
}
