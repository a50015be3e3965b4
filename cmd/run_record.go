package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/pipeline"
	"github.com/sells-group/leadgen-cli/internal/store"
)

// storeHandle wraps the optional run record. All methods tolerate a nil
// store so --no-store runs need no branching at the call sites.
type storeHandle struct {
	store store.Store
	runID string
}

func (h *storeHandle) fail(ctx context.Context, cause error) {
	if h.store == nil {
		return
	}
	if err := h.store.FailRun(ctx, h.runID, cause.Error()); err != nil {
		zap.L().Warn("record run failure", zap.Error(err))
	}
}

func (h *storeHandle) complete(ctx context.Context, result *pipeline.Result) {
	if h.store == nil {
		return
	}
	if _, err := h.store.InsertLeads(ctx, h.runID, result.Leads); err != nil {
		zap.L().Warn("record leads", zap.Error(err))
	}
	runResult := &model.RunResult{
		PlacesFound: len(result.Summaries),
		Leads:       len(result.Leads),
		Stats:       result.Stats,
		Incomplete:  result.Incomplete,
		TruncatedBy: result.TruncatedBy,
		Transient:   result.Transient,
		Elapsed:     result.Elapsed,
	}
	if err := h.store.CompleteRun(ctx, h.runID, runResult); err != nil {
		zap.L().Warn("record run completion", zap.Error(err))
	}
}
