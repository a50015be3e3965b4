// Package pipeline implements the lead-acquisition flow: paginated
// deduplicated search, batched concurrent enrichment with bounded retry,
// filtering, and aggregation. All rate-limit compliance waits go through an
// injectable Sleeper and are attributed to a DelayClass.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/places"
)

// Pipeline wires the paginator and the batch orchestrator into the full
// flow: search → dedup → enrich in batches → filter → aggregate.
type Pipeline struct {
	paginator    *Paginator
	orchestrator *Orchestrator
}

// Options tunes a Pipeline beyond its defaults.
type Options struct {
	Delays      DelayPolicy
	Sleeper     Sleeper
	Sink        Sink
	MaxAttempts int
}

// New builds a Pipeline around a Places client, filling unset options with
// production defaults.
func New(client places.Client, opts Options) *Pipeline {
	if opts.Delays == (DelayPolicy{}) {
		opts.Delays = DefaultDelayPolicy()
	}
	if opts.Sleeper == nil {
		opts.Sleeper = NewSleeper()
	}
	if opts.Sink == nil {
		opts.Sink = NewZapSink()
	}

	fetcher := NewFetcher(client, opts.Sleeper, opts.Delays, opts.Sink, opts.MaxAttempts)
	return &Pipeline{
		paginator:    NewPaginator(client, opts.Sleeper, opts.Delays, opts.Sink),
		orchestrator: NewOrchestrator(fetcher, opts.Sleeper, opts.Delays, opts.Sink),
	}
}

// Result is one finished pipeline invocation. Transient mirrors the search
// outcome: a truncation caused by a retryable fault, worth rerunning.
type Result struct {
	Summaries   []model.PlaceSummary
	Leads       []model.Lead
	Stats       model.PipelineStats
	Incomplete  bool
	TruncatedBy string
	Transient   bool
	Elapsed     time.Duration
}

// Run executes the pipeline for one query configuration.
//
// A fatal search status with nothing collected aborts before any enrichment
// begins and is returned as the error. A fatal status or transport failure
// after partial collection is logged, the partial set is still enriched and
// filtered, and the result is marked incomplete.
func (p *Pipeline) Run(ctx context.Context, cfg model.QueryConfig) (*Result, error) {
	cfg = cfg.Normalized()
	start := time.Now()
	log := zap.L().With(zap.String("component", "pipeline"), zap.String("query", cfg.Query))

	outcome, err := p.paginator.Search(ctx, cfg)
	if err != nil {
		if len(outcome.Summaries) == 0 {
			return nil, err
		}
		log.Warn("search aborted, processing partial results",
			zap.Int("collected", len(outcome.Summaries)),
			zap.Error(err),
		)
	}

	ids := make([]string, len(outcome.Summaries))
	for i, s := range outcome.Summaries {
		ids[i] = s.PlaceID
	}

	leads, runErr := p.orchestrator.Run(ctx, ids, cfg)
	if runErr != nil {
		return nil, runErr
	}

	result := &Result{
		Summaries:   outcome.Summaries,
		Leads:       leads,
		Stats:       Summarize(leads),
		Incomplete:  outcome.Incomplete,
		TruncatedBy: outcome.TruncatedBy,
		Transient:   outcome.Transient,
		Elapsed:     time.Since(start),
	}

	log.Info("pipeline complete",
		zap.Int("places", len(outcome.Summaries)),
		zap.Int("leads", len(leads)),
		zap.Bool("incomplete", result.Incomplete),
		zap.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}
