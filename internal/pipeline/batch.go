package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// Orchestrator processes deduplicated place IDs in fixed-size batches:
// concurrent detail fetches within a batch, an all-complete join, filtering,
// lead construction, and a mandatory delay before the next batch. Batches
// are strictly sequential so in-flight load never exceeds the batch size.
type Orchestrator struct {
	fetcher *Fetcher
	sleeper Sleeper
	delays  DelayPolicy
	sink    Sink
	now     func() time.Time
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(fetcher *Fetcher, sleeper Sleeper, delays DelayPolicy, sink Sink) *Orchestrator {
	return &Orchestrator{
		fetcher: fetcher,
		sleeper: sleeper,
		delays:  delays,
		sink:    sink,
		now:     time.Now,
	}
}

// Run enriches, filters, and flattens the given place IDs into leads.
// Output order follows input order within and across batches. Individual
// enrichment failures never fail the run; only context cancellation does.
func (o *Orchestrator) Run(ctx context.Context, placeIDs []string, cfg model.QueryConfig) ([]model.Lead, error) {
	size := cfg.BatchSize
	if size <= 0 {
		size = model.DefaultBatchSize
	}
	batches := partition(placeIDs, size)
	leads := make([]model.Lead, 0, len(placeIDs))

	for i, batch := range batches {
		details := make([]model.PlaceDetails, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(size)
		for j, id := range batch {
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				details[j] = o.fetcher.FetchDetails(gctx, id)
				return nil
			})
		}
		// Join barrier: nothing flows downstream until the whole batch is in.
		if err := g.Wait(); err != nil {
			return leads, err
		}

		accepted := 0
		capturedAt := o.now()
		for _, d := range details {
			if !Accept(d, cfg) {
				continue
			}
			leads = append(leads, model.NewLead(d, cfg.Query, capturedAt))
			accepted++
		}

		o.sink.BatchCompleted(i+1, len(batches), accepted, len(leads))

		if i < len(batches)-1 {
			if err := o.sleeper.Sleep(ctx, DelayBatch, o.delays.Batch); err != nil {
				return leads, err
			}
		}
	}

	return leads, nil
}

func partition(ids []string, size int) [][]string {
	var out [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}
