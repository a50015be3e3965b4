package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/resilience"
	"github.com/sells-group/leadgen-cli/pkg/places"
)

// Truncation reasons recorded on a SearchOutcome.
const (
	TruncatedByStatus    = "fatal_status"
	TruncatedByTransport = "transport_failure"
	TruncatedByCancel    = "cancelled"
)

// SearchOutcome is the result of a pagination walk. Incomplete marks walks
// that ended on a failure rather than the cap or the last page; the
// summaries gathered before the failure are always present. Transient is set
// on transport truncations whose failure classified as retryable, so the run
// record can tell a rerun-worthy truncation from a permanent one.
type SearchOutcome struct {
	Summaries   []model.PlaceSummary
	Pages       int
	Incomplete  bool
	TruncatedBy string
	Transient   bool
}

// Paginator walks the paged text-search endpoint, deduplicating by place ID,
// until the result cap, the last page, or a fatal response.
type Paginator struct {
	client  places.Client
	sleeper Sleeper
	delays  DelayPolicy
	sink    Sink
}

// NewPaginator creates a Paginator.
func NewPaginator(client places.Client, sleeper Sleeper, delays DelayPolicy, sink Sink) *Paginator {
	return &Paginator{client: client, sleeper: sleeper, delays: delays, sink: sink}
}

// Search runs the walk for one query. On a fatal status it returns the
// partial outcome together with a *SearchError; on a transport failure it
// returns the partial outcome and no error (logged, marked incomplete).
func (p *Paginator) Search(ctx context.Context, cfg model.QueryConfig) (*SearchOutcome, error) {
	log := zap.L().With(
		zap.String("component", "search"),
		zap.String("query", cfg.Query),
	)

	seen := make(map[string]struct{})
	outcome := &SearchOutcome{}

	req := places.TextSearchRequest{
		Query:        cfg.Query,
		Location:     cfg.Location,
		RadiusMeters: cfg.RadiusMeters,
	}

	for {
		resp, err := p.client.TextSearch(ctx, req)
		if err != nil {
			// Transport failure: keep what we have, no retry at this layer.
			outcome.Incomplete = true
			outcome.TruncatedBy = TruncatedByTransport
			outcome.Transient = resilience.IsTransient(err)
			log.Warn("search transport failure",
				zap.Int("page", outcome.Pages+1),
				zap.Bool("transient", outcome.Transient),
				zap.Error(err),
			)
			p.sink.SearchTruncated(TruncatedByTransport, len(outcome.Summaries))
			return outcome, nil
		}

		if !resp.Status.Success() {
			outcome.Incomplete = true
			outcome.TruncatedBy = TruncatedByStatus
			p.sink.SearchTruncated(TruncatedByStatus, len(outcome.Summaries))
			serr := &SearchError{Status: resp.Status, Message: resp.ErrorMessage}
			if serr.CredentialProblem() {
				log.Error("search denied, check API key and Places API entitlement",
					zap.String("status", string(resp.Status)),
				)
			}
			return outcome, serr
		}

		outcome.Pages++
		added := 0
		for _, r := range resp.Results {
			if len(outcome.Summaries) >= cfg.MaxResults {
				break
			}
			if _, dup := seen[r.PlaceID]; dup {
				continue
			}
			seen[r.PlaceID] = struct{}{}
			outcome.Summaries = append(outcome.Summaries, summaryFromResult(r))
			added++
		}
		p.sink.PageFetched(outcome.Pages, added, len(outcome.Summaries))

		if len(outcome.Summaries) >= cfg.MaxResults || resp.NextPageToken == "" {
			return outcome, nil
		}

		// Continuation tokens take a moment to become valid.
		if err := p.sleeper.Sleep(ctx, DelayPagination, p.delays.Pagination); err != nil {
			outcome.Incomplete = true
			outcome.TruncatedBy = TruncatedByCancel
			p.sink.SearchTruncated(TruncatedByCancel, len(outcome.Summaries))
			return outcome, nil
		}

		req = places.TextSearchRequest{PageToken: resp.NextPageToken}
	}
}

func summaryFromResult(r places.SearchResult) model.PlaceSummary {
	return model.PlaceSummary{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		FormattedAddress: r.FormattedAddress,
		Vicinity:         r.Vicinity,
		BusinessStatus:   r.BusinessStatus,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
		Types:            r.Types,
	}
}
