package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/places"
)

// DefaultMaxAttempts bounds detail fetch requests per place.
const DefaultMaxAttempts = 3

// Fetcher enriches one place at a time, with bounded retry. It never returns
// an error: exhausting the attempt budget degrades to the empty-details
// sentinel, which downstream filters then judge like any other record.
type Fetcher struct {
	client      places.Client
	sleeper     Sleeper
	delays      DelayPolicy
	sink        Sink
	maxAttempts int
}

// NewFetcher creates a Fetcher. maxAttempts <= 0 selects DefaultMaxAttempts.
func NewFetcher(client places.Client, sleeper Sleeper, delays DelayPolicy, sink Sink, maxAttempts int) *Fetcher {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Fetcher{
		client:      client,
		sleeper:     sleeper,
		delays:      delays,
		sink:        sink,
		maxAttempts: maxAttempts,
	}
}

// FetchDetails fetches the enriched record for one place ID.
//
// Per attempt:
//   - OK: return the payload.
//   - OVER_QUERY_LIMIT: wait the fixed rate-limit delay and retry; the
//     attempt still counts toward the budget.
//   - any other status: a business response that will not change on retry;
//     return the empty sentinel immediately.
//   - transport failure: wait retry-delay × attempt (linear backoff) and
//     retry while attempts remain.
func (f *Fetcher) FetchDetails(ctx context.Context, placeID string) model.PlaceDetails {
	log := zap.L().With(
		zap.String("component", "details"),
		zap.String("place_id", placeID),
	)

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		resp, err := f.client.Details(ctx, placeID)

		switch {
		case err != nil:
			if attempt == f.maxAttempts || ctx.Err() != nil {
				log.Warn("detail fetch exhausted", zap.Int("attempts", attempt), zap.Error(err))
				return model.NoDetails(placeID)
			}
			f.sink.RetryScheduled(placeID, attempt, "transport")
			if serr := f.sleeper.Sleep(ctx, DelayRetry, f.delays.Retry*time.Duration(attempt)); serr != nil {
				return model.NoDetails(placeID)
			}

		case resp.Status == places.StatusOK:
			return detailsFromResult(placeID, resp.Result)

		case resp.Status.RateLimited():
			if attempt == f.maxAttempts {
				log.Warn("detail fetch rate limited past attempt budget", zap.Int("attempts", attempt))
				return model.NoDetails(placeID)
			}
			f.sink.RetryScheduled(placeID, attempt, "rate_limit")
			if serr := f.sleeper.Sleep(ctx, DelayRateLimit, f.delays.RateLimit); serr != nil {
				return model.NoDetails(placeID)
			}

		default:
			// Non-retryable business response (NOT_FOUND, INVALID_REQUEST, ...).
			log.Debug("detail fetch returned non-success status",
				zap.String("status", string(resp.Status)),
			)
			return model.NoDetails(placeID)
		}
	}

	return model.NoDetails(placeID)
}

func detailsFromResult(placeID string, r places.DetailsResult) model.PlaceDetails {
	id := r.PlaceID
	if id == "" {
		id = placeID
	}
	return model.PlaceDetails{
		PlaceID:          id,
		Found:            true,
		Name:             r.Name,
		FormattedAddress: r.FormattedAddress,
		Vicinity:         r.Vicinity,
		PhoneNumber:      r.PhoneNumber,
		Website:          r.Website,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
		BusinessStatus:   r.BusinessStatus,
		PriceLevel:       r.PriceLevel,
		Types:            r.Types,
	}
}
