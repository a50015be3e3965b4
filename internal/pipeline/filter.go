package pipeline

import "github.com/sells-group/leadgen-cli/internal/model"

// predicate judges one enriched record against the config thresholds. Pure:
// no side effects, no ordering dependency between predicates.
type predicate func(d model.PlaceDetails, cfg model.QueryConfig) bool

var predicates = []predicate{
	openBusiness,
	ratingInBounds,
	phonePresent,
	websitePresent,
}

// Accept reports whether a record passes every filter predicate.
func Accept(d model.PlaceDetails, cfg model.QueryConfig) bool {
	for _, p := range predicates {
		if !p(d, cfg) {
			return false
		}
	}
	return true
}

func openBusiness(d model.PlaceDetails, cfg model.QueryConfig) bool {
	if cfg.IncludeClosedBusinesses {
		return true
	}
	return !d.PermanentlyClosed()
}

// ratingInBounds rejects only when a rating is present and out of range; an
// absent rating is never grounds for rejection.
func ratingInBounds(d model.PlaceDetails, cfg model.QueryConfig) bool {
	if d.Rating == nil {
		return true
	}
	return *d.Rating >= cfg.MinRating && *d.Rating <= cfg.MaxRating
}

func phonePresent(d model.PlaceDetails, cfg model.QueryConfig) bool {
	if !cfg.RequirePhone {
		return true
	}
	return d.PhoneNumber != ""
}

func websitePresent(d model.PlaceDetails, cfg model.QueryConfig) bool {
	if !cfg.RequireWebsite {
		return true
	}
	return d.Website != ""
}
