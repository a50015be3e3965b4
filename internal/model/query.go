package model

// Pipeline sizing defaults. Callers may override per run; Normalized fills
// in anything left at zero.
const (
	DefaultMaxResults = 60
	DefaultBatchSize  = 10
	DefaultMaxRating  = 5.0
)

// QueryConfig captures one scrape request: the search terms, result caps
// and the lead filters to apply after enrichment.
type QueryConfig struct {
	Query        string `json:"query"`
	Location     string `json:"location,omitempty"` // "lat,lng"
	RadiusMeters int    `json:"radius_meters,omitempty"`

	MaxResults int `json:"max_results"`
	BatchSize  int `json:"batch_size"`

	IncludeClosedBusinesses bool    `json:"include_closed_businesses"`
	MinRating               float64 `json:"min_rating"`
	MaxRating               float64 `json:"max_rating"`
	RequirePhone            bool    `json:"require_phone"`
	RequireWebsite          bool    `json:"require_website"`

	OutputTarget string `json:"output_target,omitempty"`
}

// Normalized returns a copy with unset sizing fields replaced by defaults.
func (c QueryConfig) Normalized() QueryConfig {
	out := c
	if out.MaxResults <= 0 {
		out.MaxResults = DefaultMaxResults
	}
	if out.BatchSize <= 0 {
		out.BatchSize = DefaultBatchSize
	}
	if out.MaxRating <= 0 {
		out.MaxRating = DefaultMaxRating
	}
	return out
}
