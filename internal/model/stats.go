package model

// PipelineStats aggregates the accepted leads of one run. Percentages are
// computed over Count; AvgRating is computed over Rated only, so unrated
// places never drag the average down.
type PipelineStats struct {
	Count int `json:"count"`

	AvgRating float64 `json:"avg_rating"`
	Rated     int     `json:"rated"`

	WithPhone int     `json:"with_phone"`
	PhonePct  float64 `json:"phone_pct"`

	WithWebsite int     `json:"with_website"`
	WebsitePct  float64 `json:"website_pct"`

	Operational    int     `json:"operational"`
	OperationalPct float64 `json:"operational_pct"`
}
