// Package model holds the core domain types shared across the pipeline,
// store and export layers.
package model

// PlaceSummary is the lightweight record produced by a text search page.
// It carries enough to identify and display a place, but not the contact
// fields needed for a lead.
type PlaceSummary struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Vicinity         string   `json:"vicinity,omitempty"`
	BusinessStatus   string   `json:"business_status,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	Types            []string `json:"types,omitempty"`
}

// PlaceDetails is the enriched record returned by a details lookup. Found
// reports whether the lookup actually succeeded; a zero-value record with
// Found=false stands in for a place whose enrichment exhausted its retry
// budget or was rejected outright.
type PlaceDetails struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Vicinity         string   `json:"vicinity,omitempty"`
	BusinessStatus   string   `json:"business_status,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	Types            []string `json:"types,omitempty"`
	PhoneNumber      string   `json:"formatted_phone_number,omitempty"`
	Website          string   `json:"website,omitempty"`
	PriceLevel       *int     `json:"price_level,omitempty"`

	Found bool `json:"found"`
}

// NoDetails returns the sentinel details record for a place that could not
// be enriched. Only the place ID is preserved.
func NoDetails(placeID string) PlaceDetails {
	return PlaceDetails{PlaceID: placeID, Found: false}
}

// PermanentlyClosed reports whether the place is marked closed for good.
func (d PlaceDetails) PermanentlyClosed() bool {
	return d.BusinessStatus == "CLOSED_PERMANENTLY"
}

// Operational reports whether the place is marked as currently operating.
func (d PlaceDetails) Operational() bool {
	return d.BusinessStatus == "OPERATIONAL"
}
