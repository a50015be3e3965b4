package model

import (
	"strings"
	"time"
)

// NotAvailable marks a lead field the upstream service did not provide.
const NotAvailable = "N/A"

// Lead is the export-ready business record assembled from an enriched
// place. String fields are never empty: missing values carry NotAvailable
// so exports stay rectangular.
type Lead struct {
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Website        string    `json:"website"`
	Rating         *float64  `json:"rating,omitempty"`
	TotalReviews   int       `json:"total_reviews"`
	BusinessStatus string    `json:"business_status"`
	PriceLevel     *int      `json:"price_level,omitempty"`
	Categories     []string  `json:"categories,omitempty"`
	PlaceID        string    `json:"place_id"`
	Query          string    `json:"query"`
	CapturedAt     time.Time `json:"captured_at"`
}

// NewLead builds a lead from an enriched place. The formatted address is
// preferred, falling back to the vicinity when the details response only
// carried the short form.
func NewLead(details PlaceDetails, query string, capturedAt time.Time) Lead {
	address := details.FormattedAddress
	if address == "" {
		address = details.Vicinity
	}

	total := 0
	if details.UserRatingsTotal != nil {
		total = *details.UserRatingsTotal
	}

	return Lead{
		Name:           orNA(details.Name),
		Address:        orNA(address),
		Phone:          orNA(details.PhoneNumber),
		Website:        orNA(details.Website),
		Rating:         details.Rating,
		TotalReviews:   total,
		BusinessStatus: orNA(details.BusinessStatus),
		PriceLevel:     details.PriceLevel,
		Categories:     details.Types,
		PlaceID:        details.PlaceID,
		Query:          query,
		CapturedAt:     capturedAt,
	}
}

// HasPhone reports whether the lead carries a real phone number.
func (l Lead) HasPhone() bool {
	return l.Phone != "" && l.Phone != NotAvailable
}

// HasWebsite reports whether the lead carries a real website URL.
func (l Lead) HasWebsite() bool {
	return l.Website != "" && l.Website != NotAvailable
}

// Operational reports whether the underlying business is still operating.
func (l Lead) Operational() bool {
	return l.BusinessStatus == "OPERATIONAL"
}

// CategoriesJoined renders the category list as a single cell value.
func (l Lead) CategoriesJoined() string {
	if len(l.Categories) == 0 {
		return NotAvailable
	}
	return strings.Join(l.Categories, ", ")
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
