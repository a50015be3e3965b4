package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestNewLead(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	d := PlaceDetails{
		PlaceID:          "p1",
		Name:             "Joe's Diner",
		FormattedAddress: "1 Main St, Austin, TX",
		PhoneNumber:      "555-0100",
		Website:          "https://joes.example",
		Rating:           ptr(4.5),
		UserRatingsTotal: ptr(120),
		BusinessStatus:   "OPERATIONAL",
		Types:            []string{"restaurant", "food"},
		Found:            true,
	}

	l := NewLead(d, "diners in austin", at)
	assert.Equal(t, "Joe's Diner", l.Name)
	assert.Equal(t, "1 Main St, Austin, TX", l.Address)
	assert.Equal(t, 120, l.TotalReviews)
	assert.Equal(t, "diners in austin", l.Query)
	assert.True(t, l.HasPhone())
	assert.True(t, l.HasWebsite())
	assert.True(t, l.Operational())
	assert.Equal(t, "restaurant, food", l.CategoriesJoined())
}

func TestNewLeadVicinityFallback(t *testing.T) {
	d := PlaceDetails{PlaceID: "p1", Name: "Biz", Vicinity: "Near downtown", Found: true}
	l := NewLead(d, "q", time.Now())
	assert.Equal(t, "Near downtown", l.Address)
}

func TestNewLeadSparse(t *testing.T) {
	l := NewLead(NoDetails("p1"), "q", time.Now())
	assert.Equal(t, NotAvailable, l.Name)
	assert.Equal(t, NotAvailable, l.Address)
	assert.Equal(t, NotAvailable, l.Phone)
	assert.Equal(t, NotAvailable, l.Website)
	assert.Equal(t, NotAvailable, l.BusinessStatus)
	assert.Equal(t, NotAvailable, l.CategoriesJoined())
	assert.Nil(t, l.Rating)
	assert.Zero(t, l.TotalReviews)
	assert.False(t, l.HasPhone())
	assert.False(t, l.HasWebsite())
	assert.False(t, l.Operational())
	assert.Equal(t, "p1", l.PlaceID)
}

func TestQueryConfigNormalized(t *testing.T) {
	cfg := QueryConfig{}.Normalized()
	assert.Equal(t, DefaultMaxResults, cfg.MaxResults)
	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)
	assert.Equal(t, DefaultMaxRating, cfg.MaxRating)

	custom := QueryConfig{MaxResults: 5, BatchSize: 2, MaxRating: 4.0}.Normalized()
	assert.Equal(t, 5, custom.MaxResults)
	assert.Equal(t, 2, custom.BatchSize)
	assert.Equal(t, 4.0, custom.MaxRating)
}

func TestPlaceDetailsStatus(t *testing.T) {
	assert.True(t, PlaceDetails{BusinessStatus: "CLOSED_PERMANENTLY"}.PermanentlyClosed())
	assert.False(t, PlaceDetails{BusinessStatus: "OPERATIONAL"}.PermanentlyClosed())
	assert.True(t, PlaceDetails{BusinessStatus: "OPERATIONAL"}.Operational())
	assert.False(t, PlaceDetails{BusinessStatus: "CLOSED_TEMPORARILY"}.Operational())
}
