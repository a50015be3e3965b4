package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/leadgen-cli/internal/model"
)

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	assert.Zero(t, stats.Count)
	assert.Zero(t, stats.AvgRating)
	assert.Zero(t, stats.PhonePct)
	assert.Zero(t, stats.WebsitePct)
	assert.Zero(t, stats.OperationalPct)
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	lead := func(rating *float64, phone, website, status string) model.Lead {
		return model.NewLead(model.PlaceDetails{
			PlaceID:        "p",
			Name:           "Biz",
			Rating:         rating,
			PhoneNumber:    phone,
			Website:        website,
			BusinessStatus: status,
			Found:          true,
		}, "q", now)
	}

	leads := []model.Lead{
		lead(ptr(4.0), "555-0100", "https://a.example", "OPERATIONAL"),
		lead(ptr(3.0), "", "https://b.example", "OPERATIONAL"),
		lead(nil, "555-0101", "", "CLOSED_TEMPORARILY"),
		lead(nil, "", "", "OPERATIONAL"),
	}

	stats := Summarize(leads)
	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 2, stats.Rated)
	assert.InDelta(t, 3.5, stats.AvgRating, 1e-9)
	assert.Equal(t, 2, stats.WithPhone)
	assert.InDelta(t, 50.0, stats.PhonePct, 1e-9)
	assert.Equal(t, 2, stats.WithWebsite)
	assert.InDelta(t, 50.0, stats.WebsitePct, 1e-9)
	assert.Equal(t, 3, stats.Operational)
	assert.InDelta(t, 75.0, stats.OperationalPct, 1e-9)
}

func TestSummarizeUnratedOnly(t *testing.T) {
	leads := []model.Lead{
		model.NewLead(model.NoDetails("p1"), "q", time.Now()),
	}
	stats := Summarize(leads)
	assert.Equal(t, 1, stats.Count)
	assert.Zero(t, stats.Rated)
	assert.Zero(t, stats.AvgRating)
}
