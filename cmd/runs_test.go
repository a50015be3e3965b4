package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/preset"
)

func TestFormatRunsList(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:        "run-1",
			Config:    model.QueryConfig{Query: "plumbers"},
			Status:    model.RunStatusComplete,
			Result:    &model.RunResult{Leads: 8},
			CreatedAt: at,
		},
		{
			ID:        "run-2",
			Config:    model.QueryConfig{Query: "dentists"},
			Status:    model.RunStatusRunning,
			CreatedAt: at,
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)
	out := buf.String()

	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "plumbers")
	assert.Contains(t, out, "8")
	// Unfinished runs show a placeholder lead count.
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "2026-08-30T12:00:00Z")
}

func TestPresetFilters(t *testing.T) {
	assert.Equal(t, "-", presetFilters(preset.Preset{}))

	got := presetFilters(preset.Preset{MinRating: 3.5, RequirePhone: true, RequireWebsite: true})
	assert.Contains(t, got, "rating>=3.5")
	assert.Contains(t, got, "phone")
	assert.Contains(t, got, "website")
}
