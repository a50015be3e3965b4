package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadgen-cli/internal/model"
)

func ptr[T any](v T) *T { return &v }

func sampleLeads(t *testing.T) []model.Lead {
	t.Helper()
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return []model.Lead{
		model.NewLead(model.PlaceDetails{
			PlaceID:          "p1",
			Name:             "Joe's Diner",
			FormattedAddress: "1 Main St",
			PhoneNumber:      "555-0100",
			Website:          "https://joes.example",
			Rating:           ptr(4.5),
			UserRatingsTotal: ptr(120),
			BusinessStatus:   "OPERATIONAL",
			PriceLevel:       ptr(2),
			Types:            []string{"restaurant", "food"},
			Found:            true,
		}, "diners", at),
		model.NewLead(model.NoDetails("p2"), "diners", at),
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(sampleLeads(t), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, leadColumns, rows[0])

	assert.Equal(t, []string{
		"Joe's Diner", "1 Main St", "555-0100", "https://joes.example",
		"4.5", "120", "OPERATIONAL", "2", "restaurant, food",
		"p1", "diners", "2026-08-30T12:00:00Z",
	}, rows[1])

	// Sparse record: every missing string field carries the marker.
	assert.Equal(t, model.NotAvailable, rows[2][0])
	assert.Equal(t, model.NotAvailable, rows[2][2])
	assert.Equal(t, model.NotAvailable, rows[2][4]) // rating
	assert.Equal(t, "0", rows[2][5])                // review count
	assert.Equal(t, model.NotAvailable, rows[2][7]) // price level
	assert.Equal(t, "p2", rows[2][9])
}

func TestWriteCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteCSV(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Header only.
	lines, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, leadColumns, lines[0])
}

func TestOutputPath(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	got := OutputPath("/tmp/out", "Coffee Shops - Austin", "csv", at)
	assert.Equal(t, "/tmp/out/leads_coffee_shops___austin_20260830T120000.csv", got)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "coffee_shops", slug("Coffee Shops"))
	assert.Equal(t, "caf", slug("café!"))
	assert.Equal(t, "a_b_c", slug("a-b_c"))
}
