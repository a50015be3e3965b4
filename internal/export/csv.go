// Package export writes finished lead lists to tabular files. Sinks are
// pure: they consume a []Lead and produce a file, nothing else.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// leadColumns defines the ordered output columns. Order is significant for
// downstream consumers.
var leadColumns = []string{
	"Business Name",
	"Address",
	"Phone",
	"Website",
	"Rating",
	"Total Reviews",
	"Business Status",
	"Price Level",
	"Categories",
	"Place ID",
	"Query",
	"Captured At",
}

// WriteCSV writes leads as a CSV file at outputPath.
func WriteCSV(leads []model.Lead, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create csv")
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(leadColumns); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, l := range leads {
		if err := w.Write(leadRow(l)); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	return nil
}

// leadRow maps a Lead onto the column order.
func leadRow(l model.Lead) []string {
	return []string{
		l.Name,
		l.Address,
		l.Phone,
		l.Website,
		formatRating(l.Rating),
		strconv.Itoa(l.TotalReviews),
		l.BusinessStatus,
		formatPriceLevel(l.PriceLevel),
		l.CategoriesJoined(),
		l.PlaceID,
		l.Query,
		l.CapturedAt.Format(time.RFC3339),
	}
}

func formatRating(r *float64) string {
	if r == nil {
		return model.NotAvailable
	}
	return strconv.FormatFloat(*r, 'f', 1, 64)
}

func formatPriceLevel(p *int) string {
	if p == nil {
		return model.NotAvailable
	}
	return strconv.Itoa(*p)
}

// OutputPath builds a sink file name from the query and run time, e.g.
// "leads_coffee_shops_20260830T120000.csv".
func OutputPath(dir, query, format string, at time.Time) string {
	return fmt.Sprintf("%s/leads_%s_%s.%s", dir, slug(query), at.UTC().Format("20060102T150405"), format)
}

func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '_':
			out = append(out, '_')
		}
	}
	return string(out)
}
