package pipeline

import "github.com/sells-group/leadgen-cli/internal/model"

// Summarize reduces a lead list to aggregate statistics. Defined for the
// empty list: every count and percentage is zero.
func Summarize(leads []model.Lead) model.PipelineStats {
	stats := model.PipelineStats{Count: len(leads)}
	if len(leads) == 0 {
		return stats
	}

	var ratingSum float64
	for _, l := range leads {
		if l.Rating != nil {
			stats.Rated++
			ratingSum += *l.Rating
		}
		if l.HasPhone() {
			stats.WithPhone++
		}
		if l.HasWebsite() {
			stats.WithWebsite++
		}
		if l.Operational() {
			stats.Operational++
		}
	}

	if stats.Rated > 0 {
		stats.AvgRating = ratingSum / float64(stats.Rated)
	}
	total := float64(stats.Count)
	stats.PhonePct = 100 * float64(stats.WithPhone) / total
	stats.WebsitePct = 100 * float64(stats.WithWebsite) / total
	stats.OperationalPct = 100 * float64(stats.Operational) / total

	return stats
}
