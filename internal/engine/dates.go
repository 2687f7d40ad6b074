package engine

import "fmt"

const dateRecommendation = "Use MM/YYYY format (e.g., 03/2023) for best ATS compatibility"

// qualityFloor below which a matched pattern draws no complaint.
const dateQualityFloor = 0.8

// dateStandardMinimum is the quality a document must reach somewhere for its
// dates to count as machine-parseable at all.
const dateStandardMinimum = 0.5

type dateResult struct {
	Issues      []Issue
	BestQuality float64
}

// analyzeDates evaluates every date pattern and keeps the best quality seen.
// Patterns below the quality floor each produce an issue scaled by how far
// they fall short; if nothing at or above the standard minimum matched, one
// extra issue flags the absence of any standard format.
func analyzeDates(doc Document, catalog Catalog) dateResult {
	var res dateResult
	for _, p := range catalog.DatePatterns {
		matches := p.Pattern.FindAllStringIndex(doc.Collapsed, -1)
		if len(matches) == 0 {
			continue
		}
		if p.Quality > res.BestQuality {
			res.BestQuality = p.Quality
		}
		if p.Quality >= dateQualityFloor {
			continue
		}
		priority := PriorityLow
		if p.Quality < dateStandardMinimum {
			priority = PriorityMedium
		}
		res.Issues = append(res.Issues, Issue{
			Message:       fmt.Sprintf("Date format issue: %s", p.Label),
			Fix:           dateRecommendation,
			Example:       "Change 'June 2020' to '06/2020' for better ATS parsing",
			Priority:      priority,
			Occurrences:   len(matches),
			PenaltyWeight: 10 * (1 - p.Quality),
			Dimension:     DimensionATS,
		})
	}
	if res.BestQuality < dateStandardMinimum {
		res.Issues = append(res.Issues, Issue{
			Message:       "No standard date formats (MM/YYYY) found",
			Fix:           dateRecommendation,
			Example:       "Format all dates as MM/YYYY (e.g., 06/2020 - 08/2022)",
			Priority:      PriorityMedium,
			Occurrences:   1,
			PenaltyWeight: 8,
			Dimension:     DimensionATS,
		})
	}
	return res
}
