package engine

import (
	"fmt"
	"math"
)

const (
	maxUnquantifiedExamples = 3
	exampleTruncateLength   = 50
)

type quantificationResult struct {
	Issues []Issue
	Report QuantificationReport
}

// analyzeQuantification re-extracts bullet lines from the experience block
// and measures how many carry a recognized metric. Zero detectable bullets is
// its own terminal issue; a ratio below the profile minimum (inclusive
// boundary: exactly the minimum passes) scales its penalty with the
// shortfall and carries a few unquantified bullets as guidance.
func analyzeQuantification(doc Document, catalog Catalog, profile Profile) quantificationResult {
	var res quantificationResult
	res.Report.Examples = []string{}

	block, ok := extractExperienceBlock(doc)
	var bullets []string
	if ok {
		bullets = bulletLines(block)
	}
	res.Report.Total = len(bullets)
	if res.Report.Total == 0 {
		res.Issues = append(res.Issues, Issue{
			Message:       "No bullet points found in experience section",
			Fix:           "Add 3-5 bullet points per position describing your achievements",
			Priority:      PriorityHigh,
			Occurrences:   1,
			PenaltyWeight: 20,
			Dimension:     DimensionImpact,
		})
		return res
	}

	for _, bullet := range bullets {
		if bulletQuantified(bullet, catalog) {
			res.Report.Quantified++
		} else if len(res.Report.Examples) < maxUnquantifiedExamples {
			res.Report.Examples = append(res.Report.Examples, truncateBullet(bullet))
		}
	}
	res.Report.Ratio = float64(res.Report.Quantified) / float64(res.Report.Total)

	if res.Report.Ratio < profile.MinQuantifiedRatio {
		shortfall := profile.MinQuantifiedRatio - res.Report.Ratio
		res.Issues = append(res.Issues, Issue{
			Message: fmt.Sprintf("Only %d%% of bullet points are quantified (aim for %d%%+)",
				int(math.Round(res.Report.Ratio*100)), int(math.Round(profile.MinQuantifiedRatio*100))),
			Fix:           "Add numbers, percentages and metrics to your achievements",
			Examples:      res.Report.Examples,
			Priority:      PriorityHigh,
			Occurrences:   int(math.Floor((1 - res.Report.Ratio) * float64(res.Report.Total))),
			PenaltyWeight: shortfall * 50,
			Dimension:     DimensionImpact,
		})
	}
	return res
}

func bulletQuantified(bullet string, catalog Catalog) bool {
	for _, p := range catalog.QuantificationPatterns {
		if p.MatchString(bullet) {
			return true
		}
	}
	return false
}

func truncateBullet(bullet string) string {
	runes := []rune(bullet)
	if len(runes) <= exampleTruncateLength {
		return bullet
	}
	return string(runes[:exampleTruncateLength]) + "..."
}
