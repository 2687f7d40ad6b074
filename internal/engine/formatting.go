package engine

import (
	"fmt"
	"math"
)

const formattingFix = "Use a simple one-column layout, standard bullets (• or -), consistent spacing and plain black-on-white text"

// analyzeFormatting runs every formatting matcher against the line-preserving
// text. Rules marked MatchAll count each occurrence; the rest count a single
// hit, matching the intent of each rule.
func analyzeFormatting(doc Document, catalog Catalog) []Issue {
	var issues []Issue
	for _, rule := range catalog.FormattingRules {
		count := 0
		if rule.MatchAll {
			count = len(rule.Pattern.FindAllStringIndex(doc.Text, -1))
		} else if rule.Pattern.MatchString(doc.Text) {
			count = 1
		}
		if count == 0 {
			continue
		}
		issues = append(issues, Issue{
			Message:       fmt.Sprintf("Formatting issue: %s", rule.Label),
			Fix:           formattingFix,
			Priority:      PriorityMedium,
			Occurrences:   count,
			PenaltyWeight: rule.PenaltyWeight * math.Min(float64(count), 4),
			Dimension:     DimensionATS,
		})
	}
	return issues
}
