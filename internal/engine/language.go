package engine

import "fmt"

// analyzeSpelling matches the fixed misspelling table whole-word against the
// text. Penalties fold into the ATS score.
func analyzeSpelling(doc Document, catalog Catalog) []Issue {
	var issues []Issue
	for _, pair := range catalog.SpellingPairs {
		count := len(pair.Pattern.FindAllStringIndex(doc.Collapsed, -1))
		if count == 0 {
			continue
		}
		issues = append(issues, Issue{
			Message:       fmt.Sprintf("Possible misspelling: %q (%dx)", pair.Incorrect, count),
			Fix:           fmt.Sprintf("Replace %q with %q", pair.Incorrect, pair.Correct),
			Priority:      PriorityLow,
			Occurrences:   count,
			PenaltyWeight: 2 * float64(count),
			Dimension:     DimensionATS,
		})
	}
	return issues
}

// analyzeGrammar matches the fixed grammar-mistake table. Penalties fold into
// the readability score.
func analyzeGrammar(doc Document, catalog Catalog) []Issue {
	var issues []Issue
	for _, g := range catalog.GrammarPatterns {
		count := len(g.Pattern.FindAllStringIndex(doc.Collapsed, -1))
		if count == 0 {
			continue
		}
		issues = append(issues, Issue{
			Message:       fmt.Sprintf("Grammar issue: %s (%dx)", g.Label, count),
			Fix:           g.Fix,
			Priority:      PriorityLow,
			Occurrences:   count,
			PenaltyWeight: 3 * float64(count),
			Dimension:     DimensionReadability,
		})
	}
	return issues
}
