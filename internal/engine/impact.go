package engine

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var numericTokenPattern = regexp.MustCompile(`\d+`)

type impactResult struct {
	Issues          []Issue
	Strengths       []string
	StrongVerbCount int
	NumericCount    int
}

// analyzeImpact covers weak verbs, strong-verb usage, crude numeric density
// and buzzwords. Strong verbs and a healthy numeric count contribute
// strengths only; they never generate issues.
func analyzeImpact(doc Document, catalog Catalog, profile Profile) impactResult {
	var res impactResult

	for _, weak := range catalog.WeakVerbs {
		count := len(weak.Pattern.FindAllStringIndex(doc.Collapsed, -1))
		if count == 0 {
			continue
		}
		replacement := strongVerbSuggestions(catalog, 5)
		res.Issues = append(res.Issues, Issue{
			Message:       fmt.Sprintf("Weak verb detected: %q (%dx)", weak.Word, count),
			Fix:           "Replace with stronger action verbs like: " + replacement,
			Example:       fmt.Sprintf("Change %q to a statement led by a strong verb with a measurable outcome", weak.Word),
			Priority:      PriorityMedium,
			Occurrences:   count,
			PenaltyWeight: math.Min(6, 1.5*float64(count)),
			Dimension:     DimensionImpact,
		})
	}

	for _, strong := range catalog.StrongVerbs {
		if strings.Contains(doc.Lower, strong) {
			res.StrongVerbCount++
		}
	}
	if res.StrongVerbCount > profile.StrengthStrongVerbs {
		res.Strengths = append(res.Strengths, "Good use of action verbs")
	}

	res.NumericCount = len(numericTokenPattern.FindAllStringIndex(doc.Collapsed, -1))
	if res.NumericCount < profile.MinNumericTokens {
		res.Issues = append(res.Issues, Issue{
			Message:       "Few quantifiable achievements found",
			Fix:           "Include numbers, percentages and metrics in your achievements",
			Example:       "Add specific metrics like percentages, dollar amounts, timeframes or quantities",
			Priority:      PriorityHigh,
			Occurrences:   1,
			PenaltyWeight: 15,
			Dimension:     DimensionImpact,
		})
	} else if res.NumericCount >= profile.StrengthNumericTokens {
		res.Strengths = append(res.Strengths, "Includes quantifiable achievements")
	}

	for _, buzz := range catalog.Buzzwords {
		count := len(buzz.Pattern.FindAllStringIndex(doc.Collapsed, -1))
		if count == 0 {
			continue
		}
		res.Issues = append(res.Issues, Issue{
			Message:       fmt.Sprintf("Buzzword detected: %q (%dx)", buzz.Word, count),
			Fix:           "Replace with specific examples of your skills and achievements",
			Example:       fmt.Sprintf("Instead of %q, describe a concrete outcome with a number attached", buzz.Word),
			Priority:      PriorityLow,
			Occurrences:   count,
			PenaltyWeight: math.Min(6, 2*float64(count)),
			Dimension:     DimensionImpact,
		})
	}
	return res
}

func strongVerbSuggestions(catalog Catalog, n int) string {
	if n > len(catalog.StrongVerbs) {
		n = len(catalog.StrongVerbs)
	}
	return strings.Join(catalog.StrongVerbs[:n], ", ")
}
