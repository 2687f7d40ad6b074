package engine

import "strings"

type sectionResult struct {
	Issues  []Issue
	Missing []string
	Present []string
}

// sectionPresent reports whether the canonical name or any alias occurs in
// the lower-cased text.
func sectionPresent(lower string, s Section) bool {
	if strings.Contains(lower, s.Name) {
		return true
	}
	for _, alias := range s.Aliases {
		if strings.Contains(lower, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

// analyzeSections checks that every required section is recognizable. All
// missing required sections are aggregated into a single issue whose penalty
// is the sum of the missing sections' weights: an unparseable resume skeleton
// is the heaviest ATS defect.
func analyzeSections(doc Document, catalog Catalog) sectionResult {
	var res sectionResult
	var missingWeight float64
	for _, s := range catalog.Sections {
		if sectionPresent(doc.Lower, s) {
			res.Present = append(res.Present, s.Name)
			continue
		}
		if s.Required {
			res.Missing = append(res.Missing, s.Name)
			missingWeight += s.PenaltyWeight
		}
	}
	if len(res.Missing) > 0 {
		res.Issues = append(res.Issues, Issue{
			Message:       "Missing required sections: " + strings.Join(res.Missing, ", "),
			Fix:           "Add clearly labeled sections for all required categories",
			Example:       "Add sections like 'Professional Experience', 'Education' and 'Skills' with clear headings",
			Priority:      PriorityHigh,
			Occurrences:   len(res.Missing),
			PenaltyWeight: missingWeight,
			Dimension:     DimensionATS,
		})
	}
	return res
}
