package engine

type orderResult struct {
	Issues []Issue
	Report SectionOrderReport
}

// analyzeSectionOrder compares the detected section sequence with the
// canonical order restricted to the sections actually present. Detection is a
// containment test walked in canonical order, so both sequences derive from
// the same walk; the comparison is kept as documented behavior even though it
// cannot observe true positional misordering in the text.
func analyzeSectionOrder(doc Document, catalog Catalog) orderResult {
	var res orderResult
	res.Report.Current = []string{}
	res.Report.Ideal = []string{}

	byName := make(map[string]Section, len(catalog.Sections))
	for _, s := range catalog.Sections {
		byName[s.Name] = s
	}

	for _, name := range catalog.SectionOrder {
		s, ok := byName[name]
		if !ok {
			continue
		}
		if sectionPresent(doc.Lower, s) {
			res.Report.Current = append(res.Report.Current, name)
		}
	}
	present := make(map[string]bool, len(res.Report.Current))
	for _, name := range res.Report.Current {
		present[name] = true
	}
	for _, name := range catalog.SectionOrder {
		if present[name] {
			res.Report.Ideal = append(res.Report.Ideal, name)
		}
	}

	res.Report.Ordered = equalStrings(res.Report.Current, res.Report.Ideal)
	if !res.Report.Ordered {
		res.Issues = append(res.Issues, Issue{
			Message:       "Non-standard section order detected",
			Fix:           "Reorder sections to follow the standard structure: Contact -> Summary -> Experience -> Education -> Skills",
			Priority:      PriorityHigh,
			Occurrences:   1,
			PenaltyWeight: 10,
			Dimension:     DimensionATS,
		})
	}
	return res
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
