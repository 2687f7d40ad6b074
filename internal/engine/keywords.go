package engine

import "strings"

// keywordCoverage reports which keyword categories the document touches and
// which watchlist keywords it lacks entirely.
func keywordCoverage(doc Document, catalog Catalog) KeywordReport {
	report := KeywordReport{
		Matched: []KeywordCategoryMatch{},
		Missing: []string{},
	}
	for _, category := range catalog.KeywordCategories {
		var found []string
		for _, keyword := range category.Keywords {
			if strings.Contains(doc.Lower, strings.ToLower(keyword)) {
				found = append(found, keyword)
			}
		}
		if len(found) > 0 {
			report.Matched = append(report.Matched, KeywordCategoryMatch{
				Category: category.Name,
				Keywords: found,
			})
		}
	}
	for _, keyword := range catalog.MissingKeywordWatchlist {
		if !strings.Contains(doc.Lower, strings.ToLower(keyword)) {
			report.Missing = append(report.Missing, keyword)
		}
	}
	return report
}
