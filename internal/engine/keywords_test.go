package engine

import "testing"

func TestKeywordCoverage(t *testing.T) {
	catalog := DefaultCatalog()
	doc := mustDoc(t, "drove collaboration across teams, owned data analysis in sql and stakeholder management")

	report := keywordCoverage(doc, catalog)

	var teamwork, data bool
	for _, match := range report.Matched {
		switch match.Category {
		case "Teamwork":
			teamwork = true
		case "Data Analysis":
			data = true
		}
	}
	if !teamwork || !data {
		t.Fatalf("expected Teamwork and Data Analysis matches, got %+v", report.Matched)
	}

	for _, missing := range report.Missing {
		if missing == "data analysis" || missing == "stakeholder management" {
			t.Fatalf("%q reported missing despite being present", missing)
		}
	}
	found := false
	for _, missing := range report.Missing {
		if missing == "cybersecurity" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected cybersecurity in missing watchlist, got %v", report.Missing)
	}
}

func TestKeywordCoverageEmptyMatchesAreNonNil(t *testing.T) {
	report := keywordCoverage(mustDoc(t, "zzz qqq"), DefaultCatalog())
	if report.Matched == nil || report.Missing == nil {
		t.Fatalf("report slices must be non-nil for JSON encoding")
	}
	if len(report.Matched) != 0 {
		t.Fatalf("expected no matches, got %+v", report.Matched)
	}
}
