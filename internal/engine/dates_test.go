package engine

import (
	"strings"
	"testing"
)

func mustDoc(t *testing.T, text string) Document {
	t.Helper()
	doc, err := NormalizeDocument(text)
	if err != nil {
		t.Fatalf("NormalizeDocument: %v", err)
	}
	return doc
}

func TestAnalyzeDatesRangeFormat(t *testing.T) {
	catalog := DefaultCatalog()
	res := analyzeDates(mustDoc(t, "Acme Corp 06/2020 - 08/2022"), catalog)

	if res.BestQuality < 0.8 {
		t.Fatalf("best quality = %v, want >= 0.8", res.BestQuality)
	}
	for _, issue := range res.Issues {
		if issue.Priority == PriorityLow {
			t.Fatalf("unexpected low-priority date issue: %s", issue.Message)
		}
	}
	if len(res.Issues) != 0 {
		t.Fatalf("expected no date issues, got %d", len(res.Issues))
	}
}

func TestAnalyzeDatesFullMonthName(t *testing.T) {
	catalog := DefaultCatalog()
	res := analyzeDates(mustDoc(t, "Started June 2020 at Acme"), catalog)

	if len(res.Issues) == 0 {
		t.Fatalf("expected date format issues")
	}
	for _, issue := range res.Issues {
		if strings.Contains(issue.Message, "No standard date formats") {
			t.Fatalf("no-standard-format issue should not fire when a pattern >= 0.5 matched")
		}
	}
}

func TestAnalyzeDatesNoneFound(t *testing.T) {
	catalog := DefaultCatalog()
	res := analyzeDates(mustDoc(t, "no dates anywhere in this text"), catalog)

	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue.Message, "No standard date formats") {
			found = true
			if issue.Priority != PriorityMedium {
				t.Fatalf("expected medium priority, got %s", issue.Priority)
			}
		}
	}
	if !found {
		t.Fatalf("expected no-standard-format issue")
	}
}
