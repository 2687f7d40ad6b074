package engine

import (
	"strings"
	"testing"
)

func TestAnalyzeSpellingCountsOccurrences(t *testing.T) {
	catalog := DefaultCatalog()
	issues := analyzeSpelling(mustDoc(t, "i recieve mail and they recieve mail in a seperate room"), catalog)

	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	for _, issue := range issues {
		if issue.Dimension != DimensionATS {
			t.Fatalf("spelling dimension = %s, want ats", issue.Dimension)
		}
		if strings.Contains(issue.Message, "recieve") {
			if issue.Occurrences != 2 {
				t.Fatalf("recieve occurrences = %d, want 2", issue.Occurrences)
			}
			if issue.PenaltyWeight != 4 {
				t.Fatalf("recieve penalty = %v, want 4", issue.PenaltyWeight)
			}
			if !strings.Contains(issue.Fix, "receive") {
				t.Fatalf("fix should name the correction: %s", issue.Fix)
			}
		}
	}
}

func TestAnalyzeGrammarWholeWord(t *testing.T) {
	catalog := DefaultCatalog()

	issues := analyzeGrammar(mustDoc(t, "we could of done more and alot went well"), catalog)
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	for _, issue := range issues {
		if issue.Dimension != DimensionReadability {
			t.Fatalf("grammar dimension = %s, want readability", issue.Dimension)
		}
	}

	clean := analyzeGrammar(mustDoc(t, "we allotted plenty of time regardless"), catalog)
	if len(clean) != 0 {
		t.Fatalf("expected no issues, got %+v", clean)
	}
}
