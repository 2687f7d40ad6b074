package engine

import (
	"strings"
	"testing"
)

func TestAnalyzeDesignContrastSimulationAlwaysFlags(t *testing.T) {
	catalog := DefaultCatalog()
	res := analyzeDesign(mustDoc(t, "plain text with no style information"), catalog)

	if len(res.Issues) != 1 {
		t.Fatalf("expected only the simulated contrast issue, got %+v", res.Issues)
	}
	if !strings.Contains(res.Issues[0].Message, "Poor contrast") {
		t.Fatalf("unexpected issue: %s", res.Issues[0].Message)
	}
	if len(res.Contrast) != 3 {
		t.Fatalf("contrast samples = %d, want 3", len(res.Contrast))
	}
}

func TestAnalyzeDesignTooManyColors(t *testing.T) {
	catalog := DefaultCatalog()
	text := "styles #111111 #222222 #333333 #444444 #555555"
	res := analyzeDesign(mustDoc(t, text), catalog)

	issue, ok := func() (Issue, bool) {
		for _, i := range res.Issues {
			if strings.Contains(i.Message, "Too many colors") {
				return i, true
			}
		}
		return Issue{}, false
	}()
	if !ok {
		t.Fatalf("expected too-many-colors issue, got %+v", res.Issues)
	}
	if issue.PenaltyWeight != 10 {
		t.Fatalf("penalty = %v, want 10 (5 per color over the limit)", issue.PenaltyWeight)
	}
	if len(res.Colors) != 5 {
		t.Fatalf("colors = %d, want 5", len(res.Colors))
	}
}

func TestAnalyzeDesignDeduplicatesColors(t *testing.T) {
	catalog := DefaultCatalog()
	res := analyzeDesign(mustDoc(t, "#ABCDEF then #abcdef then #ABCDEF again"), catalog)
	if len(res.Colors) != 1 {
		t.Fatalf("colors = %v, want one case-insensitive entry", res.Colors)
	}
}

func TestAnalyzeDesignUnprofessionalColorTerm(t *testing.T) {
	catalog := DefaultCatalog()
	res := analyzeDesign(mustDoc(t, "heading color: neon green; body color: black;"), catalog)

	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue.Message, "Unprofessional colors") {
			found = true
			if issue.Priority != PriorityMedium {
				t.Fatalf("priority = %s, want medium", issue.Priority)
			}
		}
	}
	if !found {
		t.Fatalf("expected unprofessional-colors issue, got %+v", res.Issues)
	}
}
