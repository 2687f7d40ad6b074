package engine

import (
	"strings"
	"testing"
)

func findIssue(t *testing.T, issues []Issue, fragment string) Issue {
	t.Helper()
	for _, issue := range issues {
		if strings.Contains(issue.Message, fragment) {
			return issue
		}
	}
	t.Fatalf("no issue matching %q in %+v", fragment, issues)
	return Issue{}
}

func hasIssue(issues []Issue, fragment string) bool {
	for _, issue := range issues {
		if strings.Contains(issue.Message, fragment) {
			return true
		}
	}
	return false
}

func TestReadabilityFlagsLongSentences(t *testing.T) {
	// One unterminated 30-word run counts as a single sentence.
	text := strings.Repeat("delivered measurable results across multiple product teams ", 5)
	doc := mustDoc(t, text)

	res := analyzeReadability(doc, DefaultProfile())
	issue := findIssue(t, res.Issues, "Average sentence length")
	if res.AvgSentenceLength != 30 {
		t.Fatalf("avg sentence length = %v, want 30", res.AvgSentenceLength)
	}
	if issue.PenaltyWeight != 22 {
		t.Fatalf("penalty = %v, want 22", issue.PenaltyWeight)
	}
	if issue.Dimension != DimensionReadability {
		t.Fatalf("dimension = %s, want readability", issue.Dimension)
	}
}

func TestReadabilityFlagsLongParagraphs(t *testing.T) {
	line := "Managed budgets and vendor contracts for the platform group daily.\n"
	doc := mustDoc(t, strings.Repeat(line, 6))

	res := analyzeReadability(doc, DefaultProfile())
	if res.LongParagraphs != 1 {
		t.Fatalf("long paragraphs = %d, want 1", res.LongParagraphs)
	}
	issue := findIssue(t, res.Issues, "overly long paragraphs")
	if issue.PenaltyWeight != 8 {
		t.Fatalf("penalty = %v, want 8", issue.PenaltyWeight)
	}
}

func TestReadabilityPassiveVoiceAllowance(t *testing.T) {
	text := "Reports were generated daily. Tasks were assigned weekly. Goals were tracked monthly. Budgets were approved quarterly."
	doc := mustDoc(t, text)

	res := analyzeReadability(doc, DefaultProfile())
	if res.PassiveCount != 4 {
		t.Fatalf("passive count = %d, want 4", res.PassiveCount)
	}
	issue := findIssue(t, res.Issues, "Passive voice")
	if issue.Occurrences != 4 || issue.PenaltyWeight != 8 {
		t.Fatalf("occurrences = %d penalty = %v, want 4 and 8", issue.Occurrences, issue.PenaltyWeight)
	}
}

func TestReadabilityStrictProfileTightensPassiveAllowance(t *testing.T) {
	text := "Reports were generated daily. Tasks were assigned weekly. Goals were tracked monthly."
	doc := mustDoc(t, text)

	if res := analyzeReadability(doc, DefaultProfile()); hasIssue(res.Issues, "Passive voice") {
		t.Fatal("default profile should tolerate 3 passive instances")
	}
	if res := analyzeReadability(doc, StrictProfile()); !hasIssue(res.Issues, "Passive voice") {
		t.Fatal("strict profile should flag 3 passive instances")
	}
}

func TestReadabilityCleanText(t *testing.T) {
	doc := mustDoc(t, "Led the payments team. Shipped the rewrite on schedule. Cut costs.")

	res := analyzeReadability(doc, DefaultProfile())
	if len(res.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", res.Issues)
	}
}
