package engine

import (
	"strings"
	"testing"
)

const fourOfFiveQuantified = `Experience
Acme Corp
- Increased revenue by 25% in the first year
- Saved $400 per quarter on hosting
- Led a team of 9 people across two offices
- Supported 30 clients through a platform migration
- Improved the internal hiring process end to end

Education:
State University`

func TestAnalyzeQuantificationBoundaryInclusive(t *testing.T) {
	catalog := DefaultCatalog()
	doc := mustDoc(t, fourOfFiveQuantified)

	cases := []struct {
		name    string
		profile Profile
	}{
		{name: "default_minimum_0_7", profile: DefaultProfile()},
		{name: "strict_minimum_0_8", profile: StrictProfile()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := analyzeQuantification(doc, catalog, tc.profile)
			if res.Report.Total != 5 {
				t.Fatalf("total bullets = %d, want 5", res.Report.Total)
			}
			if res.Report.Quantified != 4 {
				t.Fatalf("quantified bullets = %d, want 4", res.Report.Quantified)
			}
			if res.Report.Ratio != 0.8 {
				t.Fatalf("ratio = %v, want 0.8", res.Report.Ratio)
			}
			if len(res.Issues) != 0 {
				t.Fatalf("ratio at the minimum must not produce an issue, got %d", len(res.Issues))
			}
		})
	}
}

func TestAnalyzeQuantificationBelowMinimum(t *testing.T) {
	catalog := DefaultCatalog()
	text := `Experience
Acme Corp
- Increased revenue by 25% in the first year
- Improved the internal hiring process end to end
- Organized the quarterly planning ritual for the group

Education:
State University`
	res := analyzeQuantification(mustDoc(t, text), catalog, DefaultProfile())

	if len(res.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(res.Issues))
	}
	issue := res.Issues[0]
	if issue.Priority != PriorityHigh {
		t.Fatalf("priority = %s, want high", issue.Priority)
	}
	if len(issue.Examples) != 2 {
		t.Fatalf("examples = %d, want 2", len(issue.Examples))
	}
	for _, example := range issue.Examples {
		if len([]rune(example)) > 53 {
			t.Fatalf("example too long: %q", example)
		}
	}
}

func TestAnalyzeQuantificationNoBullets(t *testing.T) {
	catalog := DefaultCatalog()
	res := analyzeQuantification(mustDoc(t, "Experience\nplain prose without any bullet lines"), catalog, DefaultProfile())

	if res.Report.Total != 0 {
		t.Fatalf("total = %d, want 0", res.Report.Total)
	}
	if len(res.Issues) != 1 || !strings.Contains(res.Issues[0].Message, "No bullet points") {
		t.Fatalf("expected terminal no-bullets issue, got %+v", res.Issues)
	}
}
