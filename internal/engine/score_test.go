package engine

import "testing"

func TestClampScore(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want int
	}{
		{name: "negative_clamps_to_zero", in: -12.5, want: 0},
		{name: "over_hundred_clamps", in: 104.2, want: 100},
		{name: "rounds_half_up", in: 50.5, want: 51},
		{name: "rounds_down", in: 87.4, want: 87},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampScore(tc.in); got != tc.want {
				t.Fatalf("clampScore(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestScoreATSHardCeiling(t *testing.T) {
	high := []Issue{{Priority: PriorityHigh, PenaltyWeight: 10, Dimension: DimensionATS}}
	if got := scoreATS(high); got != atsHardCeiling {
		t.Fatalf("score with high-priority issue = %d, want ceiling %d", got, atsHardCeiling)
	}

	medium := []Issue{{Priority: PriorityMedium, PenaltyWeight: 10, Dimension: DimensionATS}}
	if got := scoreATS(medium); got != 90 {
		t.Fatalf("score with medium issue = %d, want 90", got)
	}

	// A high-priority issue whose deductions already push below the ceiling
	// keeps the lower score.
	severe := []Issue{{Priority: PriorityHigh, PenaltyWeight: 60, Dimension: DimensionATS}}
	if got := scoreATS(severe); got != 40 {
		t.Fatalf("score with severe issue = %d, want 40", got)
	}
}

func TestScoreATSIgnoresOtherDimensions(t *testing.T) {
	issues := []Issue{{Priority: PriorityHigh, PenaltyWeight: 50, Dimension: DimensionImpact}}
	if got := scoreATS(issues); got != 100 {
		t.Fatalf("score = %d, want 100", got)
	}
}

func TestScoreImpactBonusesAreBounded(t *testing.T) {
	issues := []Issue{{Priority: PriorityMedium, PenaltyWeight: 30, Dimension: DimensionImpact}}
	impact := impactResult{StrongVerbCount: 12, NumericCount: 40}
	if got := scoreImpact(issues, impact); got != 80 {
		t.Fatalf("score = %d, want 80 (70 + 5 + 5)", got)
	}
}

func TestOverallScoreWeighting(t *testing.T) {
	weights := canonicalWeights

	full := ScoreSet{ATS: 100, Readability: 100, Impact: 100, Design: 100}
	if got := overallScore(full, weights); got != 100 {
		t.Fatalf("overall = %d, want 100", got)
	}

	noATS := ScoreSet{ATS: 0, Readability: 100, Impact: 100, Design: 100}
	if got := overallScore(noATS, weights); got != 50 {
		t.Fatalf("overall = %d, want 50", got)
	}
}
