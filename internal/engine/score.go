package engine

import "math"

// atsHardCeiling caps the ATS score whenever a disqualifying (high-priority)
// content or formatting defect exists, regardless of how small the numeric
// deductions are.
const atsHardCeiling = 70

func clampScore(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return int(math.Round(v))
}

func sumPenalties(issues []Issue, dim Dimension) float64 {
	var total float64
	for _, issue := range issues {
		if issue.Dimension == dim {
			total += issue.PenaltyWeight
		}
	}
	return total
}

func hasHighPriority(issues []Issue, dim Dimension) bool {
	for _, issue := range issues {
		if issue.Dimension == dim && issue.Priority == PriorityHigh {
			return true
		}
	}
	return false
}

// scoreATS deducts every ATS-dimension penalty and applies the hard ceiling.
func scoreATS(issues []Issue) int {
	score := 100 - sumPenalties(issues, DimensionATS)
	if hasHighPriority(issues, DimensionATS) && score > atsHardCeiling {
		score = atsHardCeiling
	}
	return clampScore(score)
}

func scoreReadability(issues []Issue) int {
	return clampScore(100 - sumPenalties(issues, DimensionReadability))
}

// scoreImpact deducts penalties and grants small bounded bonuses for strong
// verbs and numeric density.
func scoreImpact(issues []Issue, impact impactResult) int {
	score := 100 - sumPenalties(issues, DimensionImpact)
	score += math.Min(5, float64(impact.StrongVerbCount))
	score += math.Min(5, float64(impact.NumericCount)*0.5)
	return clampScore(score)
}

func scoreDesign(issues []Issue) int {
	return clampScore(100 - sumPenalties(issues, DimensionDesign))
}

// overallScore is the weighted sum of the clamped dimension scores.
func overallScore(scores ScoreSet, weights OverallWeights) int {
	total := float64(scores.ATS)*weights.ATS +
		float64(scores.Readability)*weights.Readability +
		float64(scores.Impact)*weights.Impact +
		float64(scores.Design)*weights.Design
	return clampScore(total)
}
