package engine

import "sort"

const quickFixLimit = 5

// Verdict tiers, from best to worst.
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierNeedsWork = "needs-work"
	TierPoor      = "poor"
)

func verdictTier(overall int, breakpoints VerdictBreakpoints) string {
	switch {
	case overall >= breakpoints.Excellent:
		return TierExcellent
	case overall >= breakpoints.Good:
		return TierGood
	case overall >= breakpoints.NeedsWork:
		return TierNeedsWork
	default:
		return TierPoor
	}
}

func verdictMessage(tier string) string {
	switch tier {
	case TierExcellent:
		return "Exceptional! Your resume is perfectly optimized for both ATS and human readers."
	case TierGood:
		return "Strong! Your resume is well-optimized but has room for improvement."
	case TierNeedsWork:
		return "Needs work. Your resume needs significant improvements to be competitive."
	default:
		return "Poor quality. Your resume requires restructuring to pass modern ATS systems."
	}
}

// sortIssuesForQuickFixes orders issues by penalty weight descending, ties
// broken by priority rank. The sort is stable so equal issues keep analyzer
// order and results stay deterministic.
func sortIssuesForQuickFixes(issues []Issue) []Issue {
	out := append([]Issue(nil), issues...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PenaltyWeight != out[j].PenaltyWeight {
			return out[i].PenaltyWeight > out[j].PenaltyWeight
		}
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out
}

// dedupeStrings keeps the first occurrence of each value.
func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// feedbackInput carries everything the generator needs, grouped per analyzer
// so empty issue lists can be turned into strengths.
type feedbackInput struct {
	Profile        Profile
	Scores         ScoreSet
	Sections       sectionResult
	Formatting     []Issue
	Dates          dateResult
	Experience     []Issue
	Readability    readabilityResult
	Impact         impactResult
	Design         designResult
	Order          orderResult
	Quantification quantificationResult
	Spelling       []Issue
	Grammar        []Issue
	Keywords       KeywordReport
}

// generateFeedback folds scores and per-analyzer results into the final
// consolidated result.
func generateFeedback(in feedbackInput) FeedbackResult {
	allIssues := make([]Issue, 0, 16)
	allIssues = append(allIssues, in.Sections.Issues...)
	allIssues = append(allIssues, in.Formatting...)
	allIssues = append(allIssues, in.Dates.Issues...)
	allIssues = append(allIssues, in.Experience...)
	allIssues = append(allIssues, in.Readability.Issues...)
	allIssues = append(allIssues, in.Impact.Issues...)
	allIssues = append(allIssues, in.Design.Issues...)
	allIssues = append(allIssues, in.Order.Issues...)
	allIssues = append(allIssues, in.Quantification.Issues...)
	allIssues = append(allIssues, in.Spelling...)
	allIssues = append(allIssues, in.Grammar...)

	overall := overallScore(in.Scores, in.Profile.Weights)
	tier := verdictTier(overall, in.Profile.Breakpoints)

	strengths := append([]string(nil), in.Impact.Strengths...)
	if len(in.Sections.Issues) == 0 {
		strengths = append(strengths, "All required sections included")
	}
	if len(in.Formatting) == 0 {
		strengths = append(strengths, "Clean, professional formatting")
	}
	if len(in.Readability.Issues) == 0 {
		strengths = append(strengths, "Excellent readability")
	}
	if len(in.Design.Issues) == 0 {
		strengths = append(strengths, "Professional design")
	}
	if len(in.Quantification.Issues) == 0 {
		strengths = append(strengths, "Strong use of quantifiable achievements")
	}
	if in.Profile.CheckLanguage && len(in.Spelling) == 0 {
		strengths = append(strengths, "No common misspellings detected")
	}
	if in.Profile.CheckLanguage && len(in.Grammar) == 0 {
		strengths = append(strengths, "No grammar slips detected")
	}

	ranked := sortIssuesForQuickFixes(allIssues)
	quickFixes := ranked
	if len(quickFixes) > quickFixLimit {
		quickFixes = quickFixes[:quickFixLimit]
	}

	messages := make([]string, 0, len(allIssues))
	for _, issue := range allIssues {
		messages = append(messages, issue.Message)
	}

	return FeedbackResult{
		OverallScore:   overall,
		Scores:         in.Scores,
		VerdictTier:    tier,
		Verdict:        verdictMessage(tier),
		Strengths:      dedupeStrings(strengths),
		QuickFixes:     quickFixes,
		AllIssues:      allIssues,
		Improvements:   dedupeStrings(messages),
		Keywords:       in.Keywords,
		SectionOrder:   in.Order.Report,
		Quantification: in.Quantification.Report,
	}
}
