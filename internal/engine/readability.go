package engine

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)
	passiveVoicePattern  = regexp.MustCompile(`(?i)\b(?:was|were|been|being|am|are|is)\s+[a-z]+\b`)
)

type readabilityResult struct {
	Issues            []Issue
	AvgSentenceLength float64
	LongParagraphs    int
	PassiveCount      int
}

// analyzeReadability measures average sentence length, over-long paragraphs
// and passive-voice cues. Penalties scale with the degree of overage rather
// than deducting a flat amount per issue.
func analyzeReadability(doc Document, profile Profile) readabilityResult {
	var res readabilityResult

	var sentences []string
	for _, s := range sentenceSplitPattern.Split(doc.Collapsed, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}
	totalWords := 0
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}
	if len(sentences) > 0 {
		res.AvgSentenceLength = float64(totalWords) / float64(len(sentences))
	}
	if res.AvgSentenceLength > profile.MaxAvgSentenceWords {
		overage := res.AvgSentenceLength - profile.MaxAvgSentenceWords
		res.Issues = append(res.Issues, Issue{
			Message:       fmt.Sprintf("Average sentence length is too long (%d words)", int(math.Round(res.AvgSentenceLength))),
			Fix:           "Break long sentences into shorter ones (15-20 words maximum)",
			Example:       "Instead of one sentence carrying a whole role description, split it into two focused statements",
			Priority:      PriorityMedium,
			Occurrences:   1,
			PenaltyWeight: math.Min(25, 10+overage),
			Dimension:     DimensionReadability,
		})
	}

	for _, p := range positionSplitPattern.Split(doc.Text, -1) {
		if len(strings.Fields(p)) > profile.MaxParagraphWords {
			res.LongParagraphs++
		}
	}
	if res.LongParagraphs > 0 {
		res.Issues = append(res.Issues, Issue{
			Message:       fmt.Sprintf("%d overly long paragraphs detected", res.LongParagraphs),
			Fix:           "Keep paragraphs short (3-5 sentences max)",
			Example:       "Break long paragraphs into smaller chunks with clear focus",
			Priority:      PriorityMedium,
			Occurrences:   res.LongParagraphs,
			PenaltyWeight: 8 * math.Min(float64(res.LongParagraphs), 3),
			Dimension:     DimensionReadability,
		})
	}

	res.PassiveCount = len(passiveVoicePattern.FindAllStringIndex(doc.Collapsed, -1))
	if res.PassiveCount > profile.PassiveVoiceAllowance {
		res.Issues = append(res.Issues, Issue{
			Message:       fmt.Sprintf("Passive voice detected (%d instances)", res.PassiveCount),
			Fix:           "Rewrite sentences in active voice for stronger impact",
			Example:       "Change 'The project was completed by me' to 'I completed the project'",
			Priority:      PriorityMedium,
			Occurrences:   res.PassiveCount,
			PenaltyWeight: math.Min(24, 2*float64(res.PassiveCount)),
			Dimension:     DimensionReadability,
		})
	}
	return res
}
