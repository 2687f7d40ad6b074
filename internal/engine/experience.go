package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// experienceBlockPattern slices from the experience heading up to the next
// heading-like line ("Word:") or end of document. This is a best-effort
// heading-delimited cut, not a structured parser; mis-detection on unusual
// layouts is an accepted limitation.
var experienceBlockPattern = regexp.MustCompile(`(?is)\bexperience\b.*?\n(.*?)(\n[a-z]+:|$)`)

// extractExperienceBlock returns the experience slice of the document and
// whether one was found at all.
func extractExperienceBlock(doc Document) (string, bool) {
	loc := experienceBlockPattern.FindStringSubmatchIndex(doc.Text)
	if loc == nil {
		return "", false
	}
	// Stop before the terminating heading so it is not mistaken for content.
	return doc.Text[loc[0]:loc[4]], true
}

var positionSplitPattern = regexp.MustCompile(`\n\s*\n`)

// splitPositions breaks an experience block into positions on blank-line
// boundaries.
func splitPositions(block string) []string {
	var out []string
	for _, p := range positionSplitPattern.Split(block, -1) {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

var ordinalBulletPattern = regexp.MustCompile(`^\d+\.`)

// isBulletLine reports whether a trimmed line looks like a bullet item.
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "-") ||
		ordinalBulletPattern.MatchString(line)
}

// bulletLines extracts trimmed bullet items from a chunk of text.
func bulletLines(chunk string) []string {
	var out []string
	for _, line := range strings.Split(chunk, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && isBulletLine(trimmed) {
			out = append(out, trimmed)
		}
	}
	return out
}

// analyzeExperienceDepth flags positions with too few or too many bullets and
// bullets outside the word-count band. A document with no detectable
// experience block is itself a high-priority issue rather than an error, so
// the rest of the document can still be scored.
func analyzeExperienceDepth(doc Document, catalog Catalog) []Issue {
	block, ok := extractExperienceBlock(doc)
	if !ok {
		return []Issue{{
			Message:       "No detailed work experience section found",
			Fix:           "Add a detailed work experience section with 3-5 bullet points per position",
			Example:       "For each position, include achievements with metrics like 'Increased sales by 30% in Q2 2021'",
			Priority:      PriorityHigh,
			Occurrences:   1,
			PenaltyWeight: 15,
			Dimension:     DimensionATS,
		}}
	}

	depth := catalog.ExperienceDepth
	var issues []Issue
	for _, position := range splitPositions(block) {
		bullets := bulletLines(position)
		if len(bullets) < depth.MinBullets {
			issues = append(issues, Issue{
				Message:       fmt.Sprintf("Position has too few bullet points (%d)", len(bullets)),
				Fix:           fmt.Sprintf("Add more achievements to reach %d-%d bullet points per position", depth.MinBullets, depth.MaxBullets),
				Example:       "Include specific accomplishments with metrics for each role",
				Priority:      PriorityMedium,
				Occurrences:   1,
				PenaltyWeight: 6,
				Dimension:     DimensionATS,
			})
		}
		if len(bullets) > depth.MaxBullets {
			issues = append(issues, Issue{
				Message:       fmt.Sprintf("Position has too many bullet points (%d)", len(bullets)),
				Fix:           fmt.Sprintf("Reduce to the %d-%d most relevant and impactful bullet points", depth.MinBullets, depth.MaxBullets),
				Example:       "Keep only the most significant achievements for each role",
				Priority:      PriorityLow,
				Occurrences:   1,
				PenaltyWeight: 3,
				Dimension:     DimensionATS,
			})
		}
		for _, bullet := range bullets {
			words := len(strings.Fields(bullet))
			if words < depth.MinWordsPerBullet {
				issues = append(issues, Issue{
					Message:       fmt.Sprintf("Bullet point is too short (%d words)", words),
					Fix:           fmt.Sprintf("Expand bullet points to %d-%d words with more details", depth.MinWordsPerBullet, depth.MaxWordsPerBullet),
					Example:       "Add metrics and specifics to each achievement",
					Priority:      PriorityMedium,
					Occurrences:   1,
					PenaltyWeight: 2,
					Dimension:     DimensionATS,
				})
			}
			if words > depth.MaxWordsPerBullet {
				issues = append(issues, Issue{
					Message:       fmt.Sprintf("Bullet point is too long (%d words)", words),
					Fix:           fmt.Sprintf("Shorten bullet points to %d-%d words for better readability", depth.MinWordsPerBullet, depth.MaxWordsPerBullet),
					Example:       "Break long bullet points into multiple concise ones",
					Priority:      PriorityLow,
					Occurrences:   1,
					PenaltyWeight: 2,
					Dimension:     DimensionATS,
				})
			}
		}
	}
	return issues
}
