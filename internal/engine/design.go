package engine

import (
	"fmt"
	"regexp"
	"strings"
)

var colorTokenPattern = regexp.MustCompile(`(?i)#[0-9a-f]{6}|rgb\([^)]+\)|color:\s*[^;]+`)

// ContrastSample is one foreground/background pair with its contrast ratio.
type ContrastSample struct {
	TextColor string  `json:"textColor"`
	BGColor   string  `json:"bgColor"`
	Ratio     float64 `json:"ratio"`
}

// contrastSamples is a fixed illustrative set. Plain extracted text carries
// no layout or color-pairing information, so real contrast measurement is
// impossible here; these samples stand in for it and are documented as a
// simulation, not a measurement.
var contrastSamples = []ContrastSample{
	{TextColor: "#000000", BGColor: "#FFFFFF", Ratio: 21},
	{TextColor: "#333333", BGColor: "#CCCCCC", Ratio: 5.5},
	{TextColor: "#666666", BGColor: "#999999", Ratio: 2.3},
}

type designResult struct {
	Issues   []Issue
	Colors   []string
	Contrast []ContrastSample
}

// analyzeDesign extracts color tokens surviving in the text, flags palettes
// that are too large or unprofessional, and applies the simulated contrast
// check.
func analyzeDesign(doc Document, catalog Catalog) designResult {
	res := designResult{Contrast: contrastSamples}

	seen := make(map[string]bool)
	for _, token := range colorTokenPattern.FindAllString(doc.Collapsed, -1) {
		// Keep hex and rgb() tokens as-is; for a color property, keep the
		// named value after the colon.
		lower := strings.ToLower(token)
		if rest, ok := strings.CutPrefix(lower, "color:"); ok {
			token = strings.TrimSpace(rest)
			lower = token
		}
		if token == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		res.Colors = append(res.Colors, token)
	}

	if len(res.Colors) > catalog.Design.MaxColors {
		overage := len(res.Colors) - catalog.Design.MaxColors
		res.Issues = append(res.Issues, Issue{
			Message:       fmt.Sprintf("Too many colors (%d) - professional resumes should use %d colors max", len(res.Colors), catalog.Design.MaxColors),
			Fix:           "Reduce your color palette to a few professional colors",
			Priority:      PriorityMedium,
			Occurrences:   len(res.Colors),
			PenaltyWeight: 5 * float64(overage),
			Dimension:     DimensionDesign,
		})
	}

	var unprofessional []string
	for _, color := range res.Colors {
		lower := strings.ToLower(color)
		for _, term := range catalog.Design.UnprofessionalColorTerms {
			if strings.Contains(lower, term) {
				unprofessional = append(unprofessional, color)
				break
			}
		}
	}
	if len(unprofessional) > 0 {
		res.Issues = append(res.Issues, Issue{
			Message:       "Unprofessional colors detected: " + strings.Join(unprofessional, ", "),
			Fix:           "Use more professional, muted colors (blues, dark grays, etc.)",
			Priority:      PriorityMedium,
			Occurrences:   len(unprofessional),
			PenaltyWeight: 4 * float64(len(unprofessional)),
			Dimension:     DimensionDesign,
		})
	}

	var poor []ContrastSample
	for _, sample := range res.Contrast {
		if sample.Ratio < catalog.Design.MinContrastRatio {
			poor = append(poor, sample)
		}
	}
	if len(poor) > 0 {
		res.Issues = append(res.Issues, Issue{
			Message:       fmt.Sprintf("Poor contrast detected in %d color combinations", len(poor)),
			Fix:           fmt.Sprintf("Ensure text has sufficient contrast with background (minimum %.1f:1 ratio)", catalog.Design.MinContrastRatio),
			Example:       fmt.Sprintf("Avoid combinations like %s on %s", poor[0].TextColor, poor[0].BGColor),
			Priority:      PriorityMedium,
			Occurrences:   len(poor),
			PenaltyWeight: 8,
			Dimension:     DimensionDesign,
		})
	}
	return res
}
