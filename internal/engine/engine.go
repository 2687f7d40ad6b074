// Package engine implements the rule-based resume quality checker: a set of
// pure analyzers over normalized plain text, per-dimension scorers and a
// feedback generator. The engine performs no I/O, keeps no state between
// calls, and is safe to run concurrently across documents.
package engine

// Analyze runs every analyzer in a fixed order over the raw extracted text,
// reduces their findings into dimension scores and returns one consolidated
// result. It fails only with ErrEmptyDocument; a poor resume is a valid,
// fully-scored result, never an error.
func Analyze(rawText string, catalog Catalog, profile Profile) (FeedbackResult, error) {
	doc, err := NormalizeDocument(rawText)
	if err != nil {
		return FeedbackResult{}, err
	}

	sections := analyzeSections(doc, catalog)
	formatting := analyzeFormatting(doc, catalog)
	dates := analyzeDates(doc, catalog)
	experience := analyzeExperienceDepth(doc, catalog)
	readability := analyzeReadability(doc, profile)
	impact := analyzeImpact(doc, catalog, profile)
	design := analyzeDesign(doc, catalog)
	order := analyzeSectionOrder(doc, catalog)
	quantification := analyzeQuantification(doc, catalog, profile)

	var spelling, grammar []Issue
	if profile.CheckLanguage {
		spelling = analyzeSpelling(doc, catalog)
		grammar = analyzeGrammar(doc, catalog)
	}

	scored := make([]Issue, 0, 16)
	scored = append(scored, sections.Issues...)
	scored = append(scored, formatting...)
	scored = append(scored, dates.Issues...)
	scored = append(scored, experience...)
	scored = append(scored, readability.Issues...)
	scored = append(scored, impact.Issues...)
	scored = append(scored, design.Issues...)
	scored = append(scored, order.Issues...)
	scored = append(scored, quantification.Issues...)
	scored = append(scored, spelling...)
	scored = append(scored, grammar...)

	scores := ScoreSet{
		ATS:         scoreATS(scored),
		Readability: scoreReadability(scored),
		Impact:      scoreImpact(scored, impact),
		Design:      scoreDesign(scored),
	}

	return generateFeedback(feedbackInput{
		Profile:        profile,
		Scores:         scores,
		Sections:       sections,
		Formatting:     formatting,
		Dates:          dates,
		Experience:     experience,
		Readability:    readability,
		Impact:         impact,
		Design:         design,
		Order:          order,
		Quantification: quantification,
		Spelling:       spelling,
		Grammar:        grammar,
		Keywords:       keywordCoverage(doc, catalog),
	}), nil
}
