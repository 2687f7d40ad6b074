package engine

// Priority classifies how urgently an issue should be addressed.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps a priority to a sortable weight, highest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Dimension names the score bucket an issue is charged against.
type Dimension string

const (
	DimensionATS         Dimension = "ats"
	DimensionReadability Dimension = "readability"
	DimensionImpact      Dimension = "impact"
	DimensionDesign      Dimension = "design"
)

// Issue is a single finding produced by an analyzer. Issues are value types
// and are never mutated after creation.
type Issue struct {
	Message       string    `json:"message"`
	Fix           string    `json:"fix"`
	Example       string    `json:"example,omitempty"`
	Examples      []string  `json:"examples,omitempty"`
	Priority      Priority  `json:"priority"`
	Occurrences   int       `json:"occurrences"`
	PenaltyWeight float64   `json:"penaltyWeight"`
	Dimension     Dimension `json:"dimension"`
}

// ScoreSet holds the four dimension scores, each an integer in [0,100].
type ScoreSet struct {
	ATS         int `json:"ats"`
	Readability int `json:"readability"`
	Impact      int `json:"impact"`
	Design      int `json:"design"`
}

// KeywordCategoryMatch reports the keywords found for one catalog category.
type KeywordCategoryMatch struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// KeywordReport summarizes keyword coverage against the catalog.
type KeywordReport struct {
	Matched []KeywordCategoryMatch `json:"matched"`
	Missing []string               `json:"missing"`
}

// SectionOrderReport compares detected section order with the canonical order.
type SectionOrderReport struct {
	Current []string `json:"current"`
	Ideal   []string `json:"ideal"`
	Ordered bool     `json:"ordered"`
}

// QuantificationReport summarizes how many experience bullets carry metrics.
type QuantificationReport struct {
	Total      int      `json:"total"`
	Quantified int      `json:"quantified"`
	Ratio      float64  `json:"ratio"`
	Examples   []string `json:"examples,omitempty"`
}

// FeedbackResult is the sole output of Analyze. It is self-contained and
// holds no references back into the engine.
type FeedbackResult struct {
	OverallScore   int                  `json:"overallScore"`
	Scores         ScoreSet             `json:"scores"`
	VerdictTier    string               `json:"verdictTier"`
	Verdict        string               `json:"verdict"`
	Strengths      []string             `json:"strengths"`
	QuickFixes     []Issue              `json:"quickFixes"`
	AllIssues      []Issue              `json:"allIssues"`
	Improvements   []string             `json:"improvements"`
	Keywords       KeywordReport        `json:"keywords"`
	SectionOrder   SectionOrderReport   `json:"sectionOrder"`
	Quantification QuantificationReport `json:"quantification"`
}
