package engine

import "regexp"

// Section describes one recognizable resume section.
type Section struct {
	Name          string
	Aliases       []string
	Required      bool
	PenaltyWeight float64
}

// DatePattern recognizes one date style. Quality in [0,1]; higher means more
// machine-parseable.
type DatePattern struct {
	Pattern *regexp.Regexp
	Label   string
	Quality float64
}

// FormattingRule flags one formatting defect. MatchAll counts every
// occurrence; otherwise a single hit counts once.
type FormattingRule struct {
	Pattern       *regexp.Regexp
	Label         string
	PenaltyWeight float64
	MatchAll      bool
}

// WordPattern pairs a phrase with its precompiled whole-word matcher.
type WordPattern struct {
	Word    string
	Pattern *regexp.Regexp
}

// KeywordCategory groups related keywords under a display name.
type KeywordCategory struct {
	Name     string
	Keywords []string
}

// DepthThresholds bounds bullet structure inside the experience section.
type DepthThresholds struct {
	MinBullets        int
	MaxBullets        int
	MinWordsPerBullet int
	MaxWordsPerBullet int
}

// DesignThresholds bounds the simulated design checks.
type DesignThresholds struct {
	MaxColors                int
	MinContrastRatio         float64
	UnprofessionalColorTerms []string
}

// SpellingPair maps a common misspelling to its correction.
type SpellingPair struct {
	Incorrect string
	Correct   string
	Pattern   *regexp.Regexp
}

// GrammarPattern flags a fixed grammatical mistake.
type GrammarPattern struct {
	Pattern *regexp.Regexp
	Label   string
	Fix     string
}

// Catalog is the static rule configuration consumed by every analyzer. It is
// constructed once and treated as read-only for the lifetime of the process.
type Catalog struct {
	Sections                []Section
	SectionOrder            []string
	DatePatterns            []DatePattern
	WeakVerbs               []WordPattern
	StrongVerbs             []string
	Buzzwords               []WordPattern
	FormattingRules         []FormattingRule
	KeywordCategories       []KeywordCategory
	MissingKeywordWatchlist []string
	QuantificationPatterns  []*regexp.Regexp
	ExperienceDepth         DepthThresholds
	Design                  DesignThresholds
	SpellingPairs           []SpellingPair
	GrammarPatterns         []GrammarPattern
}

func wholeWord(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

func wordPatterns(phrases []string) []WordPattern {
	out := make([]WordPattern, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, WordPattern{Word: p, Pattern: wholeWord(p)})
	}
	return out
}

// DefaultCatalog builds the standard rule set.
func DefaultCatalog() Catalog {
	return Catalog{
		Sections: []Section{
			{Name: "contact", Aliases: []string{"phone", "email", "address", "contact info"}, Required: true, PenaltyWeight: 12},
			{Name: "summary", Aliases: []string{"profile", "objective", "professional summary"}, Required: true, PenaltyWeight: 12},
			{Name: "experience", Aliases: []string{"work history", "employment", "professional experience"}, Required: true, PenaltyWeight: 12},
			{Name: "education", Aliases: []string{"qualifications", "academic background"}, Required: true, PenaltyWeight: 12},
			{Name: "skills", Aliases: []string{"technical skills", "competencies", "core competencies"}, Required: true, PenaltyWeight: 12},
			{Name: "certifications", Aliases: []string{"licenses", "certificates"}, Required: false, PenaltyWeight: 3},
			{Name: "projects", Aliases: []string{"key projects", "selected projects"}, Required: false, PenaltyWeight: 3},
			{Name: "languages", Aliases: []string{"language skills"}, Required: false, PenaltyWeight: 3},
			{Name: "awards", Aliases: []string{"honors", "achievements"}, Required: false, PenaltyWeight: 3},
		},
		SectionOrder: []string{
			"contact", "summary", "experience", "education", "skills",
			"certifications", "projects", "languages", "awards",
		},
		DatePatterns: []DatePattern{
			{Pattern: regexp.MustCompile(`\b\d{1,2}/\d{4}\s*[-–—]\s*\d{1,2}/\d{4}\b`), Label: "MM/YYYY range", Quality: 1.0},
			{Pattern: regexp.MustCompile(`\b\d{1,2}/\d{4}\b`), Label: "MM/YYYY", Quality: 0.9},
			{Pattern: regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}`), Label: "Text month abbreviations", Quality: 0.7},
			{Pattern: regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{4}`), Label: "Full month names", Quality: 0.6},
			{Pattern: regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}`), Label: "Day included in dates", Quality: 0.4},
		},
		WeakVerbs: wordPatterns([]string{
			"was", "were", "did", "made", "helped", "worked on",
			"assisted with", "took part in", "was responsible for",
			"handled", "looked after", "participated in",
			"fixed", "talked to", "set up", "made better",
			"used", "had", "got", "put", "tried",
		}),
		StrongVerbs: []string{
			"managed", "led", "developed", "created", "implemented",
			"spearheaded", "initiated", "transformed", "optimized",
			"increased", "reduced", "improved", "resolved", "consulted",
			"established", "designed", "built", "launched", "streamlined",
			"pioneered", "modernized", "enhanced",
		},
		Buzzwords: wordPatterns([]string{
			"hard working", "team player", "detail oriented", "self motivated",
			"go getter", "think outside the box", "synergy", "value add",
			"results driven", "fast learner", "excellent communicator",
			"dynamic", "proactive", "passionate", "innovative", "strategic",
			"proven track record", "seasoned professional", "go-to person",
		}),
		FormattingRules: []FormattingRule{
			{Pattern: regexp.MustCompile(`(?i)<table|<td|<tr|border=|cellpadding|cellspacing`), Label: "Tables detected", PenaltyWeight: 5},
			{Pattern: regexp.MustCompile(`(?i)column|multicolumn`), Label: "Multi-column layout", PenaltyWeight: 4},
			{Pattern: regexp.MustCompile(`(?i)header|footer`), Label: "Headers/footers", PenaltyWeight: 3},
			{Pattern: regexp.MustCompile(`(?i)<img|image|photo|graphic|\.jpg|\.png`), Label: "Images/graphics", PenaltyWeight: 5},
			{Pattern: regexp.MustCompile(`[●■★→◇♠♥♦♣]`), Label: "Fancy bullet points", PenaltyWeight: 2, MatchAll: true},
			{Pattern: regexp.MustCompile(`[^\x00-\x7F]+`), Label: "Special characters/emojis", PenaltyWeight: 1, MatchAll: true},
			{Pattern: regexp.MustCompile(`\n{4,}`), Label: "Excessive blank space", PenaltyWeight: 2, MatchAll: true},
			{Pattern: regexp.MustCompile(` {3,}`), Label: "Inconsistent spacing", PenaltyWeight: 1, MatchAll: true},
			{Pattern: regexp.MustCompile(`(?i)font-family|font-size|text-align|margin|padding|color=`), Label: "Inline styling", PenaltyWeight: 4},
			{Pattern: regexp.MustCompile(`[A-Z]{3,}`), Label: "Excessive capitalization", PenaltyWeight: 1, MatchAll: true},
		},
		KeywordCategories: []KeywordCategory{
			{Name: "Communication", Keywords: []string{"communication", "presentation", "writing", "reporting", "negotiation", "public speaking", "interpersonal skills"}},
			{Name: "Teamwork", Keywords: []string{"teamwork", "collaboration", "cross-functional", "interdepartmental", "team building", "conflict resolution"}},
			{Name: "Leadership", Keywords: []string{"leadership", "management", "supervision", "mentoring", "directed", "coached", "team leadership"}},
			{Name: "Problem Solving", Keywords: []string{"problem solving", "analytical", "troubleshooting", "diagnosed", "root cause analysis", "critical thinking"}},
			{Name: "Technical", Keywords: []string{"technical", "software", "hardware", "systems", "programming", "coding", "debugging"}},
			{Name: "Project Management", Keywords: []string{"project management", "agile", "scrum", "waterfall", "deliverables", "milestones", "stakeholder management"}},
			{Name: "Customer Service", Keywords: []string{"customer service", "client relations", "account management", "customer satisfaction", "client retention"}},
			{Name: "Sales", Keywords: []string{"sales", "business development", "revenue growth", "account acquisition", "pipeline management", "crm"}},
			{Name: "Data Analysis", Keywords: []string{"data analysis", "data visualization", "sql", "excel", "power bi", "tableau", "statistical analysis"}},
			{Name: "Finance", Keywords: []string{"financial analysis", "budgeting", "forecasting", "p&l", "financial reporting", "gaap"}},
		},
		MissingKeywordWatchlist: []string{
			"data analysis", "strategic planning", "budget management",
			"process improvement", "stakeholder management", "risk assessment",
			"performance metrics", "kpis", "roi", "sops", "change management",
			"continuous improvement", "best practices", "scalability",
			"user experience", "cloud computing", "cybersecurity",
		},
		QuantificationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\d+%`),
			regexp.MustCompile(`\$\d+`),
			regexp.MustCompile(`(?i)\d+\s*(?:years|months)`),
			regexp.MustCompile(`(?i)increased by \d+`),
			regexp.MustCompile(`(?i)reduced by \d+`),
			regexp.MustCompile(`(?i)from \d+ to \d+`),
			regexp.MustCompile(`(?i)\d+\s*(?:clients|customers)`),
			regexp.MustCompile(`(?i)team of \d+`),
			regexp.MustCompile(`(?i)over \d+`),
			regexp.MustCompile(`(?i)top \d+`),
		},
		ExperienceDepth: DepthThresholds{
			MinBullets:        3,
			MaxBullets:        5,
			MinWordsPerBullet: 10,
			MaxWordsPerBullet: 25,
		},
		Design: DesignThresholds{
			MaxColors:        3,
			MinContrastRatio: 4.5,
			UnprofessionalColorTerms: []string{
				"pink", "neon", "bright", "lime", "purple",
				"fuchsia", "yellow", "orange", "red",
			},
		},
		SpellingPairs: spellingPairs([][2]string{
			{"recieve", "receive"},
			{"seperate", "separate"},
			{"acheive", "achieve"},
			{"definately", "definitely"},
			{"managment", "management"},
			{"enviroment", "environment"},
			{"occured", "occurred"},
			{"responsable", "responsible"},
			{"sucessful", "successful"},
			{"experiance", "experience"},
		}),
		GrammarPatterns: []GrammarPattern{
			{Pattern: wholeWord("could of"), Label: `"could of"`, Fix: `Write "could have" instead of "could of"`},
			{Pattern: wholeWord("would of"), Label: `"would of"`, Fix: `Write "would have" instead of "would of"`},
			{Pattern: wholeWord("should of"), Label: `"should of"`, Fix: `Write "should have" instead of "should of"`},
			{Pattern: wholeWord("alot"), Label: `"alot"`, Fix: `Write "a lot" as two words`},
			{Pattern: wholeWord("between you and i"), Label: `"between you and I"`, Fix: `Use "between you and me"`},
			{Pattern: wholeWord("irregardless"), Label: `"irregardless"`, Fix: `Use "regardless"`},
		},
	}
}

func spellingPairs(pairs [][2]string) []SpellingPair {
	out := make([]SpellingPair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, SpellingPair{
			Incorrect: p[0],
			Correct:   p[1],
			Pattern:   wholeWord(p[0]),
		})
	}
	return out
}
