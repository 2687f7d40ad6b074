package engine

// OverallWeights combines the four dimension scores into one number.
// Weights must sum to 1.
type OverallWeights struct {
	ATS         float64
	Readability float64
	Impact      float64
	Design      float64
}

// VerdictBreakpoints are the inclusive lower bounds for each tier above
// "poor".
type VerdictBreakpoints struct {
	Excellent int
	Good      int
	NeedsWork int
}

// Profile is a named parameter set controlling how harshly a document is
// scored. Profiles are plain values; callers may construct their own for
// testing.
type Profile struct {
	Name string

	MinQuantifiedRatio    float64
	CheckLanguage         bool
	MaxAvgSentenceWords   float64
	MaxParagraphWords     int
	PassiveVoiceAllowance int
	MinNumericTokens      int
	StrengthNumericTokens int
	StrengthStrongVerbs   int

	Weights     OverallWeights
	Breakpoints VerdictBreakpoints
}

// canonicalWeights and canonicalBreakpoints are shared by every profile; only
// thresholds vary between profiles.
var (
	canonicalWeights     = OverallWeights{ATS: 0.5, Readability: 0.2, Impact: 0.2, Design: 0.1}
	canonicalBreakpoints = VerdictBreakpoints{Excellent: 95, Good: 80, NeedsWork: 60}
)

// DefaultProfile scores with the standard thresholds. Spelling and grammar
// checks are off.
func DefaultProfile() Profile {
	return Profile{
		Name:                  "default",
		MinQuantifiedRatio:    0.7,
		CheckLanguage:         false,
		MaxAvgSentenceWords:   18,
		MaxParagraphWords:     50,
		PassiveVoiceAllowance: 3,
		MinNumericTokens:      2,
		StrengthNumericTokens: 5,
		StrengthStrongVerbs:   5,
		Weights:               canonicalWeights,
		Breakpoints:           canonicalBreakpoints,
	}
}

// StrictProfile raises the quantification bar and enables spelling and
// grammar checks.
func StrictProfile() Profile {
	p := DefaultProfile()
	p.Name = "strict"
	p.MinQuantifiedRatio = 0.8
	p.CheckLanguage = true
	p.PassiveVoiceAllowance = 2
	return p
}

// ProfileByName resolves a profile name, defaulting to the standard profile
// for unknown or empty names.
func ProfileByName(name string) Profile {
	switch name {
	case "strict":
		return StrictProfile()
	default:
		return DefaultProfile()
	}
}
