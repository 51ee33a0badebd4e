// Package types provides type definitions for structured data used throughout the culture-profiler system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Culture identifies one of the closed set of cultural classifications
// the engine can assign. The declaration order of AllCultures is the
// deterministic tie-break order for score argmax.
type Culture string

// Supported cultures
const (
	CultureUkrainian Culture = "ukrainian"
	CulturePolish    Culture = "polish"
	CultureEnglish   Culture = "english"
	CultureGerman    Culture = "german"
	CultureFrench    Culture = "french"
	CultureItalian   Culture = "italian"
	CultureSpanish   Culture = "spanish"
	CultureRussian   Culture = "russian"
	CultureSerbian   Culture = "serbian"
)

// AllCultures lists every culture in declaration order.
// Scoring iterates this slice so results are deterministic.
var AllCultures = []Culture{
	CultureUkrainian,
	CulturePolish,
	CultureEnglish,
	CultureGerman,
	CultureFrench,
	CultureItalian,
	CultureSpanish,
	CultureRussian,
	CultureSerbian,
}

// IsValid reports whether c is a member of the closed culture set.
func (c Culture) IsValid() bool {
	for _, known := range AllCultures {
		if c == known {
			return true
		}
	}
	return false
}

// Religion identifies one of the closed set of religious classifications.
type Religion string

// Supported religions
const (
	ReligionOrthodox   Religion = "orthodox"
	ReligionCatholic   Religion = "catholic"
	ReligionProtestant Religion = "protestant"
	ReligionSecular    Religion = "secular"
	ReligionMixed      Religion = "mixed"
)

// AllReligions lists every religion in declaration order (argmax tie-break order).
var AllReligions = []Religion{
	ReligionOrthodox,
	ReligionCatholic,
	ReligionProtestant,
	ReligionSecular,
	ReligionMixed,
}

// IsValid reports whether r is a member of the closed religion set.
func (r Religion) IsValid() bool {
	for _, known := range AllReligions {
		if r == known {
			return true
		}
	}
	return false
}

// ConfidenceTier is the discrete bucket derived from a continuous
// confidence score, used for workflow branching.
type ConfidenceTier string

// Confidence tiers from strongest to weakest
const (
	TierVeryHigh ConfidenceTier = "very_high"
	TierHigh     ConfidenceTier = "high"
	TierMedium   ConfidenceTier = "medium"
	TierLow      ConfidenceTier = "low"
	TierVeryLow  ConfidenceTier = "very_low"
)
