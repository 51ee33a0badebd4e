// Package assignment applies consistency rules on top of a profiling
// result and decides whether the assignment needs user confirmation or
// follow-up questioning.
package assignment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/culture-profiler/internal/catalog"
	"github.com/jonathan/culture-profiler/internal/profiling"
	"github.com/jonathan/culture-profiler/internal/types"
)

// Consistency-rule confidence deltas.
const (
	directCultureBonus    = 0.20
	languageMatchBonus    = 0.10
	languageMismatchDelta = -0.10
	religionMatchBonus    = 0.10
)

// Confidence tier thresholds (inclusive lower bounds).
const (
	veryHighThreshold = 0.90
	highThreshold     = 0.80
	mediumThreshold   = 0.60
	lowThreshold      = 0.40
)

// Confirmation triggers.
const (
	minResponsesForAutoAssign = 4
	confirmationConfidence    = 0.60
	confirmationGap           = 0.30
)

// Assigner turns raw responses into an assignment decision. It holds
// only read-only catalog data and is safe for concurrent use. locale
// selects follow-up question language.
type Assigner struct {
	catalog  *catalog.Catalog
	profiler *profiling.Profiler
	locale   string
}

// NewAssigner builds an assigner over the catalog using the default
// follow-up locale.
func NewAssigner(cat *catalog.Catalog) *Assigner {
	return NewAssignerWithLocale(cat, catalog.DefaultLanguage)
}

// NewAssignerWithLocale builds an assigner whose follow-up questions
// are rendered for the given locale. Unsupported locales fall back to
// the default language.
func NewAssignerWithLocale(cat *catalog.Catalog, locale string) *Assigner {
	if locale == "" || !cat.SupportedLanguage(locale) {
		locale = catalog.DefaultLanguage
	}
	return &Assigner{
		catalog:  cat,
		profiler: profiling.NewProfiler(cat),
		locale:   locale,
	}
}

// AssignCulture profiles the responses, applies the consistency rules
// in order, classifies the adjusted confidence into a tier and decides
// on confirmation and follow-up questioning. It never fails: degraded
// input produces a usable, lower-confidence result.
func (a *Assigner) AssignCulture(responses []types.UserResponse) types.AssignmentResult {
	profile := a.profiler.AnalyzeProfile(responses)

	confidence := profile.Confidence
	var rationaleParts []string
	for _, rule := range []consistencyRule{
		a.directCultureRule,
		a.languageConsistencyRule,
		a.religionConsistencyRule,
	} {
		delta, note, fired := rule(responses, profile)
		if !fired {
			continue
		}
		confidence += delta
		rationaleParts = append(rationaleParts, note)
	}
	confidence = clamp01(confidence)

	tier := tierFor(confidence)

	return types.AssignmentResult{
		AssignmentID:         uuid.NewString(),
		Culture:              profile.PrimaryCulture,
		Religion:             profile.PrimaryReligion,
		Tier:                 tier,
		Confidence:           confidence,
		Rationale:            buildRationale(rationaleParts, confidence),
		Alternatives:         profile.Alternatives,
		RequiresConfirmation: requiresConfirmation(len(responses), confidence, profile.Alternatives),
		FollowUpQuestions:    a.followUpQuestions(tier, profile),
		Profile:              profile.Profile,
	}
}

// consistencyRule inspects the responses and the profiling result and
// returns a signed confidence delta plus a rationale fragment. fired is
// false when the rule does not apply.
type consistencyRule func(responses []types.UserResponse, profile types.ProfilingResult) (delta float64, note string, fired bool)

// directCultureRule rewards an explicit answer to the direct-culture
// question.
func (a *Assigner) directCultureRule(responses []types.UserResponse, _ types.ProfilingResult) (float64, string, bool) {
	for _, resp := range responses {
		if resp.QuestionID == catalog.QuestionDirectCulture {
			return directCultureBonus, "Direct culture answer provided", true
		}
	}
	return 0, "", false
}

// languageConsistencyRule checks the language preference against the
// primary culture via the static language table. A matching language
// raises confidence; a language that predicts a different culture
// records a detected conflict and lowers it.
func (a *Assigner) languageConsistencyRule(responses []types.UserResponse, profile types.ProfilingResult) (float64, string, bool) {
	for _, resp := range responses {
		if resp.QuestionID != catalog.QuestionLanguagePreference {
			continue
		}
		expected, ok := a.catalog.ExpectedCultureForLanguageOption(resp.SelectedOptionID)
		if !ok {
			return 0, "", false
		}
		if expected == profile.PrimaryCulture {
			return languageMatchBonus, "Language preference matches cultural profile", true
		}
		return languageMismatchDelta,
			fmt.Sprintf("Language preference conflicts with cultural profile (suggests %s)", expected),
			true
	}
	return 0, "", false
}

// religionConsistencyRule rewards agreement between the primary
// religion's commonly associated cultures and the primary culture. An
// unknown religion means the rule does not fire, not an error.
func (a *Assigner) religionConsistencyRule(_ []types.UserResponse, profile types.ProfilingResult) (float64, string, bool) {
	for _, culture := range a.catalog.PreferredCultures(profile.PrimaryReligion) {
		if culture == profile.PrimaryCulture {
			return religionMatchBonus, "Religious affiliation consistent with culture", true
		}
	}
	return 0, "", false
}

// requiresConfirmation applies the three confirmation triggers. The gap
// trigger deliberately compares absolute final confidence against the
// top alternative's normalized score; callers depend on the prompting
// behavior this comparison produces.
func requiresConfirmation(responseCount int, confidence float64, alternatives []types.CultureScore) bool {
	if responseCount < minResponsesForAutoAssign {
		return true
	}
	if confidence < confirmationConfidence {
		return true
	}
	if len(alternatives) > 0 && confidence-alternatives[0].Score < confirmationGap {
		return true
	}
	return false
}

// tierFor classifies confidence into a discrete tier.
func tierFor(confidence float64) types.ConfidenceTier {
	switch {
	case confidence >= veryHighThreshold:
		return types.TierVeryHigh
	case confidence >= highThreshold:
		return types.TierHigh
	case confidence >= mediumThreshold:
		return types.TierMedium
	case confidence >= lowThreshold:
		return types.TierLow
	default:
		return types.TierVeryLow
	}
}

// buildRationale joins every rule note that fired with the formatted
// final confidence, falling back to a generic sentence when no rule
// applied.
func buildRationale(parts []string, confidence float64) string {
	if len(parts) == 0 {
		parts = []string{"Assignment based on weighted answer scoring"}
	}
	return fmt.Sprintf("%s. Final confidence: %.0f%%", strings.Join(parts, ". "), confidence*100)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
