package assignment

import (
	"testing"

	"github.com/jonathan/culture-profiler/internal/catalog"
	"github.com/jonathan/culture-profiler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssigner() *Assigner {
	return NewAssigner(catalog.Default())
}

func TestAssignCulture_DirectAndLanguageAgreement(t *testing.T) {
	assigner := newTestAssigner()

	result := assigner.AssignCulture([]types.UserResponse{
		{QuestionID: "direct_culture", SelectedOptionID: "culture_ukrainian", ConfidenceLevel: 8},
		{QuestionID: "language_preference", SelectedOptionID: "lang_ukrainian", ConfidenceLevel: 8},
	})

	assert.Equal(t, types.CultureUkrainian, result.Culture)
	// both matching rules fired: +0.20 direct and +0.10 language
	assert.Contains(t, result.Rationale, "Direct culture answer provided")
	assert.Contains(t, result.Rationale, "Language preference matches cultural profile")
	assert.GreaterOrEqual(t, result.Confidence, 0.90)
	assert.Contains(t, []types.ConfidenceTier{types.TierHigh, types.TierVeryHigh}, result.Tier)
	// two responses are still below the auto-assign minimum
	assert.True(t, result.RequiresConfirmation)
}

func TestAssignCulture_LanguageConflictLowersConfidence(t *testing.T) {
	assigner := newTestAssigner()

	aligned := assigner.AssignCulture([]types.UserResponse{
		{QuestionID: "direct_culture", SelectedOptionID: "culture_german", ConfidenceLevel: 8},
		{QuestionID: "family_traditions", SelectedOptionID: "trad_oktoberfest", ConfidenceLevel: 8},
	})
	conflicted := assigner.AssignCulture([]types.UserResponse{
		{QuestionID: "direct_culture", SelectedOptionID: "culture_german", ConfidenceLevel: 8},
		{QuestionID: "family_traditions", SelectedOptionID: "trad_oktoberfest", ConfidenceLevel: 8},
		{QuestionID: "language_preference", SelectedOptionID: "lang_italian", ConfidenceLevel: 2},
	})

	assert.Equal(t, types.CultureGerman, conflicted.Culture)
	assert.Contains(t, conflicted.Rationale, "conflicts")
	assert.Less(t, conflicted.Confidence, aligned.Confidence)
}

func TestAssignCulture_ReligionConsistencyRule(t *testing.T) {
	assigner := newTestAssigner()

	result := assigner.AssignCulture([]types.UserResponse{
		{QuestionID: "direct_culture", SelectedOptionID: "culture_serbian", ConfidenceLevel: 9},
		{QuestionID: "religious_affiliation", SelectedOptionID: "religion_orthodox", ConfidenceLevel: 9},
		{QuestionID: "family_traditions", SelectedOptionID: "trad_slava", ConfidenceLevel: 9},
		{QuestionID: "historical_figures", SelectedOptionID: "figure_tesla", ConfidenceLevel: 9},
	})

	assert.Equal(t, types.CultureSerbian, result.Culture)
	assert.Equal(t, types.ReligionOrthodox, result.Religion)
	assert.Contains(t, result.Rationale, "Religious affiliation consistent with culture")
	assert.Equal(t, types.TierVeryHigh, result.Tier)
	assert.False(t, result.RequiresConfirmation)
	assert.Empty(t, result.FollowUpQuestions)
}

func TestAssignCulture_SingleResponseRequiresConfirmation(t *testing.T) {
	assigner := newTestAssigner()

	result := assigner.AssignCulture([]types.UserResponse{
		{QuestionID: "religious_affiliation", SelectedOptionID: "religion_orthodox", ConfidenceLevel: 10},
	})

	// fewer than 4 responses always requires confirmation
	assert.True(t, result.RequiresConfirmation)
}

func TestAssignCulture_UnrelatedCulturesLowConfidence(t *testing.T) {
	assigner := newTestAssigner()

	result := assigner.AssignCulture([]types.UserResponse{
		{QuestionID: "cuisine_preference", SelectedOptionID: "food_cevapi", ConfidenceLevel: 5},
		{QuestionID: "cultural_holidays", SelectedOptionID: "hol_victory_may", ConfidenceLevel: 5},
	})

	assert.Less(t, result.Confidence, 0.60)
	assert.Contains(t, []types.ConfidenceTier{types.TierMedium, types.TierLow, types.TierVeryLow}, result.Tier)
	assert.True(t, result.RequiresConfirmation)
	assert.NotEmpty(t, result.FollowUpQuestions)
}

func TestAssignCulture_Monotonicity(t *testing.T) {
	assigner := newTestAssigner()

	base := []types.UserResponse{
		{QuestionID: "direct_culture", SelectedOptionID: "culture_ukrainian", ConfidenceLevel: 7},
		{QuestionID: "language_preference", SelectedOptionID: "lang_ukrainian", ConfidenceLevel: 7},
		{QuestionID: "cuisine_preference", SelectedOptionID: "food_borshch", ConfidenceLevel: 7},
		{QuestionID: "cultural_holidays", SelectedOptionID: "hol_victory_may", ConfidenceLevel: 5},
	}
	extended := append(append([]types.UserResponse(nil), base...), types.UserResponse{
		QuestionID: "historical_figures", SelectedOptionID: "figure_shevchenko", ConfidenceLevel: 10,
	})

	before := assigner.AssignCulture(base)
	after := assigner.AssignCulture(extended)

	require.Equal(t, types.CultureUkrainian, before.Culture)
	require.Equal(t, types.CultureUkrainian, after.Culture)
	// an extra answer favoring the primary culture must not reduce confidence
	assert.GreaterOrEqual(t, after.Confidence, before.Confidence)
}

func TestAssignCulture_ConfirmationGap(t *testing.T) {
	assigner := newTestAssigner()

	// two close cultures: confidence clears the 0.60 bar only through
	// the direct-culture bonus, but the top alternative stays close
	result := assigner.AssignCulture([]types.UserResponse{
		{QuestionID: "direct_culture", SelectedOptionID: "culture_mixed_mediterranean", ConfidenceLevel: 5},
		{QuestionID: "cuisine_preference", SelectedOptionID: "food_pasta", ConfidenceLevel: 5},
		{QuestionID: "cultural_holidays", SelectedOptionID: "hol_hispanidad", ConfidenceLevel: 5},
		{QuestionID: "unanswerable", SelectedOptionID: "skipped", ConfidenceLevel: 5},
	})

	require.GreaterOrEqual(t, result.Confidence, 0.60)
	require.NotEmpty(t, result.Alternatives)
	assert.Less(t, result.Confidence-result.Alternatives[0].Score, 0.30)
	assert.True(t, result.RequiresConfirmation)
}

func TestAssignCulture_EmptyResponses(t *testing.T) {
	assigner := newTestAssigner()

	result := assigner.AssignCulture(nil)

	assert.True(t, result.RequiresConfirmation)
	assert.Equal(t, types.TierVeryLow, result.Tier)
	assert.NotEmpty(t, result.FollowUpQuestions)
	assert.NotEmpty(t, result.Rationale)
	assert.NotEmpty(t, result.AssignmentID)
}

func TestAssignCulture_RationaleFallback(t *testing.T) {
	assigner := newTestAssigner()

	result := assigner.AssignCulture([]types.UserResponse{
		{QuestionID: "cuisine_preference", SelectedOptionID: "food_cevapi", ConfidenceLevel: 5},
	})

	assert.Contains(t, result.Rationale, "Assignment based on weighted answer scoring")
	assert.Contains(t, result.Rationale, "Final confidence:")
}

func TestAssignCulture_UniqueAssignmentIDs(t *testing.T) {
	assigner := newTestAssigner()

	first := assigner.AssignCulture(nil)
	second := assigner.AssignCulture(nil)

	assert.NotEqual(t, first.AssignmentID, second.AssignmentID)
}

func TestTierFor_Thresholds(t *testing.T) {
	cases := []struct {
		confidence float64
		expected   types.ConfidenceTier
	}{
		{1.00, types.TierVeryHigh},
		{0.90, types.TierVeryHigh},
		{0.89, types.TierHigh},
		{0.80, types.TierHigh},
		{0.79, types.TierMedium},
		{0.60, types.TierMedium},
		{0.59, types.TierLow},
		{0.40, types.TierLow},
		{0.39, types.TierVeryLow},
		{0.00, types.TierVeryLow},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, tierFor(tc.confidence), "confidence %.2f", tc.confidence)
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 1.0, clamp01(1.5))
	assert.Equal(t, 0.7, clamp01(0.7))
}
