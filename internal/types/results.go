package types

// CultureScore pairs a culture with its normalized score (the culture's
// share of total weighted evidence, in [0,1]).
type CultureScore struct {
	Culture Culture `json:"culture"`
	Score   float64 `json:"score"`
}

// ProfilingResult is the output of one profiling run. Immutable after
// construction. Alternatives exclude the primary culture and are sorted
// descending by normalized score.
type ProfilingResult struct {
	PrimaryCulture  Culture         `json:"primary_culture"`
	PrimaryReligion Religion        `json:"primary_religion"`
	Confidence      float64         `json:"confidence"` // in [0,1]
	Alternatives    []CultureScore  `json:"alternatives"`
	Profile         CulturalProfile `json:"profile"`
	Notes           string          `json:"notes"`
	ResponseCount   int             `json:"response_count"`
}

// FollowUpQuestionType distinguishes follow-up question shapes.
type FollowUpQuestionType string

// Follow-up question types
const (
	FollowUpOpenEnded    FollowUpQuestionType = "open_ended"
	FollowUpSingleChoice FollowUpQuestionType = "single_choice"
)

// FollowUpQuestion describes one clarification question the caller
// should put to the user before trusting a low-confidence assignment.
type FollowUpQuestion struct {
	ID      string               `json:"id"`
	Type    FollowUpQuestionType `json:"type"`
	Text    string               `json:"text"`
	Options []string             `json:"options,omitempty"` // single-choice only
}

// AssignmentResult is the output of one assignment call: the profiling
// result after consistency adjustment, decision flags, and the resolved
// profile. Created once per call.
type AssignmentResult struct {
	AssignmentID         string             `json:"assignment_id"`
	Culture              Culture            `json:"culture"`
	Religion             Religion           `json:"religion"`
	Tier                 ConfidenceTier     `json:"tier"`
	Confidence           float64            `json:"confidence"` // in [0,1]
	Rationale            string             `json:"rationale"`
	Alternatives         []CultureScore     `json:"alternatives"` // up to 3
	RequiresConfirmation bool               `json:"requires_confirmation"`
	FollowUpQuestions    []FollowUpQuestion `json:"follow_up_questions,omitempty"`
	Profile              CulturalProfile    `json:"profile"`
}
