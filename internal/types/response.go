package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultConfidenceLevel is used when a response omits its confidence level.
const DefaultConfidenceLevel = 5

// UserResponse is one answered profiling question. ConfidenceLevel is
// the user's self-reported 1-10 confidence; zero means absent and is
// treated as DefaultConfidenceLevel. Responses are ephemeral and never
// persisted by this engine.
type UserResponse struct {
	QuestionID       string `json:"question_id" validate:"required"`
	SelectedOptionID string `json:"selected_option_id" validate:"required"`
	ConfidenceLevel  int    `json:"confidence_level,omitempty" validate:"omitempty,min=1,max=10"`
}

// EffectiveConfidence returns the confidence level with the absence
// default applied and out-of-range values clamped into 1-10. Invalid
// values are clamped rather than rejected so a single malformed answer
// cannot abort profiling.
func (r UserResponse) EffectiveConfidence() int {
	level := r.ConfidenceLevel
	if level == 0 {
		level = DefaultConfidenceLevel
	}
	if level < 1 {
		level = 1
	}
	if level > 10 {
		level = 10
	}
	return level
}

// ResponseDocument is the file/wire shape a collaborator submits: the
// response list plus an optional locale for follow-up question text.
type ResponseDocument struct {
	Responses []UserResponse `json:"responses" validate:"required,dive"`
	Locale    string         `json:"locale,omitempty"`
}

// Validate validates the ResponseDocument using the validator.
func (d *ResponseDocument) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// BlendRequest asks for a mixed profile from two cultures.
type BlendRequest struct {
	PrimaryCulture   Culture `json:"primary_culture" validate:"required"`
	SecondaryCulture Culture `json:"secondary_culture" validate:"required"`
}

// Validate validates the BlendRequest using the validator and checks
// both cultures against the closed culture set.
func (r *BlendRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !r.PrimaryCulture.IsValid() {
		return fmt.Errorf("unknown primary culture %q", r.PrimaryCulture)
	}
	if !r.SecondaryCulture.IsValid() {
		return fmt.Errorf("unknown secondary culture %q", r.SecondaryCulture)
	}
	return nil
}
