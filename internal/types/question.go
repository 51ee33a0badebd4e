package types

// OptionKind distinguishes the two scoring paths for an answer option.
type OptionKind string

// Answer option kinds
const (
	// OptionDirect maps the option to exactly one culture; the option
	// contributes the question's full weight to that culture.
	OptionDirect OptionKind = "direct"
	// OptionShared maps the option to a set of cultures; the question's
	// weight is split evenly (floating division) across the set.
	OptionShared OptionKind = "shared"
)

// AnswerOption is one selectable answer of a profiling question.
// Exactly one of Culture/Cultures is populated depending on Kind.
type AnswerOption struct {
	ID       string     `json:"id"`
	Kind     OptionKind `json:"kind"`
	Culture  Culture    `json:"culture,omitempty"`  // set when Kind == OptionDirect
	Cultures []Culture  `json:"cultures,omitempty"` // set when Kind == OptionShared
	Religion Religion   `json:"religion,omitempty"` // optional religion signal
}

// DirectOption builds a direct answer option.
func DirectOption(id string, culture Culture) AnswerOption {
	return AnswerOption{ID: id, Kind: OptionDirect, Culture: culture}
}

// DirectOptionWithReligion builds a direct answer option that also
// signals a religion.
func DirectOptionWithReligion(id string, culture Culture, religion Religion) AnswerOption {
	return AnswerOption{ID: id, Kind: OptionDirect, Culture: culture, Religion: religion}
}

// SharedOption builds a shared answer option spreading weight across cultures.
func SharedOption(id string, cultures ...Culture) AnswerOption {
	return AnswerOption{ID: id, Kind: OptionShared, Cultures: cultures}
}

// SharedOptionWithReligion builds a shared answer option that also
// signals a religion.
func SharedOptionWithReligion(id string, religion Religion, cultures ...Culture) AnswerOption {
	return AnswerOption{ID: id, Kind: OptionShared, Cultures: cultures, Religion: religion}
}

// Question is one immutable profiling question. Weight is a positive
// integer expressing relative importance.
type Question struct {
	ID      string         `json:"id"`
	Weight  int            `json:"weight"`
	Options []AnswerOption `json:"options"`
}

// Option returns the option with the given id, if present.
func (q Question) Option(id string) (AnswerOption, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return AnswerOption{}, false
}

// QuestionView is a question rendered for a specific language. IDs and
// weights are identical across languages; only display text varies.
type QuestionView struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Weight  int          `json:"weight"`
	Options []OptionView `json:"options"`
}

// OptionView is a localized answer option.
type OptionView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
