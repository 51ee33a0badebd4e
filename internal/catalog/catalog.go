// Package catalog holds the immutable profiling catalog: the question
// bank with localized text, the per-culture profile table, and the
// static consistency tables used by assignment rules. The catalog is
// built once at process start and is safe for concurrent reads.
package catalog

import (
	"github.com/jonathan/culture-profiler/internal/types"
)

// DefaultLanguage is the fallback locale for question and follow-up text.
const DefaultLanguage = "en"

// Well-known question identifiers referenced by assignment rules.
const (
	QuestionDirectCulture        = "direct_culture"
	QuestionLanguagePreference   = "language_preference"
	QuestionReligiousAffiliation = "religious_affiliation"
	QuestionFamilyTraditions     = "family_traditions"
	QuestionCulturalHolidays     = "cultural_holidays"
	QuestionCuisinePreference    = "cuisine_preference"
	QuestionHistoricalFigures    = "historical_figures"
)

// Catalog bundles the read-only profiling data. Construct it with
// Default and pass it by handle into the profiler, assigner and blender.
type Catalog struct {
	questions     []types.Question
	questionsByID map[string]types.Question
	text          map[string]localeText
	profiles      map[types.Culture]types.CulturalProfile
}

type localeText struct {
	questions    map[string]string // question id -> prompt
	options      map[string]string // option id -> label
	cultureNames map[types.Culture]string
}

// Default builds the standard catalog. The result is immutable; callers
// must not retain and modify slices returned from its accessors beyond
// what each accessor documents.
func Default() *Catalog {
	questions := bankQuestions()
	byID := make(map[string]types.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Catalog{
		questions:     questions,
		questionsByID: byID,
		text:          bankText(),
		profiles:      cultureProfiles(),
	}
}

// Questions returns the full question list in catalog order. The
// returned slice is shared read-only data.
func (c *Catalog) Questions() []types.Question {
	return c.questions
}

// Question returns the question with the given id, if known.
func (c *Catalog) Question(id string) (types.Question, bool) {
	q, ok := c.questionsByID[id]
	return q, ok
}

// ListQuestions returns the question bank rendered for the requested
// language. IDs, weights and option ids are identical across languages;
// unsupported languages deterministically fall back to DefaultLanguage.
func (c *Catalog) ListQuestions(language string) []types.QuestionView {
	text := c.localize(language)
	views := make([]types.QuestionView, 0, len(c.questions))
	for _, q := range c.questions {
		view := types.QuestionView{
			ID:      q.ID,
			Text:    text.questions[q.ID],
			Weight:  q.Weight,
			Options: make([]types.OptionView, 0, len(q.Options)),
		}
		for _, opt := range q.Options {
			view.Options = append(view.Options, types.OptionView{
				ID:    opt.ID,
				Label: text.options[opt.ID],
			})
		}
		views = append(views, view)
	}
	return views
}

// CultureDisplayName returns the localized display name for a culture,
// falling back through the default language to the raw identifier.
func (c *Catalog) CultureDisplayName(language string, culture types.Culture) string {
	if name, ok := c.localize(language).cultureNames[culture]; ok {
		return name
	}
	return string(culture)
}

// SupportedLanguage reports whether the locale has its own translations.
func (c *Catalog) SupportedLanguage(language string) bool {
	_, ok := c.text[language]
	return ok
}

func (c *Catalog) localize(language string) localeText {
	if text, ok := c.text[language]; ok {
		return text
	}
	return c.text[DefaultLanguage]
}

// ProfileFor returns a copy of the catalog profile for the culture.
// The copy is safe to modify.
func (c *Catalog) ProfileFor(culture types.Culture) (types.CulturalProfile, bool) {
	profile, ok := c.profiles[culture]
	if !ok {
		return types.CulturalProfile{}, false
	}
	return profile.Clone(), true
}

// DefaultProfile returns the designated fallback profile (English,
// secular) used when a culture has no catalog entry.
func (c *Catalog) DefaultProfile() types.CulturalProfile {
	profile := c.profiles[types.CultureEnglish].Clone()
	profile.Religion = types.ReligionSecular
	return profile
}

// ExpectedCultureForLanguageOption maps a language-preference option to
// the culture it predicts. Options with no single expected culture
// (e.g. "several languages") are absent from the table.
func (c *Catalog) ExpectedCultureForLanguageOption(optionID string) (types.Culture, bool) {
	culture, ok := languageCultures[optionID]
	return culture, ok
}

// PreferredCultures returns the cultures a religion is commonly
// associated with. An unknown religion yields an empty list.
func (c *Catalog) PreferredCultures(religion types.Religion) []types.Culture {
	return religionPreferredCultures[religion]
}
