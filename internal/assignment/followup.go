package assignment

import (
	"fmt"

	"github.com/jonathan/culture-profiler/internal/types"
)

// followUpText holds the localized static follow-up question text.
type followUpText struct {
	upbringing     string
	familyLanguage string
	confirmPrimary string // fmt template, takes the localized culture name
	confirmOptions []string
}

var followUpTexts = map[string]followUpText{
	"en": {
		upbringing:     "Tell us a little about the cultural environment you grew up in.",
		familyLanguage: "Which language was spoken in your family when you were a child?",
		confirmPrimary: "Does the %s cultural profile describe you well?",
		confirmOptions: []string{
			"Yes, that fits me",
			"Show me the alternatives",
			"I would prefer a mixed approach",
		},
	},
	"ru": {
		upbringing:     "Расскажите немного о культурной среде, в которой вы выросли.",
		familyLanguage: "На каком языке говорили в вашей семье, когда вы были ребёнком?",
		confirmPrimary: "Хорошо ли вас описывает профиль «%s»?",
		confirmOptions: []string{
			"Да, это про меня",
			"Покажите альтернативы",
			"Я бы предпочёл смешанный подход",
		},
	},
	"uk": {
		upbringing:     "Розкажіть трохи про культурне середовище, в якому ви виросли.",
		familyLanguage: "Якою мовою говорили у вашій родині, коли ви були дитиною?",
		confirmPrimary: "Чи добре вас описує профіль «%s»?",
		confirmOptions: []string{
			"Так, це про мене",
			"Покажіть альтернативи",
			"Я б надав перевагу змішаному підходу",
		},
	},
}

// followUpQuestions emits clarification questions for weak assignments:
// two open-ended questions for Low/VeryLow tiers, one single-choice
// confirmation for Medium tiers that have at least one alternative, and
// nothing for High/VeryHigh.
func (a *Assigner) followUpQuestions(tier types.ConfidenceTier, profile types.ProfilingResult) []types.FollowUpQuestion {
	text, ok := followUpTexts[a.locale]
	if !ok {
		text = followUpTexts["en"]
	}

	switch tier {
	case types.TierLow, types.TierVeryLow:
		return []types.FollowUpQuestion{
			{
				ID:   "clarify_upbringing",
				Type: types.FollowUpOpenEnded,
				Text: text.upbringing,
			},
			{
				ID:   "clarify_family_language",
				Type: types.FollowUpOpenEnded,
				Text: text.familyLanguage,
			},
		}
	case types.TierMedium:
		if len(profile.Alternatives) == 0 {
			return nil
		}
		cultureName := a.catalog.CultureDisplayName(a.locale, profile.PrimaryCulture)
		return []types.FollowUpQuestion{
			{
				ID:      "confirm_primary",
				Type:    types.FollowUpSingleChoice,
				Text:    fmt.Sprintf(text.confirmPrimary, cultureName),
				Options: append([]string(nil), text.confirmOptions...),
			},
		}
	default:
		return nil
	}
}
