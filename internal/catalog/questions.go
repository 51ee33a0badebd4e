package catalog

import (
	"github.com/jonathan/culture-profiler/internal/types"
)

// bankQuestions returns the static question bank. Weights express
// relative importance; the direct-culture question dominates.
func bankQuestions() []types.Question {
	return []types.Question{
		{
			ID:     QuestionDirectCulture,
			Weight: 10,
			Options: []types.AnswerOption{
				types.DirectOption("culture_ukrainian", types.CultureUkrainian),
				types.DirectOption("culture_polish", types.CulturePolish),
				types.DirectOption("culture_english", types.CultureEnglish),
				types.DirectOption("culture_german", types.CultureGerman),
				types.DirectOption("culture_french", types.CultureFrench),
				types.DirectOption("culture_italian", types.CultureItalian),
				types.DirectOption("culture_spanish", types.CultureSpanish),
				types.DirectOption("culture_russian", types.CultureRussian),
				types.DirectOption("culture_serbian", types.CultureSerbian),
				types.SharedOption("culture_mixed_slavic",
					types.CultureUkrainian, types.CulturePolish, types.CultureRussian, types.CultureSerbian),
				types.SharedOption("culture_mixed_western",
					types.CultureEnglish, types.CultureGerman, types.CultureFrench),
				types.SharedOption("culture_mixed_mediterranean",
					types.CultureItalian, types.CultureSpanish),
			},
		},
		{
			ID:     QuestionLanguagePreference,
			Weight: 8,
			Options: []types.AnswerOption{
				types.DirectOption("lang_ukrainian", types.CultureUkrainian),
				types.DirectOption("lang_polish", types.CulturePolish),
				types.DirectOption("lang_english", types.CultureEnglish),
				types.DirectOption("lang_german", types.CultureGerman),
				types.DirectOption("lang_french", types.CultureFrench),
				types.DirectOption("lang_italian", types.CultureItalian),
				types.DirectOption("lang_spanish", types.CultureSpanish),
				types.DirectOption("lang_russian", types.CultureRussian),
				types.DirectOption("lang_serbian", types.CultureSerbian),
				types.SharedOption("lang_several",
					types.CultureEnglish, types.CultureGerman, types.CultureFrench),
			},
		},
		{
			ID:     QuestionReligiousAffiliation,
			Weight: 7,
			Options: []types.AnswerOption{
				types.SharedOptionWithReligion("religion_orthodox", types.ReligionOrthodox,
					types.CultureUkrainian, types.CultureRussian, types.CultureSerbian),
				types.SharedOptionWithReligion("religion_catholic", types.ReligionCatholic,
					types.CulturePolish, types.CultureItalian, types.CultureSpanish, types.CultureFrench),
				types.SharedOptionWithReligion("religion_protestant", types.ReligionProtestant,
					types.CultureGerman, types.CultureEnglish),
				types.SharedOptionWithReligion("religion_secular", types.ReligionSecular,
					types.CultureEnglish, types.CultureFrench, types.CultureGerman),
			},
		},
		{
			ID:     QuestionFamilyTraditions,
			Weight: 6,
			Options: []types.AnswerOption{
				types.SharedOptionWithReligion("trad_kolyada", types.ReligionOrthodox,
					types.CultureUkrainian, types.CultureRussian, types.CultureSerbian),
				types.DirectOptionWithReligion("trad_wigilia", types.CulturePolish, types.ReligionCatholic),
				types.DirectOption("trad_sunday_roast", types.CultureEnglish),
				types.DirectOption("trad_oktoberfest", types.CultureGerman),
				types.DirectOption("trad_galette", types.CultureFrench),
				types.DirectOptionWithReligion("trad_ferragosto", types.CultureItalian, types.ReligionCatholic),
				types.DirectOption("trad_nochevieja", types.CultureSpanish),
				types.DirectOptionWithReligion("trad_slava", types.CultureSerbian, types.ReligionOrthodox),
				types.DirectOptionWithReligion("trad_maslenitsa", types.CultureRussian, types.ReligionOrthodox),
			},
		},
		{
			ID:     QuestionCulturalHolidays,
			Weight: 5,
			Options: []types.AnswerOption{
				types.DirectOption("hol_independence_august", types.CultureUkrainian),
				types.DirectOption("hol_constitution_may", types.CulturePolish),
				types.DirectOption("hol_guy_fawkes", types.CultureEnglish),
				types.DirectOption("hol_unity_october", types.CultureGerman),
				types.DirectOption("hol_bastille_day", types.CultureFrench),
				types.DirectOption("hol_republic_june", types.CultureItalian),
				types.DirectOption("hol_hispanidad", types.CultureSpanish),
				types.DirectOption("hol_victory_may", types.CultureRussian),
				types.DirectOptionWithReligion("hol_vidovdan", types.CultureSerbian, types.ReligionOrthodox),
				types.SharedOptionWithReligion("hol_january_christmas", types.ReligionOrthodox,
					types.CultureUkrainian, types.CultureRussian, types.CultureSerbian),
			},
		},
		{
			ID:     QuestionCuisinePreference,
			Weight: 4,
			Options: []types.AnswerOption{
				types.SharedOption("food_borshch", types.CultureUkrainian, types.CultureRussian),
				types.DirectOption("food_pierogi", types.CulturePolish),
				types.DirectOption("food_fish_and_chips", types.CultureEnglish),
				types.DirectOption("food_bratwurst", types.CultureGerman),
				types.DirectOption("food_ratatouille", types.CultureFrench),
				types.DirectOption("food_pasta", types.CultureItalian),
				types.DirectOption("food_paella", types.CultureSpanish),
				types.DirectOption("food_pelmeni", types.CultureRussian),
				types.DirectOption("food_cevapi", types.CultureSerbian),
			},
		},
		{
			ID:     QuestionHistoricalFigures,
			Weight: 5,
			Options: []types.AnswerOption{
				types.DirectOption("figure_shevchenko", types.CultureUkrainian),
				types.DirectOption("figure_chopin", types.CulturePolish),
				types.DirectOption("figure_shakespeare", types.CultureEnglish),
				types.DirectOption("figure_goethe", types.CultureGerman),
				types.DirectOption("figure_hugo", types.CultureFrench),
				types.DirectOption("figure_da_vinci", types.CultureItalian),
				types.DirectOption("figure_cervantes", types.CultureSpanish),
				types.DirectOption("figure_tolstoy", types.CultureRussian),
				types.DirectOption("figure_tesla", types.CultureSerbian),
			},
		},
	}
}

// languageCultures maps language-preference options to the culture they
// predict. "lang_several" has no single expected culture and is absent.
var languageCultures = map[string]types.Culture{
	"lang_ukrainian": types.CultureUkrainian,
	"lang_polish":    types.CulturePolish,
	"lang_english":   types.CultureEnglish,
	"lang_german":    types.CultureGerman,
	"lang_french":    types.CultureFrench,
	"lang_italian":   types.CultureItalian,
	"lang_spanish":   types.CultureSpanish,
	"lang_russian":   types.CultureRussian,
	"lang_serbian":   types.CultureSerbian,
}

// religionPreferredCultures lists the cultures each religion is
// commonly associated with, for the religion-consistency rule.
var religionPreferredCultures = map[types.Religion][]types.Culture{
	types.ReligionOrthodox:   {types.CultureUkrainian, types.CultureRussian, types.CultureSerbian},
	types.ReligionCatholic:   {types.CulturePolish, types.CultureItalian, types.CultureSpanish, types.CultureFrench},
	types.ReligionProtestant: {types.CultureGerman, types.CultureEnglish},
	types.ReligionSecular:    {types.CultureEnglish, types.CultureFrench, types.CultureGerman},
}
