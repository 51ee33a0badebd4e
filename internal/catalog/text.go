package catalog

import (
	"github.com/jonathan/culture-profiler/internal/types"
)

// bankText returns the localized display text tables. Only display text
// varies by locale; ids and weights never do.
func bankText() map[string]localeText {
	return map[string]localeText{
		"en": {
			questions: map[string]string{
				QuestionDirectCulture:        "Which cultural tradition do you identify with most closely?",
				QuestionLanguagePreference:   "Which language do you prefer to speak at home?",
				QuestionReligiousAffiliation: "How would you describe your religious background?",
				QuestionFamilyTraditions:     "Which family tradition feels most familiar to you?",
				QuestionCulturalHolidays:     "Which holiday matters most in your family?",
				QuestionCuisinePreference:    "Which dish feels most like home cooking to you?",
				QuestionHistoricalFigures:    "Which historical figure do you feel the strongest connection to?",
			},
			options: map[string]string{
				"culture_ukrainian":           "Ukrainian",
				"culture_polish":              "Polish",
				"culture_english":             "English",
				"culture_german":              "German",
				"culture_french":              "French",
				"culture_italian":             "Italian",
				"culture_spanish":             "Spanish",
				"culture_russian":             "Russian",
				"culture_serbian":             "Serbian",
				"culture_mixed_slavic":        "Mixed Slavic traditions",
				"culture_mixed_western":       "Mixed Western European traditions",
				"culture_mixed_mediterranean": "Mixed Mediterranean traditions",
				"lang_ukrainian":              "Ukrainian",
				"lang_polish":                 "Polish",
				"lang_english":                "English",
				"lang_german":                 "German",
				"lang_french":                 "French",
				"lang_italian":                "Italian",
				"lang_spanish":                "Spanish",
				"lang_russian":                "Russian",
				"lang_serbian":                "Serbian",
				"lang_several":                "Several languages equally",
				"religion_orthodox":           "Orthodox Christian",
				"religion_catholic":           "Catholic",
				"religion_protestant":         "Protestant",
				"religion_secular":            "Secular / non-religious",
				"trad_kolyada":                "Carol singing on Christmas Eve",
				"trad_wigilia":                "Twelve-dish Christmas Eve supper",
				"trad_sunday_roast":           "Sunday roast with the family",
				"trad_oktoberfest":            "Autumn beer festival",
				"trad_galette":                "Sharing a galette des rois in January",
				"trad_ferragosto":             "Mid-August family feast",
				"trad_nochevieja":             "Twelve grapes at New Year's midnight",
				"trad_slava":                  "Family patron saint day",
				"trad_maslenitsa":             "Pancake week before Lent",
				"hol_independence_august":     "Independence Day in late August",
				"hol_constitution_may":        "Constitution Day on 3 May",
				"hol_guy_fawkes":              "Bonfire Night on 5 November",
				"hol_unity_october":           "Unity Day on 3 October",
				"hol_bastille_day":            "Bastille Day on 14 July",
				"hol_republic_june":           "Republic Day on 2 June",
				"hol_hispanidad":              "Hispanic Day on 12 October",
				"hol_victory_may":             "Victory Day on 9 May",
				"hol_vidovdan":                "Vidovdan on 28 June",
				"hol_january_christmas":       "Christmas on 7 January",
				"food_borshch":                "Borshch",
				"food_pierogi":                "Pierogi",
				"food_fish_and_chips":         "Fish and chips",
				"food_bratwurst":              "Bratwurst with sauerkraut",
				"food_ratatouille":            "Ratatouille",
				"food_pasta":                  "Fresh pasta",
				"food_paella":                 "Paella",
				"food_pelmeni":                "Pelmeni",
				"food_cevapi":                 "Cevapi",
				"figure_shevchenko":           "Taras Shevchenko",
				"figure_chopin":               "Frederic Chopin",
				"figure_shakespeare":          "William Shakespeare",
				"figure_goethe":               "Johann Wolfgang von Goethe",
				"figure_hugo":                 "Victor Hugo",
				"figure_da_vinci":             "Leonardo da Vinci",
				"figure_cervantes":            "Miguel de Cervantes",
				"figure_tolstoy":              "Leo Tolstoy",
				"figure_tesla":                "Nikola Tesla",
			},
			cultureNames: map[types.Culture]string{
				types.CultureUkrainian: "Ukrainian",
				types.CulturePolish:    "Polish",
				types.CultureEnglish:   "English",
				types.CultureGerman:    "German",
				types.CultureFrench:    "French",
				types.CultureItalian:   "Italian",
				types.CultureSpanish:   "Spanish",
				types.CultureRussian:   "Russian",
				types.CultureSerbian:   "Serbian",
			},
		},
		"ru": {
			questions: map[string]string{
				QuestionDirectCulture:        "С какой культурной традицией вы себя больше всего отождествляете?",
				QuestionLanguagePreference:   "На каком языке вы предпочитаете говорить дома?",
				QuestionReligiousAffiliation: "Как бы вы описали своё религиозное воспитание?",
				QuestionFamilyTraditions:     "Какая семейная традиция вам наиболее знакома?",
				QuestionCulturalHolidays:     "Какой праздник важнее всего в вашей семье?",
				QuestionCuisinePreference:    "Какое блюдо для вас ближе всего к домашней кухне?",
				QuestionHistoricalFigures:    "С какой исторической личностью вы чувствуете наибольшую связь?",
			},
			options: map[string]string{
				"culture_ukrainian":           "Украинская",
				"culture_polish":              "Польская",
				"culture_english":             "Английская",
				"culture_german":              "Немецкая",
				"culture_french":              "Французская",
				"culture_italian":             "Итальянская",
				"culture_spanish":             "Испанская",
				"culture_russian":             "Русская",
				"culture_serbian":             "Сербская",
				"culture_mixed_slavic":        "Смешанные славянские традиции",
				"culture_mixed_western":       "Смешанные западноевропейские традиции",
				"culture_mixed_mediterranean": "Смешанные средиземноморские традиции",
				"lang_ukrainian":              "Украинский",
				"lang_polish":                 "Польский",
				"lang_english":                "Английский",
				"lang_german":                 "Немецкий",
				"lang_french":                 "Французский",
				"lang_italian":                "Итальянский",
				"lang_spanish":                "Испанский",
				"lang_russian":                "Русский",
				"lang_serbian":                "Сербский",
				"lang_several":                "Несколько языков в равной мере",
				"religion_orthodox":           "Православие",
				"religion_catholic":           "Католичество",
				"religion_protestant":         "Протестантизм",
				"religion_secular":            "Светское / нерелигиозное",
				"trad_kolyada":                "Колядки в сочельник",
				"trad_wigilia":                "Ужин из двенадцати блюд в сочельник",
				"trad_sunday_roast":           "Воскресное жаркое всей семьёй",
				"trad_oktoberfest":            "Осенний пивной фестиваль",
				"trad_galette":                "Королевская галета в январе",
				"trad_ferragosto":             "Семейное застолье в середине августа",
				"trad_nochevieja":             "Двенадцать виноградин под Новый год",
				"trad_slava":                  "День семейного святого покровителя",
				"trad_maslenitsa":             "Масленица перед постом",
				"hol_independence_august":     "День независимости в конце августа",
				"hol_constitution_may":        "День Конституции 3 мая",
				"hol_guy_fawkes":              "Ночь костров 5 ноября",
				"hol_unity_october":           "День единства 3 октября",
				"hol_bastille_day":            "День взятия Бастилии 14 июля",
				"hol_republic_june":           "День Республики 2 июня",
				"hol_hispanidad":              "День испанской нации 12 октября",
				"hol_victory_may":             "День Победы 9 мая",
				"hol_vidovdan":                "Видовдан 28 июня",
				"hol_january_christmas":       "Рождество 7 января",
				"food_borshch":                "Борщ",
				"food_pierogi":                "Пироги",
				"food_fish_and_chips":         "Рыба с картофелем фри",
				"food_bratwurst":              "Братвурст с квашеной капустой",
				"food_ratatouille":            "Рататуй",
				"food_pasta":                  "Свежая паста",
				"food_paella":                 "Паэлья",
				"food_pelmeni":                "Пельмени",
				"food_cevapi":                 "Чевапи",
				"figure_shevchenko":           "Тарас Шевченко",
				"figure_chopin":               "Фредерик Шопен",
				"figure_shakespeare":          "Уильям Шекспир",
				"figure_goethe":               "Иоганн Вольфганг фон Гёте",
				"figure_hugo":                 "Виктор Гюго",
				"figure_da_vinci":             "Леонардо да Винчи",
				"figure_cervantes":            "Мигель де Сервантес",
				"figure_tolstoy":              "Лев Толстой",
				"figure_tesla":                "Никола Тесла",
			},
			cultureNames: map[types.Culture]string{
				types.CultureUkrainian: "украинский",
				types.CulturePolish:    "польский",
				types.CultureEnglish:   "английский",
				types.CultureGerman:    "немецкий",
				types.CultureFrench:    "французский",
				types.CultureItalian:   "итальянский",
				types.CultureSpanish:   "испанский",
				types.CultureRussian:   "русский",
				types.CultureSerbian:   "сербский",
			},
		},
		"uk": {
			questions: map[string]string{
				QuestionDirectCulture:        "З якою культурною традицією ви найбільше себе ототожнюєте?",
				QuestionLanguagePreference:   "Якою мовою ви волієте говорити вдома?",
				QuestionReligiousAffiliation: "Як би ви описали своє релігійне виховання?",
				QuestionFamilyTraditions:     "Яка родинна традиція вам найбільш знайома?",
				QuestionCulturalHolidays:     "Яке свято найважливіше у вашій родині?",
				QuestionCuisinePreference:    "Яка страва для вас найближча до домашньої кухні?",
				QuestionHistoricalFigures:    "З якою історичною постаттю ви відчуваєте найбільший зв'язок?",
			},
			options: map[string]string{
				"culture_ukrainian":           "Українська",
				"culture_polish":              "Польська",
				"culture_english":             "Англійська",
				"culture_german":              "Німецька",
				"culture_french":              "Французька",
				"culture_italian":             "Італійська",
				"culture_spanish":             "Іспанська",
				"culture_russian":             "Російська",
				"culture_serbian":             "Сербська",
				"culture_mixed_slavic":        "Змішані слов'янські традиції",
				"culture_mixed_western":       "Змішані західноєвропейські традиції",
				"culture_mixed_mediterranean": "Змішані середземноморські традиції",
				"lang_ukrainian":              "Українська",
				"lang_polish":                 "Польська",
				"lang_english":                "Англійська",
				"lang_german":                 "Німецька",
				"lang_french":                 "Французька",
				"lang_italian":                "Італійська",
				"lang_spanish":                "Іспанська",
				"lang_russian":                "Російська",
				"lang_serbian":                "Сербська",
				"lang_several":                "Кілька мов однаковою мірою",
				"religion_orthodox":           "Православ'я",
				"religion_catholic":           "Католицтво",
				"religion_protestant":         "Протестантизм",
				"religion_secular":            "Світське / нерелігійне",
				"trad_kolyada":                "Колядки на Святвечір",
				"trad_wigilia":                "Вечеря з дванадцяти страв на Святвечір",
				"trad_sunday_roast":           "Недільна печеня всією родиною",
				"trad_oktoberfest":            "Осінній пивний фестиваль",
				"trad_galette":                "Королівська галета в січні",
				"trad_ferragosto":             "Родинне застілля в середині серпня",
				"trad_nochevieja":             "Дванадцять виноградин на Новий рік",
				"trad_slava":                  "День родинного святого покровителя",
				"trad_maslenitsa":             "Масниця перед постом",
				"hol_independence_august":     "День незалежності наприкінці серпня",
				"hol_constitution_may":        "День Конституції 3 травня",
				"hol_guy_fawkes":              "Ніч багать 5 листопада",
				"hol_unity_october":           "День єдності 3 жовтня",
				"hol_bastille_day":            "День взяття Бастилії 14 липня",
				"hol_republic_june":           "День Республіки 2 червня",
				"hol_hispanidad":              "День іспанської нації 12 жовтня",
				"hol_victory_may":             "День перемоги 9 травня",
				"hol_vidovdan":                "Видовдан 28 червня",
				"hol_january_christmas":       "Різдво 7 січня",
				"food_borshch":                "Борщ",
				"food_pierogi":                "Пироги",
				"food_fish_and_chips":         "Риба з картоплею фрі",
				"food_bratwurst":              "Братвурст із квашеною капустою",
				"food_ratatouille":            "Рататуй",
				"food_pasta":                  "Свіжа паста",
				"food_paella":                 "Паелья",
				"food_pelmeni":                "Пельмені",
				"food_cevapi":                 "Чевапи",
				"figure_shevchenko":           "Тарас Шевченко",
				"figure_chopin":               "Фредерік Шопен",
				"figure_shakespeare":          "Вільям Шекспір",
				"figure_goethe":               "Йоганн Вольфганг фон Гете",
				"figure_hugo":                 "Віктор Гюго",
				"figure_da_vinci":             "Леонардо да Вінчі",
				"figure_cervantes":            "Мігель де Сервантес",
				"figure_tolstoy":              "Лев Толстой",
				"figure_tesla":                "Нікола Тесла",
			},
			cultureNames: map[types.Culture]string{
				types.CultureUkrainian: "українська",
				types.CulturePolish:    "польська",
				types.CultureEnglish:   "англійська",
				types.CultureGerman:    "німецька",
				types.CultureFrench:    "французька",
				types.CultureItalian:   "італійська",
				types.CultureSpanish:   "іспанська",
				types.CultureRussian:   "російська",
				types.CultureSerbian:   "сербська",
			},
		},
	}
}
