package catalog

import (
	"github.com/jonathan/culture-profiler/internal/types"
)

// cultureProfiles returns the static per-culture trait catalog. One
// entry per culture; blended profiles are derived at runtime and never
// stored here.
func cultureProfiles() map[types.Culture]types.CulturalProfile {
	return map[types.Culture]types.CulturalProfile{
		types.CultureUkrainian: {
			Culture:  types.CultureUkrainian,
			Religion: types.ReligionOrthodox,
			SensitiveTopics: []string{
				"current war and occupation",
				"soviet-era repressions",
				"holodomor",
			},
			PreferredMetaphors: []string{
				"wheat field under open sky",
				"embroidered rushnyk",
				"deep river Dnipro",
				"guelder rose in bloom",
				"steppe wind",
			},
			CulturalHeroes: []string{
				"Taras Shevchenko",
				"Lesya Ukrainka",
				"Ivan Franko",
			},
			HistoricalContext: map[string]string{
				"statehood": "long struggle for independence, restored in 1991",
				"language":  "ukrainian language as a core identity marker",
				"diaspora":  "large worldwide diaspora communities",
			},
			Phase:         1,
			TargetModules: []string{"greetings", "holidays", "family"},
		},
		types.CulturePolish: {
			Culture:  types.CulturePolish,
			Religion: types.ReligionCatholic,
			SensitiveTopics: []string{
				"wartime occupation and partitions",
				"communist-era hardship",
			},
			PreferredMetaphors: []string{
				"white eagle in flight",
				"amber on the Baltic shore",
				"mountain trail in the Tatras",
				"old town market square",
			},
			CulturalHeroes: []string{
				"Frederic Chopin",
				"Maria Sklodowska-Curie",
				"Adam Mickiewicz",
			},
			HistoricalContext: map[string]string{
				"statehood": "partitions, rebirth in 1918, solidarity movement",
				"faith":     "catholic tradition woven into national identity",
			},
			Phase:         1,
			TargetModules: []string{"greetings", "holidays", "family"},
		},
		types.CultureEnglish: {
			Culture:  types.CultureEnglish,
			Religion: types.ReligionProtestant,
			SensitiveTopics: []string{
				"colonial legacy",
				"class distinctions",
			},
			PreferredMetaphors: []string{
				"weather as conversation",
				"garden behind the hedge",
				"cup of tea at four",
				"rolling green countryside",
			},
			CulturalHeroes: []string{
				"William Shakespeare",
				"Isaac Newton",
				"Jane Austen",
			},
			HistoricalContext: map[string]string{
				"institutions": "long continuity of parliament and common law",
				"literature":   "shakespearean canon as shared reference",
			},
			Phase:         1,
			TargetModules: []string{"greetings", "smalltalk", "humour"},
		},
		types.CultureGerman: {
			Culture:  types.CultureGerman,
			Religion: types.ReligionProtestant,
			SensitiveTopics: []string{
				"nazi era and wartime guilt",
				"division and the wall",
			},
			PreferredMetaphors: []string{
				"forest path in autumn",
				"precise clockwork",
				"river Rhine at dusk",
				"mountain summit view",
			},
			CulturalHeroes: []string{
				"Johann Wolfgang von Goethe",
				"Ludwig van Beethoven",
				"Albert Einstein",
			},
			HistoricalContext: map[string]string{
				"reunification": "division of 1949 and reunification of 1990",
				"philosophy":    "strong tradition of philosophy and music",
			},
			Phase:         1,
			TargetModules: []string{"greetings", "work", "holidays"},
		},
		types.CultureFrench: {
			Culture:  types.CultureFrench,
			Religion: types.ReligionCatholic,
			SensitiveTopics: []string{
				"colonial history in africa",
				"laicite and religious symbols",
			},
			PreferredMetaphors: []string{
				"shared table with fresh bread",
				"lavender field in provence",
				"seine at twilight",
				"vineyard before harvest",
			},
			CulturalHeroes: []string{
				"Victor Hugo",
				"Marie Curie",
				"Charles de Gaulle",
			},
			HistoricalContext: map[string]string{
				"revolution": "1789 revolution as founding civic reference",
				"cuisine":    "gastronomy as cultural heritage",
			},
			Phase:         1,
			TargetModules: []string{"greetings", "cuisine", "art"},
		},
		types.CultureItalian: {
			Culture:  types.CultureItalian,
			Religion: types.ReligionCatholic,
			SensitiveTopics: []string{
				"north-south economic divide",
				"organized crime stereotypes",
			},
			PreferredMetaphors: []string{
				"family table on sunday",
				"piazza in the evening",
				"olive grove in summer",
				"renaissance fresco",
			},
			CulturalHeroes: []string{
				"Leonardo da Vinci",
				"Dante Alighieri",
				"Giuseppe Verdi",
			},
			HistoricalContext: map[string]string{
				"unification": "unified as a state only in 1861",
				"regions":     "strong regional identities and dialects",
			},
			Phase:         1,
			TargetModules: []string{"greetings", "family", "cuisine"},
		},
		types.CultureSpanish: {
			Culture:  types.CultureSpanish,
			Religion: types.ReligionCatholic,
			SensitiveTopics: []string{
				"civil war and franco era",
				"regional independence tensions",
			},
			PreferredMetaphors: []string{
				"late dinner under warm night",
				"plaza full of voices",
				"orange trees in seville",
				"camino winding west",
			},
			CulturalHeroes: []string{
				"Miguel de Cervantes",
				"Pablo Picasso",
				"Federico Garcia Lorca",
			},
			HistoricalContext: map[string]string{
				"transition": "peaceful transition to democracy after 1975",
				"regions":    "distinct regional languages and identities",
			},
			Phase:         1,
			TargetModules: []string{"greetings", "family", "festivals"},
		},
		types.CultureRussian: {
			Culture:  types.CultureRussian,
			Religion: types.ReligionOrthodox,
			SensitiveTopics: []string{
				"current war",
				"political repressions",
				"soviet-era repressions",
			},
			PreferredMetaphors: []string{
				"birch grove in snow",
				"long winter evening by the stove",
				"wide open steppe",
				"samovar on the table",
			},
			CulturalHeroes: []string{
				"Leo Tolstoy",
				"Alexander Pushkin",
				"Pyotr Tchaikovsky",
			},
			HistoricalContext: map[string]string{
				"literature": "nineteenth-century novel as cultural touchstone",
				"orthodoxy":  "orthodox calendar shapes family holidays",
			},
			Phase:         1,
			TargetModules: []string{"greetings", "holidays", "literature"},
		},
		types.CultureSerbian: {
			Culture:  types.CultureSerbian,
			Religion: types.ReligionOrthodox,
			SensitiveTopics: []string{
				"yugoslav wars of the 1990s",
				"kosovo status",
			},
			PreferredMetaphors: []string{
				"slava candle burning",
				"kafana conversation late into night",
				"monastery in the hills",
				"plum orchard in bloom",
			},
			CulturalHeroes: []string{
				"Nikola Tesla",
				"Ivo Andric",
				"Mihajlo Pupin",
			},
			HistoricalContext: map[string]string{
				"slava":    "family patron saint day unique to serbian orthodoxy",
				"crossing": "centuries at the crossroads of empires",
			},
			Phase:         1,
			TargetModules: []string{"greetings", "family", "holidays"},
		},
	}
}
