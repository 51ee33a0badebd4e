// Package blending merges two catalog profiles into a single mixed
// profile for users with mixed heritage.
package blending

import (
	"github.com/jonathan/culture-profiler/internal/catalog"
	"github.com/jonathan/culture-profiler/internal/types"
)

// Blend element counts: the primary culture contributes more of the
// ordered lists so the mix stays biased toward it.
const (
	primaryMetaphors   = 3
	secondaryMetaphors = 2
	primaryHeroes      = 2
	secondaryHeroes    = 1
)

// Synthetic historical-context keys marking a blended profile.
const (
	mixedProfileKey     = "mixed_profile"
	secondaryCultureKey = "secondary_culture"
)

// Blend constructs a mixed profile from two catalog cultures. The
// result carries the primary culture's tag, religion, phase and target
// modules; sensitive topics are the deduplicated union of both sources;
// metaphors and heroes take a primary-biased prefix of each list
// (duplicates across sources are kept); historical context is a shallow
// merge where the secondary overwrites conflicting keys, plus synthetic
// keys marking the mix. If either culture has no catalog entry the
// other's entry is returned unmodified, and if both are missing the
// default profile is returned. Blend never fails and never mutates
// catalog data.
func Blend(cat *catalog.Catalog, primary, secondary types.Culture) types.CulturalProfile {
	primaryProfile, primaryOK := cat.ProfileFor(primary)
	secondaryProfile, secondaryOK := cat.ProfileFor(secondary)

	switch {
	case !primaryOK && !secondaryOK:
		return cat.DefaultProfile()
	case !primaryOK:
		return secondaryProfile
	case !secondaryOK:
		return primaryProfile
	}

	blended := types.CulturalProfile{
		Culture:       primaryProfile.Culture,
		Religion:      primaryProfile.Religion,
		Phase:         primaryProfile.Phase,
		TargetModules: append([]string(nil), primaryProfile.TargetModules...),
	}

	blended.SensitiveTopics = unionDedup(primaryProfile.SensitiveTopics, secondaryProfile.SensitiveTopics)

	blended.PreferredMetaphors = append(
		prefix(primaryProfile.PreferredMetaphors, primaryMetaphors),
		prefix(secondaryProfile.PreferredMetaphors, secondaryMetaphors)...)

	blended.CulturalHeroes = append(
		prefix(primaryProfile.CulturalHeroes, primaryHeroes),
		prefix(secondaryProfile.CulturalHeroes, secondaryHeroes)...)

	context := make(map[string]string, len(primaryProfile.HistoricalContext)+len(secondaryProfile.HistoricalContext)+2)
	for k, v := range primaryProfile.HistoricalContext {
		context[k] = v
	}
	for k, v := range secondaryProfile.HistoricalContext {
		context[k] = v
	}
	context[mixedProfileKey] = "true"
	context[secondaryCultureKey] = string(secondary)
	blended.HistoricalContext = context

	return blended
}

// unionDedup concatenates both lists preserving first-seen order and
// dropping duplicates.
func unionDedup(first, second []string) []string {
	seen := make(map[string]bool, len(first)+len(second))
	out := make([]string, 0, len(first)+len(second))
	for _, list := range [][]string{first, second} {
		for _, item := range list {
			if seen[item] {
				continue
			}
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// prefix returns a copy of at most the first n items.
func prefix(list []string, n int) []string {
	if len(list) < n {
		n = len(list)
	}
	return append([]string(nil), list[:n]...)
}
