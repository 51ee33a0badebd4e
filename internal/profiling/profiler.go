package profiling

import (
	"log"
	"sort"

	"github.com/jonathan/culture-profiler/internal/catalog"
	"github.com/jonathan/culture-profiler/internal/types"
)

// Confidence multiplier bounds for self-reported answer confidence.
// The lower bound keeps a low-confidence answer from fully nullifying
// its question.
const (
	minConfidenceMultiplier = 0.1
	maxConfidenceMultiplier = 1.0
)

// lowConfidenceThreshold triggers the warning sentence in profiling notes.
const lowConfidenceThreshold = 0.6

// maxAlternatives caps the alternative culture list.
const maxAlternatives = 3

// Profiler aggregates weighted responses against the scoring matrix.
// It holds only read-only catalog data and is safe for concurrent use.
type Profiler struct {
	catalog *catalog.Catalog
	matrix  *Matrix
}

// NewProfiler builds a profiler over the given catalog.
func NewProfiler(cat *catalog.Catalog) *Profiler {
	return &Profiler{
		catalog: cat,
		matrix:  BuildMatrix(cat),
	}
}

// AnalyzeProfile runs the weighted-aggregation algorithm over the
// responses and returns the ranked profiling result. Unknown question
// or option ids are skipped, never fatal; an empty response list yields
// a zero-confidence result with the default fallback profile.
func (p *Profiler) AnalyzeProfile(responses []types.UserResponse) types.ProfilingResult {
	cultureScores := make(map[types.Culture]float64, len(types.AllCultures))
	religionScores := make(map[types.Religion]float64, len(types.AllReligions))
	totalWeight := 0.0

	for _, resp := range responses {
		points, ok := p.matrix.CulturePoints(resp.QuestionID, resp.SelectedOptionID)
		if !ok {
			log.Printf("profiling: skipping unknown question/option %q/%q", resp.QuestionID, resp.SelectedOptionID)
			continue
		}
		weight, ok := p.matrix.Weight(resp.QuestionID)
		if !ok {
			continue
		}

		multiplier := confidenceMultiplier(resp.EffectiveConfidence())
		totalWeight += float64(weight) * multiplier

		for culture, pts := range points {
			cultureScores[culture] += pts * multiplier
		}
		if religionPoints, ok := p.matrix.ReligionPoints(resp.QuestionID, resp.SelectedOptionID); ok {
			for religion, pts := range religionPoints {
				religionScores[religion] += pts * multiplier
			}
		}
	}

	primaryCulture, primaryScore := argmaxCulture(cultureScores)
	primaryReligion := argmaxReligion(religionScores)

	denominator := totalWeight
	if denominator < 1 {
		denominator = 1
	}
	confidence := primaryScore / denominator

	alternatives := rankAlternatives(cultureScores, primaryCulture, denominator)

	profile := p.catalog.DefaultProfile()
	if primaryScore > 0 {
		resolved, ok := p.catalog.ProfileFor(primaryCulture)
		if !ok {
			log.Printf("profiling: no catalog profile for culture %q, using default", primaryCulture)
		} else {
			profile = resolved
		}
	}
	profile.Religion = primaryReligion

	return types.ProfilingResult{
		PrimaryCulture:  primaryCulture,
		PrimaryReligion: primaryReligion,
		Confidence:      confidence,
		Alternatives:    alternatives,
		Profile:         profile,
		Notes:           profilingNotes(primaryCulture, primaryReligion, confidence, len(responses)),
		ResponseCount:   len(responses),
	}
}

// confidenceMultiplier converts a 1-10 self-reported confidence level
// into a weight multiplier clamped to [0.1, 1.0].
func confidenceMultiplier(level int) float64 {
	multiplier := float64(level) / 10.0
	if multiplier < minConfidenceMultiplier {
		multiplier = minConfidenceMultiplier
	}
	if multiplier > maxConfidenceMultiplier {
		multiplier = maxConfidenceMultiplier
	}
	return multiplier
}

// argmaxCulture picks the highest-scoring culture. Iteration follows
// AllCultures declaration order so ties resolve to the first-declared
// culture, keeping results deterministic for identical inputs.
func argmaxCulture(scores map[types.Culture]float64) (types.Culture, float64) {
	best := types.AllCultures[0]
	bestScore := scores[best]
	for _, culture := range types.AllCultures[1:] {
		if scores[culture] > bestScore {
			best = culture
			bestScore = scores[culture]
		}
	}
	return best, bestScore
}

// argmaxReligion picks the highest-scoring religion, defaulting to
// Secular when no response carried a religion signal.
func argmaxReligion(scores map[types.Religion]float64) types.Religion {
	best := types.AllReligions[0]
	bestScore := scores[best]
	for _, religion := range types.AllReligions[1:] {
		if scores[religion] > bestScore {
			best = religion
			bestScore = scores[religion]
		}
	}
	if bestScore == 0 {
		return types.ReligionSecular
	}
	return best
}

// rankAlternatives returns every non-primary culture with a positive
// score, sorted descending by normalized score, capped to the top 3.
func rankAlternatives(scores map[types.Culture]float64, primary types.Culture, totalWeight float64) []types.CultureScore {
	alternatives := make([]types.CultureScore, 0, len(scores))
	for _, culture := range types.AllCultures {
		if culture == primary || scores[culture] <= 0 {
			continue
		}
		alternatives = append(alternatives, types.CultureScore{
			Culture: culture,
			Score:   scores[culture] / totalWeight,
		})
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Score > alternatives[j].Score
	})

	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}
	return alternatives
}
