// Package profiling runs the weighted-aggregation algorithm that turns
// raw questionnaire responses into a ranked cultural profile.
package profiling

import (
	"github.com/jonathan/culture-profiler/internal/catalog"
	"github.com/jonathan/culture-profiler/internal/types"
)

type optionKey struct {
	QuestionID string
	OptionID   string
}

// Matrix is the derived lookup from (question, option) to per-culture
// and per-religion point contributions. A direct option contributes the
// question's full weight to its culture; a shared option splits the
// weight evenly across its cultures (floating division, fractional
// points preserved). Built once from the catalog, read-only afterwards.
type Matrix struct {
	culturePoints  map[optionKey]map[types.Culture]float64
	religionPoints map[optionKey]map[types.Religion]float64
	weights        map[string]int
}

// BuildMatrix derives the scoring matrix from the question bank.
func BuildMatrix(cat *catalog.Catalog) *Matrix {
	m := &Matrix{
		culturePoints:  make(map[optionKey]map[types.Culture]float64),
		religionPoints: make(map[optionKey]map[types.Religion]float64),
		weights:        make(map[string]int),
	}

	for _, q := range cat.Questions() {
		m.weights[q.ID] = q.Weight
		for _, opt := range q.Options {
			key := optionKey{QuestionID: q.ID, OptionID: opt.ID}

			points := make(map[types.Culture]float64)
			switch opt.Kind {
			case types.OptionDirect:
				points[opt.Culture] = float64(q.Weight)
			case types.OptionShared:
				share := float64(q.Weight) / float64(len(opt.Cultures))
				for _, culture := range opt.Cultures {
					points[culture] = share
				}
			}
			m.culturePoints[key] = points

			if opt.Religion != "" {
				m.religionPoints[key] = map[types.Religion]float64{
					opt.Religion: float64(q.Weight),
				}
			}
		}
	}

	return m
}

// CulturePoints returns the per-culture contributions for a selected
// option. The second return is false when the (question, option) pair
// is unknown.
func (m *Matrix) CulturePoints(questionID, optionID string) (map[types.Culture]float64, bool) {
	points, ok := m.culturePoints[optionKey{QuestionID: questionID, OptionID: optionID}]
	return points, ok
}

// ReligionPoints returns the per-religion contributions for a selected
// option, if the option carries a religion signal.
func (m *Matrix) ReligionPoints(questionID, optionID string) (map[types.Religion]float64, bool) {
	points, ok := m.religionPoints[optionKey{QuestionID: questionID, OptionID: optionID}]
	return points, ok
}

// Weight returns the weight of the question, if known.
func (m *Matrix) Weight(questionID string) (int, bool) {
	w, ok := m.weights[questionID]
	return w, ok
}
