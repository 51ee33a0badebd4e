package types

// CulturalProfile is the trait bundle associated with one culture. The
// static catalog holds one entry per culture; blended profiles are
// derived values and are never written back into the catalog.
type CulturalProfile struct {
	Culture            Culture           `json:"culture"`
	Religion           Religion          `json:"religion"`
	SensitiveTopics    []string          `json:"sensitive_topics"`    // must-avoid topics for generated content
	PreferredMetaphors []string          `json:"preferred_metaphors"` // ordered by preference
	CulturalHeroes     []string          `json:"cultural_heroes"`
	HistoricalContext  map[string]string `json:"historical_context"`
	Phase              int               `json:"phase"`
	TargetModules      []string          `json:"target_modules"`
}

// Clone returns a deep copy so callers can modify the result without
// touching catalog data.
func (p CulturalProfile) Clone() CulturalProfile {
	out := p
	out.SensitiveTopics = append([]string(nil), p.SensitiveTopics...)
	out.PreferredMetaphors = append([]string(nil), p.PreferredMetaphors...)
	out.CulturalHeroes = append([]string(nil), p.CulturalHeroes...)
	out.TargetModules = append([]string(nil), p.TargetModules...)
	out.HistoricalContext = make(map[string]string, len(p.HistoricalContext)+2)
	for k, v := range p.HistoricalContext {
		out.HistoricalContext[k] = v
	}
	return out
}
