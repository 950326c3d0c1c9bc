package wikiknow

import "strings"

// NoiseFilter decides whether an entity is outside the domain of interest.
type NoiseFilter struct {
	terms []string
}

// NewNoiseFilter returns a filter matching the given denylist terms.
func NewNoiseFilter(terms []string) *NoiseFilter {
	return &NoiseFilter{terms: terms}
}

// ShouldSkip reports whether any term is a substring of the title or of
// any category.
func (f *NoiseFilter) ShouldSkip(title string, categories []string) bool {
	for _, term := range f.terms {
		if term == "" {
			continue
		}
		if strings.Contains(title, term) {
			return true
		}
		for _, category := range categories {
			if strings.Contains(category, term) {
				return true
			}
		}
	}
	return false
}
