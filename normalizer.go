package wikiknow

// Normalizer converts text between script variants.
type Normalizer interface {
	// Normalize returns s in the preferred script form.
	Normalize(s string) string
}

// NopNormalizer returns text unchanged.
type NopNormalizer struct{}

// Normalize returns s.
func (NopNormalizer) Normalize(s string) string { return s }

// NormalizeAll normalizes every string of ss into a new slice.
func NormalizeAll(n Normalizer, ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = n.Normalize(s)
	}
	return out
}
