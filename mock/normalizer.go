package mock

import "github.com/fwojciec/wikiknow"

var _ wikiknow.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of wikiknow.Normalizer.
type Normalizer struct {
	NormalizeFn func(s string) string
}

func (n *Normalizer) Normalize(s string) string {
	return n.NormalizeFn(s)
}
