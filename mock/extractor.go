package mock

import "github.com/fwojciec/wikiknow"

var _ wikiknow.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of wikiknow.DocumentExtractor.
type DocumentExtractor struct {
	ExtractFn func(html string) (*wikiknow.Extraction, error)
}

func (e *DocumentExtractor) Extract(html string) (*wikiknow.Extraction, error) {
	return e.ExtractFn(html)
}
