// Package goquery implements knowledge extraction from Wikipedia article
// HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiknow"
)

// Ensure Extractor implements wikiknow.DocumentExtractor at compile time.
var _ wikiknow.DocumentExtractor = (*Extractor)(nil)

// Extractor extracts infoboxes, navboxes and passages from article HTML.
type Extractor struct {
	tables     wikiknow.Tables
	normalizer wikiknow.Normalizer
}

// NewExtractor creates a new Extractor. A nil normalizer leaves text
// unchanged.
func NewExtractor(tables wikiknow.Tables, normalizer wikiknow.Normalizer) *Extractor {
	if normalizer == nil {
		normalizer = wikiknow.NopNormalizer{}
	}
	return &Extractor{tables: tables, normalizer: normalizer}
}

// Extract parses html and extracts every parser-output container in
// document order. Structured data (infoboxes, navboxes) is read before the
// container's noise is excluded, since it lives inside noise elements.
// Exclusions accumulate across containers of the same document.
func (x *Extractor) Extract(html string) (*wikiknow.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wikiknow.Errorf(wikiknow.EINVALID, "failed to parse HTML: %v", err)
	}

	result := wikiknow.NewExtraction()
	ex := exclusion{}

	findByClass(doc.Selection, "div", "mw-parser-output").Each(func(_ int, container *goquery.Selection) {
		if ex.covers(container.Nodes[0]) {
			return
		}

		infobox := wikiknow.InfoboxMap{}
		x.extractInfobox(container, ex, infobox)
		result.Infobox.Merge(infobox)
		result.Navboxes = append(result.Navboxes, x.extractNavboxes(container, ex)...)

		for _, class := range x.tables.NoiseClasses {
			if class != "" {
				ex.add(findByClass(container, "", class))
			}
		}

		result.Passage.Merge(x.extractPassage(container, ex))
	})

	return result, nil
}
