package wikiknow

// DocumentExtractor extracts knowledge from one article's HTML.
type DocumentExtractor interface {
	// Extract parses html and returns its infobox, navboxes and passage.
	// Documents without a content container yield an empty Extraction.
	Extract(html string) (*Extraction, error)
}
