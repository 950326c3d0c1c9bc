// Package slog provides log/slog decorators for wikiknow services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wikiknow"
)

// Ensure LoggingExtractor implements wikiknow.DocumentExtractor.
var _ wikiknow.DocumentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a DocumentExtractor with debug logging.
type LoggingExtractor struct {
	next   wikiknow.DocumentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next wikiknow.DocumentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(html string) (result *wikiknow.Extraction, err error) {
	defer func(begin time.Time) {
		var infobox, navboxes, sections, entities int
		if result != nil {
			infobox = len(result.Infobox)
			navboxes = len(result.Navboxes)
			if result.Passage != nil {
				sections = len(result.Passage.Sections)
				entities = len(result.Passage.Entities)
			}
		}
		e.logger.Debug("extract",
			"bytes", len(html),
			"infobox", infobox,
			"navboxes", navboxes,
			"sections", sections,
			"entities", entities,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
