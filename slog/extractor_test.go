package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/wikiknow"
	"github.com/fwojciec/wikiknow/mock"
	wkslog "github.com/fwojciec/wikiknow/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction counts with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		want := wikiknow.NewExtraction()
		want.Infobox.Add("Born", "1990")
		want.Passage.Sections.Append("历史", "text")
		want.Passage.Entities.Add("A")
		want.Passage.Entities.Add("B")
		inner := &mock.DocumentExtractor{
			ExtractFn: func(html string) (*wikiknow.Extraction, error) {
				return want, nil
			},
		}

		extractor := wkslog.NewLoggingExtractor(inner, debugLogger(&buf))
		got, err := extractor.Extract("<p>x</p>")

		require.NoError(t, err)
		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "bytes=8")
		assert.Contains(t, output, "infobox=1")
		assert.Contains(t, output, "navboxes=0")
		assert.Contains(t, output, "sections=1")
		assert.Contains(t, output, "entities=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentExtractor{
			ExtractFn: func(html string) (*wikiknow.Extraction, error) {
				return nil, errors.New("parse error")
			},
		}

		extractor := wkslog.NewLoggingExtractor(inner, debugLogger(&buf))
		_, err := extractor.Extract("<p>x</p>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"parse error\"")
	})

	t.Run("stays silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentExtractor{
			ExtractFn: func(html string) (*wikiknow.Extraction, error) {
				return wikiknow.NewExtraction(), nil
			},
		}

		extractor := wkslog.NewLoggingExtractor(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := extractor.Extract("")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
