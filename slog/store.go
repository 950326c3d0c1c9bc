package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikiknow"
)

// Ensure LoggingRecordStore implements wikiknow.RecordStore.
var _ wikiknow.RecordStore = (*LoggingRecordStore)(nil)

// LoggingRecordStore wraps a RecordStore with checkpoint logging.
type LoggingRecordStore struct {
	next   wikiknow.RecordStore
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore.
func NewLoggingRecordStore(next wikiknow.RecordStore, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, logger: logger}
}

// SaveRecords delegates to the wrapped store and logs the checkpoint.
func (s *LoggingRecordStore) SaveRecords(ctx context.Context, records []*wikiknow.KnowledgeRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("checkpoint",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveRecords(ctx, records)
}

// LoadRecords delegates to the wrapped store and logs the load.
func (s *LoggingRecordStore) LoadRecords(ctx context.Context) (records []*wikiknow.KnowledgeRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadRecords(ctx)
}
