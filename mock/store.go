package mock

import (
	"context"

	"github.com/fwojciec/wikiknow"
)

var _ wikiknow.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of wikiknow.RecordStore.
type RecordStore struct {
	SaveRecordsFn func(ctx context.Context, records []*wikiknow.KnowledgeRecord) error
	LoadRecordsFn func(ctx context.Context) ([]*wikiknow.KnowledgeRecord, error)
}

func (s *RecordStore) SaveRecords(ctx context.Context, records []*wikiknow.KnowledgeRecord) error {
	return s.SaveRecordsFn(ctx, records)
}

func (s *RecordStore) LoadRecords(ctx context.Context) ([]*wikiknow.KnowledgeRecord, error) {
	return s.LoadRecordsFn(ctx)
}

var _ wikiknow.RecordSource = (*RecordSource)(nil)

// RecordSource is a mock implementation of wikiknow.RecordSource.
type RecordSource struct {
	ListFn func(ctx context.Context) ([]string, error)
	ReadFn func(ctx context.Context, name string) (*wikiknow.RawRecord, error)
}

func (s *RecordSource) List(ctx context.Context) ([]string, error) {
	return s.ListFn(ctx)
}

func (s *RecordSource) Read(ctx context.Context, name string) (*wikiknow.RawRecord, error) {
	return s.ReadFn(ctx, name)
}

var _ wikiknow.DuplicateFilter = (*DuplicateFilter)(nil)

// DuplicateFilter is a mock implementation of wikiknow.DuplicateFilter.
type DuplicateFilter struct {
	SeenFn func(key string) bool
}

func (f *DuplicateFilter) Seen(key string) bool {
	return f.SeenFn(key)
}
