package wikiknow

import "context"

// RecordStore persists the accumulated batch of knowledge records.
type RecordStore interface {
	// SaveRecords replaces the stored collection with records.
	SaveRecords(ctx context.Context, records []*KnowledgeRecord) error

	// LoadRecords returns the stored collection in insertion order.
	// Returns ENOTFOUND if nothing has been stored.
	LoadRecords(ctx context.Context) ([]*KnowledgeRecord, error)
}

// RecordSource lists and reads raw record files.
type RecordSource interface {
	// List returns the names of the records to process, in order.
	// Returns EINVALID if the source location is unusable.
	List(ctx context.Context) ([]string, error)

	// Read loads and parses the named record.
	// Returns EFORMAT if the record header is malformed.
	Read(ctx context.Context, name string) (*RawRecord, error)
}

// DuplicateFilter remembers keys it has been shown.
type DuplicateFilter interface {
	// Seen reports whether key was seen before and records it.
	Seen(key string) bool
}
