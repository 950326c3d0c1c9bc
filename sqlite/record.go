package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/wikiknow"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wikiknow.RecordStore = (*RecordStore)(nil)

// RecordStore implements wikiknow.RecordStore using SQLite.
// Nested fields are stored as JSON columns.
type RecordStore struct {
	db *DB
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db}
}

// SaveRecords replaces every stored record with records in one transaction.
func (s *RecordStore) SaveRecords(ctx context.Context, records []*wikiknow.KnowledgeRecord) error {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wikiknow.Errorf(wikiknow.ESTORAGE, "failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return wikiknow.Errorf(wikiknow.ESTORAGE, "failed to clear records: %v", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (id, position, entity, categories, url, timestamp, content_hash, infobox, navboxes, passage)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return wikiknow.Errorf(wikiknow.ESTORAGE, "failed to prepare insert: %v", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		cols, err := encodeColumns(rec)
		if err != nil {
			return wikiknow.Errorf(wikiknow.ESTORAGE, "failed to encode record %q: %v", rec.Entity, err)
		}
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), i, rec.Entity,
			cols.categories, rec.URL, rec.Timestamp, rec.ContentHash,
			cols.infobox, cols.navboxes, cols.passage); err != nil {
			return wikiknow.Errorf(wikiknow.ESTORAGE, "failed to insert record %q: %v", rec.Entity, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO checkpoints (id, record_count, saved_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET record_count = excluded.record_count, saved_at = excluded.saved_at
	`, len(records), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return wikiknow.Errorf(wikiknow.ESTORAGE, "failed to record checkpoint: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return wikiknow.Errorf(wikiknow.ESTORAGE, "failed to commit records: %v", err)
	}
	return nil
}

// LoadRecords returns the stored records in saved order.
// Returns ENOTFOUND if no collection was ever saved.
func (s *RecordStore) LoadRecords(ctx context.Context) ([]*wikiknow.KnowledgeRecord, error) {
	if _, err := s.LastCheckpoint(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT entity, categories, url, timestamp, content_hash, infobox, navboxes, passage
		FROM records
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to query records: %v", err)
	}
	defer rows.Close()

	records := []*wikiknow.KnowledgeRecord{}
	for rows.Next() {
		var rec wikiknow.KnowledgeRecord
		var cols columns
		if err := rows.Scan(&rec.Entity, &cols.categories, &rec.URL, &rec.Timestamp,
			&rec.ContentHash, &cols.infobox, &cols.navboxes, &cols.passage); err != nil {
			return nil, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to scan record: %v", err)
		}
		if err := cols.decode(&rec); err != nil {
			return nil, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to decode record %q: %v", rec.Entity, err)
		}
		rec.FillEmpty()
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to read records: %v", err)
	}
	return records, nil
}

// LastCheckpoint returns when the collection was last saved.
// Returns ENOTFOUND if no collection was ever saved.
func (s *RecordStore) LastCheckpoint(ctx context.Context) (time.Time, error) {
	var savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM checkpoints WHERE id = 1`).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, wikiknow.Errorf(wikiknow.ENOTFOUND, "no records saved in %s", s.db.Path())
	}
	if err != nil {
		return time.Time{}, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to query checkpoint: %v", err)
	}

	t, err := time.Parse(time.RFC3339, savedAt)
	if err != nil {
		return time.Time{}, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to parse saved_at: %v", err)
	}
	return t, nil
}

// columns holds the JSON-encoded nested fields of a record row.
type columns struct {
	categories string
	infobox    string
	navboxes   string
	passage    string
}

func encodeColumns(rec *wikiknow.KnowledgeRecord) (columns, error) {
	var cols columns
	for _, f := range []struct {
		dst *string
		v   any
	}{
		{&cols.categories, nonNil(rec.Categories)},
		{&cols.infobox, rec.Infobox},
		{&cols.navboxes, nonNil(rec.Navboxes)},
		{&cols.passage, rec.Passage},
	} {
		b, err := json.Marshal(f.v)
		if err != nil {
			return columns{}, err
		}
		*f.dst = string(b)
	}
	return cols, nil
}

func (c columns) decode(rec *wikiknow.KnowledgeRecord) error {
	if err := json.Unmarshal([]byte(c.categories), &rec.Categories); err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	if err := json.Unmarshal([]byte(c.infobox), &rec.Infobox); err != nil {
		return fmt.Errorf("infobox: %w", err)
	}
	if err := json.Unmarshal([]byte(c.navboxes), &rec.Navboxes); err != nil {
		return fmt.Errorf("navboxes: %w", err)
	}
	if err := json.Unmarshal([]byte(c.passage), &rec.Passage); err != nil {
		return fmt.Errorf("passage: %w", err)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
