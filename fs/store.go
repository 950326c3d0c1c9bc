package fs

import (
	"bufio"
	"context"
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/wikiknow"
)

// Ensure ArrayStore implements wikiknow.RecordStore at compile time.
var _ wikiknow.RecordStore = (*ArrayStore)(nil)

// ArrayStore persists the record collection as one gob-encoded array file.
// Every save writes path.tmp and renames it over path, so an interrupted
// save leaves the previous checkpoint intact.
type ArrayStore struct {
	path string
}

// NewArrayStore creates an ArrayStore backed by the file at path.
func NewArrayStore(path string) *ArrayStore {
	return &ArrayStore{path: path}
}

// Path returns the path of the array file.
func (s *ArrayStore) Path() string {
	return s.path
}

func (s *ArrayStore) tempPath() string {
	return s.path + ".tmp"
}

// SaveRecords replaces the array file with records.
func (s *ArrayStore) SaveRecords(ctx context.Context, records []*wikiknow.KnowledgeRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return wikiknow.Errorf(wikiknow.ESTORAGE, "failed to create output directory: %v", err)
	}

	if err := s.writeTemp(records); err != nil {
		_ = os.Remove(s.tempPath())
		return wikiknow.Errorf(wikiknow.ESTORAGE, "failed to write %s: %v", s.tempPath(), err)
	}

	if err := os.Rename(s.tempPath(), s.path); err != nil {
		_ = os.Remove(s.tempPath())
		return wikiknow.Errorf(wikiknow.ESTORAGE, "failed to replace %s: %v", s.path, err)
	}
	return nil
}

func (s *ArrayStore) writeTemp(records []*wikiknow.KnowledgeRecord) error {
	f, err := os.Create(s.tempPath())
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if records == nil {
		records = []*wikiknow.KnowledgeRecord{}
	}
	if err := gob.NewEncoder(w).Encode(records); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadRecords decodes the array file. Returns ENOTFOUND if it does not
// exist.
func (s *ArrayStore) LoadRecords(ctx context.Context) ([]*wikiknow.KnowledgeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, wikiknow.Errorf(wikiknow.ENOTFOUND, "record file not found: %s", s.path)
		}
		return nil, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to open %s: %v", s.path, err)
	}
	defer f.Close()

	var records []*wikiknow.KnowledgeRecord
	if err := gob.NewDecoder(bufio.NewReader(f)).Decode(&records); err != nil {
		return nil, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to decode %s: %v", s.path, err)
	}

	out := make([]*wikiknow.KnowledgeRecord, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		rec.FillEmpty()
		out = append(out, rec)
	}
	return out, nil
}

// LastCheckpoint returns the modification time of the array file.
// Returns ENOTFOUND if it does not exist.
func (s *ArrayStore) LastCheckpoint(ctx context.Context) (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return time.Time{}, wikiknow.Errorf(wikiknow.ENOTFOUND, "record file not found: %s", s.path)
		}
		return time.Time{}, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to stat %s: %v", s.path, err)
	}
	return info.ModTime(), nil
}
