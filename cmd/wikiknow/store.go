package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/wikiknow"
	"github.com/fwojciec/wikiknow/fs"
	"github.com/fwojciec/wikiknow/sqlite"
)

// Store file names written by the process command.
const (
	gobStoreName    = "wiki_knowledge.gob"
	sqliteStoreName = "wiki_knowledge.db"
	exportName      = "wiki_knowledge_readable.json"
)

// checkpointer is implemented by stores that know when they were last saved.
type checkpointer interface {
	LastCheckpoint(ctx context.Context) (time.Time, error)
}

// isSQLitePath reports whether path names a SQLite store by its extension.
func isSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// openStore opens the record store at path, choosing the format by
// extension. Unless create is set the store must already exist.
// The returned close function releases the store.
func openStore(path string, create bool) (wikiknow.RecordStore, func() error, error) {
	if !create {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, nil, wikiknow.Errorf(wikiknow.ENOTFOUND, "record store not found: %s", path)
			}
			return nil, nil, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to stat record store: %v", err)
		}
	}

	if !isSQLitePath(path) {
		return fs.NewArrayStore(path), func() error { return nil }, nil
	}

	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return nil, nil, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to open database at %q: %v", path, err)
	}
	return sqlite.NewRecordStore(db), db.Close, nil
}
