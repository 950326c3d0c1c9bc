// Package fs implements the record source and the binary record store on
// the local filesystem.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wikiknow"
)

// RecordExt is the file extension of raw record files.
const RecordExt = ".txt"

// Ensure Source implements wikiknow.RecordSource at compile time.
var _ wikiknow.RecordSource = (*Source)(nil)

// Source reads raw record files from a directory.
type Source struct {
	dir string
}

// NewSource creates a Source reading from dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// List returns the names of the record files in the directory, sorted.
// Subdirectories and files without RecordExt are skipped.
func (s *Source) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, wikiknow.Errorf(wikiknow.EINVALID, "input directory not found: %s", s.dir)
		}
		return nil, wikiknow.Errorf(wikiknow.EINVALID, "failed to stat input directory: %v", err)
	}
	if !info.IsDir() {
		return nil, wikiknow.Errorf(wikiknow.EINVALID, "input path is not a directory: %s", s.dir)
	}

	// ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, wikiknow.Errorf(wikiknow.EINVALID, "failed to read input directory: %v", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), RecordExt) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Read loads and parses the named record file.
func (s *Source) Read(ctx context.Context, name string) (*wikiknow.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if name != filepath.Base(name) {
		return nil, wikiknow.Errorf(wikiknow.EINVALID, "invalid record name: %s", name)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, wikiknow.Errorf(wikiknow.EFORMAT, "failed to read record %s: %v", name, err)
	}

	rec, err := wikiknow.ParseRawRecord(string(data))
	if err != nil {
		return nil, wikiknow.Errorf(wikiknow.EFORMAT, "%s: %s", name, wikiknow.ErrorMessage(err))
	}
	return rec, nil
}
