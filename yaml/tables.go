// Package yaml loads configuration tables from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/wikiknow"
	"gopkg.in/yaml.v3"
)

// LoadTables reads the tables file at path and merges it onto the
// built-in defaults. Fields absent from the file keep their defaults.
func LoadTables(path string) (wikiknow.Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return wikiknow.Tables{}, wikiknow.Errorf(wikiknow.EINVALID, "tables file not found: %s", path)
		}
		return wikiknow.Tables{}, wikiknow.Errorf(wikiknow.EINVALID, "failed to open tables file: %v", err)
	}
	defer f.Close()

	return DecodeTables(f)
}

// DecodeTables decodes YAML tables from r and merges them onto the
// built-in defaults. Unknown keys are rejected.
func DecodeTables(r io.Reader) (wikiknow.Tables, error) {
	var t wikiknow.Tables
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return wikiknow.Tables{}, wikiknow.Errorf(wikiknow.EINVALID, "invalid tables file: %v", err)
	}
	return wikiknow.DefaultTables().Merge(t), nil
}
