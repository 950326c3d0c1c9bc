package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/wikiknow"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	n, output, err := c.run(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiknow.ErrorMessage(err))
		return err
	}
	if output != "-" {
		fmt.Fprintf(deps.Stdout, "Exported %s records to %s\n", humanize.Comma(int64(n)), output)
	}
	return nil
}

func (c *ExportCmd) run(deps *Dependencies) (int, string, error) {
	if c.Limit < 0 {
		return 0, "", wikiknow.Errorf(wikiknow.EINVALID, "limit must not be negative, got %d", c.Limit)
	}

	store, closeStore, err := openStore(c.Store, false)
	if err != nil {
		return 0, "", err
	}
	defer closeStore()

	records, err := store.LoadRecords(deps.Ctx)
	if err != nil {
		return 0, "", err
	}
	if c.Limit > 0 && c.Limit < len(records) {
		records = records[:c.Limit]
	}

	output := c.Output
	if output == "" {
		output = filepath.Join(filepath.Dir(c.Store), exportName)
	}

	var w io.Writer = deps.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return 0, output, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to create %s: %v", output, err)
		}
		defer f.Close()
		w = f
	}

	if err := wikiknow.ExportJSON(w, records, 0); err != nil {
		return 0, output, wikiknow.Errorf(wikiknow.ESTORAGE, "failed to write %s: %v", output, err)
	}
	return len(records), output, nil
}
