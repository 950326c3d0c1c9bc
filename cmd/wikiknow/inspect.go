package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/wikiknow"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	if err := c.run(deps); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiknow.ErrorMessage(err))
		return err
	}
	return nil
}

func (c *InspectCmd) run(deps *Dependencies) error {
	store, closeStore, err := openStore(c.Store, false)
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := store.LoadRecords(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Records: %s\n", humanize.Comma(int64(len(records))))
	if cp, ok := store.(checkpointer); ok {
		if savedAt, err := cp.LastCheckpoint(deps.Ctx); err == nil {
			fmt.Fprintf(deps.Stdout, "Saved: %s\n", humanize.Time(savedAt))
		}
	}

	if len(records) == 0 {
		return nil
	}
	out, err := wikiknow.FormatRecord(records[0])
	if err != nil {
		return wikiknow.Errorf(wikiknow.EINTERNAL, "failed to format record: %v", err)
	}
	fmt.Fprintf(deps.Stdout, "First record:\n%s", out)
	return nil
}
