package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/wikiknow"
	"github.com/fwojciec/wikiknow/batch"
	"github.com/fwojciec/wikiknow/bloom"
	"github.com/fwojciec/wikiknow/fs"
	"github.com/fwojciec/wikiknow/goquery"
	"github.com/fwojciec/wikiknow/norm"
	wkslog "github.com/fwojciec/wikiknow/slog"
	"github.com/fwojciec/wikiknow/yaml"
)

// Duplicate filter sizing for --dedup.
const (
	dedupExpectedTitles    = 1_000_000
	dedupFalsePositiveRate = 0.0001
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	result, path, err := c.run(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiknow.ErrorMessage(err))
		if result != nil {
			fmt.Fprintf(deps.Stderr, "Stopped after accumulating %s records for %s\n", humanize.Comma(int64(len(result.Records))), path)
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %s records\n", humanize.Comma(int64(result.Accepted)))
	fmt.Fprintf(deps.Stdout, "Skipped %s filtered, %s duplicate, %s failed of %s files\n",
		humanize.Comma(int64(result.Filtered)),
		humanize.Comma(int64(result.Duplicates)),
		humanize.Comma(int64(result.Failed)),
		humanize.Comma(int64(result.Total)),
	)
	fmt.Fprintf(deps.Stdout, "Saved to %s\n", path)
	return nil
}

func (c *ProcessCmd) run(deps *Dependencies) (*batch.Result, string, error) {
	tables := wikiknow.DefaultTables()
	if c.Tables != "" {
		var err error
		if tables, err = yaml.LoadTables(c.Tables); err != nil {
			return nil, "", err
		}
	}

	form, err := norm.ParseForm(c.Normalize)
	if err != nil {
		return nil, "", err
	}
	if c.CheckpointEvery <= 0 {
		return nil, "", wikiknow.Errorf(wikiknow.EINVALID, "checkpoint interval must be positive, got %d", c.CheckpointEvery)
	}

	if err := os.MkdirAll(c.Output, 0755); err != nil {
		return nil, "", wikiknow.Errorf(wikiknow.EINVALID, "failed to create output directory: %v", err)
	}
	path := filepath.Join(c.Output, gobStoreName)
	if c.Format == "sqlite" {
		path = filepath.Join(c.Output, sqliteStoreName)
	}

	store, closeStore, err := openStore(path, true)
	if err != nil {
		return nil, path, err
	}
	defer closeStore()

	normalizer := norm.NewNormalizer(form, tables.ScriptMapping)
	driver := &batch.Driver{
		Source:          fs.NewSource(c.Input),
		Filter:          wikiknow.NewNoiseFilter(tables.FilterTerms),
		Extractor:       wkslog.NewLoggingExtractor(goquery.NewExtractor(tables, normalizer), deps.Logger),
		Store:           wkslog.NewLoggingRecordStore(store, deps.Logger),
		Normalizer:      normalizer,
		Logger:          deps.Logger,
		CheckpointEvery: c.CheckpointEvery,
	}
	var dedup *bloom.Filter
	if c.Dedup {
		dedup = bloom.NewFilter(dedupExpectedTitles, dedupFalsePositiveRate)
		driver.Duplicates = dedup
	}

	result, err := driver.Run(deps.Ctx, func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Processing %s files from %s\n", humanize.Comma(int64(e.Total)), c.Input)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", e.Name, wikiknow.ErrorMessage(e.Error))
		}
	})
	if dedup != nil {
		deps.Logger.Debug("duplicate filter", "titles", dedup.EstimatedCount())
	}
	return result, path, err
}
