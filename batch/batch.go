// Package batch drives knowledge extraction over a directory of archived
// articles. It reads each record, filters out-of-domain and duplicate
// entities, extracts knowledge, and checkpoints the accumulated records.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikiknow"
)

// DefaultCheckpointEvery is the number of accepted records between
// checkpoints when Driver.CheckpointEvery is not set.
const DefaultCheckpointEvery = 500

// Driver processes every record of a source into a record store.
// Processing is sequential; records keep source order.
type Driver struct {
	Source     wikiknow.RecordSource
	Filter     *wikiknow.NoiseFilter
	Extractor  wikiknow.DocumentExtractor
	Store      wikiknow.RecordStore
	Normalizer wikiknow.Normalizer

	// Duplicates, when set, drops records whose title was already seen.
	Duplicates wikiknow.DuplicateFilter

	Logger          *slog.Logger
	CheckpointEvery int
}

// Result holds the outcome of a batch run.
type Result struct {
	Total       int
	Accepted    int
	Filtered    int
	Duplicates  int
	Failed      int
	Checkpoints int
	Records     []*wikiknow.KnowledgeRecord
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Entity    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressAccepted
	ProgressFiltered
	ProgressDuplicate
	ProgressFailed
	ProgressCheckpoint
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// outcome classifies what happened to one record.
type outcome int

const (
	outcomeAccepted outcome = iota
	outcomeFiltered
	outcomeDuplicate
	outcomeFailed
)

// Run processes every record listed by the source. The accumulated records
// are saved every CheckpointEvery accepted records and once at the end.
//
// A checkpoint that fails twice stops the run: the accumulated records get
// one last best-effort save and an ESTORAGE error is returned with the
// partial result. Cancellation is checked between records and also ends
// with a best-effort save.
func (d *Driver) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	emit := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	names, err := d.Source.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Total:   len(names),
		Records: []*wikiknow.KnowledgeRecord{},
	}
	emit(ProgressEvent{Type: ProgressStarted, Total: result.Total})

	every := d.CheckpointEvery
	if every <= 0 {
		every = DefaultCheckpointEvery
	}
	pending := 0

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			d.finalSave(ctx, result.Records)
			return result, err
		}

		event := ProgressEvent{Completed: i + 1, Total: result.Total, Name: name}
		rec, out, err := d.process(ctx, name)
		if err != nil && isCanceled(err) {
			d.finalSave(ctx, result.Records)
			return result, err
		}

		switch out {
		case outcomeFiltered:
			result.Filtered++
			event.Type = ProgressFiltered
		case outcomeDuplicate:
			result.Duplicates++
			event.Type = ProgressDuplicate
		case outcomeFailed:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = err
			d.logger().Warn("skipping record", "name", name, "err", err)
		case outcomeAccepted:
			result.Accepted++
			result.Records = append(result.Records, rec)
			event.Type = ProgressAccepted
			event.Entity = rec.Entity
			pending++
		}
		emit(event)

		if pending >= every {
			if err := d.checkpoint(ctx, result, emit); err != nil {
				return result, err
			}
			pending = 0
		}
	}

	if err := d.checkpoint(ctx, result, emit); err != nil {
		return result, err
	}

	emit(ProgressEvent{Type: ProgressFinished, Completed: result.Total, Total: result.Total})
	return result, nil
}

// process reads, filters and extracts one record.
func (d *Driver) process(ctx context.Context, name string) (*wikiknow.KnowledgeRecord, outcome, error) {
	raw, err := d.Source.Read(ctx, name)
	if err != nil {
		return nil, outcomeFailed, err
	}

	normalizer := d.normalizer()
	title := normalizer.Normalize(raw.Title)
	categories := wikiknow.NormalizeAll(normalizer, raw.Categories)
	if title == "" {
		return nil, outcomeFailed, wikiknow.Errorf(wikiknow.EFORMAT, "%s: record title is empty after normalization", name)
	}

	if d.Filter != nil && d.Filter.ShouldSkip(title, categories) {
		d.logger().Debug("filtered record", "name", name, "entity", title)
		return nil, outcomeFiltered, nil
	}
	if d.Duplicates != nil && d.Duplicates.Seen(title) {
		d.logger().Debug("duplicate record", "name", name, "entity", title)
		return nil, outcomeDuplicate, nil
	}

	extraction, err := d.extract(raw.Body)
	if err != nil {
		return nil, outcomeFailed, err
	}

	rec := &wikiknow.KnowledgeRecord{
		Entity:      title,
		Categories:  categories,
		URL:         raw.URL,
		Timestamp:   raw.Timestamp,
		ContentHash: computeHash(raw.Body),
	}
	if extraction != nil {
		rec.Infobox = extraction.Infobox
		rec.Navboxes = extraction.Navboxes
		rec.Passage = extraction.Passage
	}
	rec.FillEmpty()
	return rec, outcomeAccepted, nil
}

// extract runs the extractor, converting failures and panics into
// EINTERNAL errors.
func (d *Driver) extract(html string) (result *wikiknow.Extraction, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = wikiknow.Errorf(wikiknow.EINTERNAL, "extraction panicked: %v", r)
		}
	}()

	result, err = d.Extractor.Extract(html)
	if err != nil {
		return nil, wikiknow.Errorf(wikiknow.EINTERNAL, "extraction failed: %s", wikiknow.ErrorMessage(err))
	}
	return result, nil
}

// checkpoint saves the accumulated records, retrying once.
// On a second failure it makes one final best-effort save and returns
// ESTORAGE.
func (d *Driver) checkpoint(ctx context.Context, result *Result, emit ProgressFunc) error {
	err := d.Store.SaveRecords(ctx, result.Records)
	if err != nil {
		d.logger().Warn("checkpoint failed, retrying", "count", len(result.Records), "err", err)
		err = d.Store.SaveRecords(ctx, result.Records)
	}
	if err != nil {
		d.finalSave(ctx, result.Records)
		return wikiknow.Errorf(wikiknow.ESTORAGE, "checkpoint of %d records failed: %s", len(result.Records), wikiknow.ErrorMessage(err))
	}

	result.Checkpoints++
	emit(ProgressEvent{Type: ProgressCheckpoint, Completed: len(result.Records), Total: result.Total})
	return nil
}

// finalSave attempts one last save, ignoring cancellation of ctx.
func (d *Driver) finalSave(ctx context.Context, records []*wikiknow.KnowledgeRecord) {
	if err := d.Store.SaveRecords(context.WithoutCancel(ctx), records); err != nil {
		d.logger().Error("final save failed", "count", len(records), "err", err)
	}
}

func (d *Driver) normalizer() wikiknow.Normalizer {
	if d.Normalizer == nil {
		return wikiknow.NopNormalizer{}
	}
	return d.Normalizer
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// computeHash returns the xxhash of content as hex.
func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// ComputeHash computes a hash of the content using xxhash.
// This is the exported version for use outside the package.
func ComputeHash(content string) string {
	return computeHash(content)
}
