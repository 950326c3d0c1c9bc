// Package bloom provides entity title deduplication using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/wikiknow"
)

// Ensure Filter implements wikiknow.DuplicateFilter at compile time.
var _ wikiknow.DuplicateFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for title deduplication.
// A false positive drops a record whose title was never seen.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected titles
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether title might have been seen before and records it.
func (f *Filter) Seen(title string) bool {
	return f.f.TestAndAddString(title)
}

// EstimatedCount returns the approximate number of titles in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
