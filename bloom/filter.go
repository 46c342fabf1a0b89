// Package bloom provides probabilistic membership testing for the crawl
// engine's visited set.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by normalized URL.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add marks a URL as visited.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL may have been visited. False positives are
// possible (a never-visited URL reported as visited, so the crawl skips
// it); false negatives are not, so no URL is ever fetched twice.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
