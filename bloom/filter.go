// Package bloom tracks visited crawl URLs in a Bloom filter, which keeps the
// memory of a large crawl bounded.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a probabilistic set of URLs. It is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter returns a Filter sized for n URLs at the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add records url.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether url may have been added. False positives are possible;
// false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// Visit records url and reports whether it was new. A false positive makes a
// new URL look visited, so it is skipped.
func (f *Filter) Visit(url string) bool {
	return !f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of distinct URLs added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
