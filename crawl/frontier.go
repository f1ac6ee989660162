package crawl

import (
	"container/heap"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/docboost"
	"github.com/fwojciec/docboost/bloom"
)

// Compile-time interface verification.
var _ docboost.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory crawl queue ordered by link priority, with
// Bloom filter deduplication. It is safe for concurrent use.
type Frontier struct {
	mu     sync.Mutex
	seen   *bloom.Filter
	queue  *linkHeap
	pushed int
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push queues a link unless its URL was pushed before. URLs differing only
// by fragment or a trailing slash are the same page.
func (f *Frontier) Push(link docboost.DiscoveredLink) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	link.URL = stripFragment(link.URL)
	if !f.seen.Visit(dedupKey(link.URL)) {
		return false
	}

	heap.Push(f.queue, queuedLink{link: link, seq: f.pushed})
	f.pushed++
	return true
}

// Pop returns the next link by priority.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (docboost.DiscoveredLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return docboost.DiscoveredLink{}, false
	}
	q, _ := heap.Pop(f.queue).(queuedLink)
	return q.link, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// linkHeap is a max-heap of links by priority. Links of equal priority are
// popped in push order.
type linkHeap []queuedLink

type queuedLink struct {
	link docboost.DiscoveredLink
	seq  int
}

func (h linkHeap) Len() int { return len(h) }

func (h linkHeap) Less(i, j int) bool {
	if h[i].link.Priority != h[j].link.Priority {
		return h[i].link.Priority > h[j].link.Priority
	}
	return h[i].seq < h[j].seq
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	q, _ := x.(queuedLink)
	*h = append(*h, q)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

func stripFragment(raw string) string {
	if idx := strings.Index(raw, "#"); idx != -1 {
		return raw[:idx]
	}
	return raw
}

// dedupKey ignores a trailing slash on the path.
func dedupKey(raw string) string {
	if u, err := url.Parse(raw); err == nil && len(u.Path) > 1 {
		u.Path = strings.TrimSuffix(u.Path, "/")
		return u.String()
	}
	return raw
}
