package crawl

import (
	"sync"

	"github.com/chinng-inta/gemini-file-search-tool/bloom"
)

// Frontier sizing for a single crawl run.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Item is one pending fetch: a normalized URL and its crawl depth.
type Item struct {
	URL   string
	Depth int
}

// Frontier is the FIFO queue driving a crawl run's breadth-first expansion,
// with Bloom-filter deduplication over normalized URLs. The visited set is
// scoped to one run and discarded with it; re-crawling may refetch.
//
// Frontier is safe for concurrent use, though the engine drives it from a
// single worker.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []Item
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(frontierExpectedURLs, frontierFalsePositiveRate),
	}
}

// Push enqueues a URL at the given depth. The URL is normalized before
// deduplication; returns false if it has already been seen.
func (f *Frontier) Push(rawURL string, depth int) bool {
	url := Normalize(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)
	f.queue = append(f.queue, Item{URL: url, Depth: depth})
	return true
}

// Pop dequeues the oldest pending item. The bool result is false if the
// frontier is empty.
func (f *Frontier) Pop() (Item, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return Item{}, false
	}
	item := f.queue[0]
	f.queue = f.queue[1:]
	return item, true
}

// Len returns the number of pending items.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether the URL has been queued or processed in this run.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(Normalize(rawURL))
}
