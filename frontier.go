package docboost

import "context"

// URLFrontier is a crawl queue that never yields the same URL twice.
type URLFrontier interface {
	// Push queues a link. Returns false if the URL was already seen.
	Push(link DiscoveredLink) bool

	// Pop returns the highest priority queued link.
	// Returns false if the frontier is empty.
	Pop() (DiscoveredLink, bool)

	// Len returns the number of queued links.
	Len() int
}

// DomainLimiter rate limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
