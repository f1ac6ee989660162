package mock

import (
	"context"

	"github.com/fwojciec/docboost"
)

var _ docboost.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of docboost.URLFrontier.
type URLFrontier struct {
	PushFn func(link docboost.DiscoveredLink) bool
	PopFn  func() (docboost.DiscoveredLink, bool)
	LenFn  func() int
}

func (f *URLFrontier) Push(link docboost.DiscoveredLink) bool {
	return f.PushFn(link)
}

func (f *URLFrontier) Pop() (docboost.DiscoveredLink, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

var _ docboost.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of docboost.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
