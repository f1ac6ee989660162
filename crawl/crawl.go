// Package crawl turns a documentation website into indexable documents and
// feeds documents from any source into a document store.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docboost"
	"golang.org/x/sync/errgroup"
)

// Defaults for Source.
const (
	DefaultConcurrency = 4

	// frontierExpectedURLs sizes the Bloom filter used for deduplication.
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01

	// maxFollowedURLs bounds link following when no sitemap is available.
	maxFollowedURLs = 1000
)

// Compile-time interface verification.
var _ docboost.Source = (*Source)(nil)

// Source crawls a documentation site and returns its pages as documents of
// type api. URLs come from the site's sitemaps; when none are listed the
// source follows links from BaseURL instead, if a LinkSelector is set.
type Source struct {
	// BaseURL is the crawl root. Only pages below its path are followed.
	BaseURL string

	// Tag is stored as the document source. Defaults to "api".
	Tag string

	Filter *docboost.URLFilter

	Sitemaps     docboost.SitemapService
	Fetcher      docboost.Fetcher
	Extractor    docboost.Extractor
	Converter    docboost.Converter
	LinkSelector docboost.LinkSelector
	RateLimiter  docboost.DomainLimiter

	Concurrency int
	RetryDelays []time.Duration

	Progress ProgressFunc
	Logger   *slog.Logger
}

// ProgressEvent reports progress while a site is crawled.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// page is the outcome of processing a single URL.
type page struct {
	position int
	url      string
	html     string
	title    string
	markdown string
	err      error
}

// Name returns the source name.
func (s *Source) Name() string {
	return docboost.TypeAPI
}

// Documents crawls the site. Pages that fail to fetch or extract are
// reported through Progress and skipped; pages whose content duplicates an
// earlier page are dropped.
func (s *Source) Documents(ctx context.Context) ([]*docboost.Document, error) {
	base, err := url.Parse(s.BaseURL)
	if err != nil || base.Host == "" {
		return nil, docboost.Errorf(docboost.EINVALID, "invalid base URL %q", s.BaseURL)
	}

	urls, err := s.Sitemaps.DiscoverURLs(ctx, s.BaseURL, s.Filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	var pages []page
	switch {
	case len(urls) > 0:
		pages = s.crawlURLs(ctx, urls)
	case s.LinkSelector != nil:
		pages = s.followLinks(ctx, base)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.documents(base, pages), nil
}

// crawlURLs processes urls concurrently and returns the pages in input order.
func (s *Source) crawlURLs(ctx context.Context, urls []string) []page {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	s.notify(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan page, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- s.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	pages := make([]page, total)
	completed := 0
	for p := range resultCh {
		completed++
		pages[p.position] = p
		s.report(p, completed, total)
	}

	s.notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return pages
}

// followLinks crawls from base, following in-scope links by priority.
// Pages are processed sequentially to keep frontier bookkeeping simple.
func (s *Source) followLinks(ctx context.Context, base *url.URL) []page {
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(docboost.DiscoveredLink{URL: base.String(), Priority: docboost.PriorityNavigation})

	s.notify(ProgressEvent{Type: ProgressStarted})

	var pages []page
	for len(pages) < maxFollowedURLs && ctx.Err() == nil {
		link, ok := frontier.Pop()
		if !ok {
			break
		}

		p := s.processURL(ctx, len(pages), link.URL)
		pages = append(pages, p)
		s.report(p, len(pages), 0)

		if p.html == "" {
			continue
		}
		links, err := s.LinkSelector.ExtractLinks(p.html, link.URL)
		if err != nil {
			continue
		}
		for _, l := range links {
			if inScope(base, l.URL) && s.Filter.Match(l.URL) {
				frontier.Push(l)
			}
		}
	}

	s.notify(ProgressEvent{Type: ProgressFinished, Completed: len(pages), Total: len(pages)})
	return pages
}

// processURL fetches, extracts and converts a single page.
func (s *Source) processURL(ctx context.Context, position int, rawURL string) page {
	p := page{position: position, url: rawURL}

	if s.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			p.err = err
			return p
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			p.err = err
			return p
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, s.Fetcher.Fetch, s.Logger, delays)
	if err != nil {
		p.err = err
		return p
	}
	p.html = html

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		p.err = fmt.Errorf("extract: %w", err)
		return p
	}

	markdown, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		p.err = fmt.Errorf("convert: %w", err)
		return p
	}

	p.title = extracted.Title
	p.markdown = markdown
	return p
}

// documents builds documents from successfully processed pages.
func (s *Source) documents(base *url.URL, pages []page) []*docboost.Document {
	tag := s.Tag
	if tag == "" {
		tag = docboost.TypeAPI
	}

	seen := make(map[uint64]bool, len(pages))
	docs := make([]*docboost.Document, 0, len(pages))
	for _, p := range pages {
		if p.err != nil || strings.TrimSpace(p.markdown) == "" {
			continue
		}

		hash := xxhash.Sum64String(p.markdown)
		if seen[hash] {
			continue
		}
		seen[hash] = true

		docs = append(docs, &docboost.Document{
			URL:      p.url,
			Title:    pageTitle(p),
			Body:     p.markdown,
			Type:     docboost.TypeAPI,
			Category: Category(base, p.url),
			Source:   tag,
		})
	}
	return docs
}

func (s *Source) report(p page, completed, total int) {
	if p.err != nil {
		s.notify(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, URL: p.url, Error: p.err})
		return
	}
	s.notify(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: p.url})
}

func (s *Source) notify(event ProgressEvent) {
	if s.Progress != nil {
		s.Progress(event)
	}
}

// pageTitle falls back to the first Markdown heading, then the last URL
// path segment.
func pageTitle(p page) string {
	if title := strings.TrimSpace(p.title); title != "" {
		return title
	}
	if title := docboost.FirstHeading(p.markdown); title != "" {
		return title
	}
	if u, err := url.Parse(p.url); err == nil {
		if name := path.Base(strings.TrimSuffix(u.Path, "/")); name != "/" && name != "." {
			return name
		}
		return u.Host
	}
	return p.url
}

// Category returns the first path segment of rawURL below base, or "" when
// the page sits directly under base.
func Category(base *url.URL, rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	rel := strings.TrimPrefix(u.Path, strings.TrimSuffix(base.Path, "/"))
	segments := strings.Split(strings.Trim(rel, "/"), "/")
	if len(segments) < 2 {
		return ""
	}
	return segments[0]
}

// inScope reports whether rawURL is on base's host and below base's path.
func inScope(base *url.URL, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == base.Host && strings.HasPrefix(u.Path, base.Path)
}
