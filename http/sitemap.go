package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docboost"
)

// MaxSitemaps bounds how many sitemap documents a single discovery reads,
// counting nested indexes.
const MaxSitemaps = 100

var _ docboost.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from robots.txt and sitemap XML.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService returns a SitemapService using client, or
// http.DefaultClient when client is nil.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs returns the unique page URLs listed in the sitemaps of
// baseURL's host, in document order. When baseURL has a path, only URLs
// below that path are kept. The result is never nil.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *docboost.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	prefix := pathPrefix(base.Path)

	root := &url.URL{Scheme: base.Scheme, Host: base.Host}
	sitemaps, err := s.locateSitemaps(ctx, root)
	if err != nil {
		return nil, err
	}

	w := &sitemapWalker{svc: s, seen: make(map[string]bool)}
	for _, sm := range sitemaps {
		if err := w.walk(ctx, sm); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(w.urls))
	seen := make(map[string]bool, len(w.urls))
	for _, u := range w.urls {
		if seen[u] || !underPrefix(u, prefix) || !filter.Match(u) {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls, nil
}

// pathPrefix normalizes a base path for boundary-aware matching so that
// /docs matches /docs/intro but not /documentation.
func pathPrefix(p string) string {
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func underPrefix(rawURL, prefix string) bool {
	if prefix == "" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasPrefix(u.Path, prefix)
}

// locateSitemaps reads Sitemap directives from robots.txt and falls back to
// /sitemap.xml when there are none. A site without sitemaps yields nil.
func (s *SitemapService) locateSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if found, err := s.robotsSitemaps(ctx, robots); err == nil && len(found) > 0 {
		return found, nil
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	ok, err := s.exists(ctx, fallback)
	switch {
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case err != nil, !ok:
		return nil, nil
	}
	return []string{fallback}, nil
}

func (s *SitemapService) robotsSitemaps(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	const directive = "sitemap:"
	var found []string
	sc := bufio.NewScanner(body)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) <= len(directive) || !strings.EqualFold(line[:len(directive)], directive) {
			continue
		}
		if loc := strings.TrimSpace(line[len(directive):]); loc != "" {
			found = append(found, loc)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return found, nil
}

// sitemapWalker collects page URLs from a tree of sitemaps, reading each
// sitemap once.
type sitemapWalker struct {
	svc  *SitemapService
	seen map[string]bool
	urls []string
}

func (w *sitemapWalker) walk(ctx context.Context, sitemapURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.seen[sitemapURL] || len(w.seen) >= MaxSitemaps {
		return nil
	}
	w.seen[sitemapURL] = true

	body, err := w.svc.get(ctx, sitemapURL)
	if err != nil {
		return err
	}
	doc := etree.NewDocument()
	_, err = doc.ReadFrom(body)
	body.Close()
	if err != nil {
		return fmt.Errorf("parsing sitemap %s: %w", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return fmt.Errorf("empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		for _, child := range locs(root, "sitemap") {
			if err := w.walk(ctx, child); err != nil {
				return err
			}
		}
		return nil
	}
	w.urls = append(w.urls, locs(root, "url")...)
	return nil
}

// locs returns the non-empty <loc> values of the named children of el.
func locs(el *etree.Element, child string) []string {
	var out []string
	for _, c := range el.SelectElements(child) {
		loc := c.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	resp, err := s.do(ctx, http.MethodGet, target)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

func (s *SitemapService) exists(ctx context.Context, target string) (bool, error) {
	resp, err := s.do(ctx, http.MethodHead, target)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}

func (s *SitemapService) do(ctx context.Context, method, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	return s.client.Do(req)
}
