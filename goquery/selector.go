// Package goquery implements docboost.LinkSelector with goquery CSS
// selectors. It discovers crawl links on API documentation sites that publish
// no sitemap.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docboost"
)

var _ docboost.LinkSelector = (*LinkSelector)(nil)

// Rule assigns a priority and source label to the anchors matched by a CSS
// selector.
type Rule struct {
	Selector string
	Priority docboost.LinkPriority
	Source   string
}

// DefaultRules cover the layouts of generated API references: a namespace
// or class tree in a sidebar, a top navigation bar, the class body and the
// footer.
var DefaultRules = []Rule{
	{
		Selector: ".toc a[href], .table-of-contents a[href], .sidebar a[href], #sidebar a[href], .namespace-list a[href], aside a[href]",
		Priority: docboost.PriorityTOC,
		Source:   "toc",
	},
	{
		Selector: `nav a[href], [role="navigation"] a[href], .nav a[href], .menu a[href], .navbar a[href]`,
		Priority: docboost.PriorityNavigation,
		Source:   "nav",
	},
	{
		Selector: "main a[href], article a[href], .content a[href], .doc-content a[href]",
		Priority: docboost.PriorityContent,
		Source:   "content",
	},
	{
		Selector: "footer a[href], .footer a[href]",
		Priority: docboost.PriorityFooter,
		Source:   "footer",
	},
}

// LinkSelector extracts same-host links from HTML by rule. A URL matched by
// several rules keeps the highest priority; links keep the order in which
// their URL was first found.
type LinkSelector struct {
	Rules []Rule

	// Fallback also collects any other anchor below the directory of the base
	// URL with docboost.PriorityFallback, for pages without semantic markup.
	Fallback bool
}

// NewLinkSelector returns a LinkSelector with DefaultRules and fallback
// enabled.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{Rules: DefaultRules, Fallback: true}
}

// ExtractLinks returns the links in html resolved against baseURL. Links to
// other hosts, non-HTTP schemes and the page itself are skipped.
func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]docboost.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docboost.Errorf(docboost.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docboost.Errorf(docboost.EINVALID, "failed to parse HTML: %v", err)
	}

	c := &collector{base: base, seen: make(map[string]int)}
	for _, r := range s.Rules {
		doc.Find(r.Selector).Each(func(_ int, sel *goquery.Selection) {
			c.add(sel, r.Priority, r.Source, "")
		})
	}

	if s.Fallback {
		dir := base.Path[:strings.LastIndex(base.Path, "/")+1]
		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			c.add(sel, docboost.PriorityFallback, "fallback", dir)
		})
	}

	return c.links, nil
}

type collector struct {
	base  *url.URL
	seen  map[string]int
	links []docboost.DiscoveredLink
}

// add records the anchor in sel. A non-empty pathPrefix additionally
// requires the resolved path to start with it.
func (c *collector) add(sel *goquery.Selection, priority docboost.LinkPriority, source, pathPrefix string) {
	href, ok := sel.Attr("href")
	if !ok || href == "" || isNonHTTPLink(href) {
		return
	}

	resolved := resolveURL(c.base, href)
	if resolved == nil || resolved.Host != c.base.Host {
		return
	}
	if pathPrefix != "" && !strings.HasPrefix(resolved.Path, pathPrefix) {
		return
	}

	link := docboost.DiscoveredLink{
		URL:      resolved.String(),
		Priority: priority,
		Text:     strings.Join(strings.Fields(sel.Text()), " "),
		Source:   source,
	}

	if idx, ok := c.seen[link.URL]; ok {
		if priority > c.links[idx].Priority {
			c.links[idx] = link
		}
		return
	}
	c.seen[link.URL] = len(c.links)
	c.links = append(c.links, link)
}

// resolveURL resolves href against base without its fragment. It returns nil
// when href cannot be parsed or points back at base.
func resolveURL(base *url.URL, href string) *url.URL {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	self := *base
	self.Fragment = ""
	if resolved.String() == self.String() {
		return nil
	}
	return resolved
}

func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	for _, scheme := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(href, scheme) {
			return true
		}
	}
	return false
}
