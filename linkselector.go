package docboost

// LinkPriority orders discovered links for crawling (higher first).
type LinkPriority int

// Link priority levels.
const (
	PriorityFallback   LinkPriority = 10
	PriorityFooter     LinkPriority = 20
	PriorityContent    LinkPriority = 50
	PriorityNavigation LinkPriority = 100
	PriorityTOC        LinkPriority = 110
)

// DiscoveredLink is a URL found on a page together with its priority.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
	Source   string // "toc", "nav", "content", "footer", "fallback"
}

// LinkSelector extracts prioritized same-host links from HTML.
type LinkSelector interface {
	// ExtractLinks parses html and returns the links it contains.
	// Relative links are resolved against baseURL.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)
}
