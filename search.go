package docboost

import "context"

// Search limits.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 100
)

// ErrEmptyQuery is returned when a query has no searchable terms.
var ErrEmptyQuery = Errorf(ESEARCH, "search query has no searchable terms")

// SearchQuery describes a full-text search request.
type SearchQuery struct {
	Query      string   `json:"query"`
	Limit      int      `json:"limit"`
	Types      []string `json:"types,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// Validate returns an error if the query contains invalid fields.
func (q *SearchQuery) Validate() error {
	if q.Limit < 1 {
		return Errorf(EINVALID, "limit must be a positive integer")
	}
	return nil
}

// SearchResult represents a single search hit.
type SearchResult struct {
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Type      string  `json:"type"`
	Category  string  `json:"category"`
	Snippet   string  `json:"snippet"`
	Relevance float64 `json:"relevance"`
}

// SearchService provides full-text search over indexed documents.
type SearchService interface {
	// Search returns documents matching the query, most relevant first.
	// Returns ESEARCH if the query has no searchable terms and EINVALID
	// if the query is malformed.
	Search(ctx context.Context, q SearchQuery) ([]SearchResult, error)
}
