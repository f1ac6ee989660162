package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fwojciec/docboost"
	"github.com/ncruces/go-sqlite3"
)

// Snippet markup.
const (
	HighlightStart  = "<mark>"
	HighlightEnd    = "</mark>"
	SnippetEllipsis = "..."

	// snippetTokens is the maximum snippet length in tokens (FTS5 allows up to 64).
	snippetTokens = 60
)

// Compile-time interface verification.
var _ docboost.SearchService = (*SearchService)(nil)

// SearchService implements docboost.SearchService using SQLite FTS5.
//
// Results are ordered by the FTS5 bm25 rank (lower is more relevant); equal
// ranks are ordered by URL ascending.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// Search compiles the query, applies type and category filters and returns
// ranked results with highlighted snippets.
func (s *SearchService) Search(ctx context.Context, q docboost.SearchQuery) ([]docboost.SearchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	expr, err := CompileQuery(q.Query)
	if err != nil {
		return nil, err
	}

	// Phrase queries reach the engine unchanged, so engine errors on them
	// are blamed on the expression.
	userExpr := strings.Contains(q.Query, `"`)

	limit := min(q.Limit, docboost.MaxSearchLimit)

	var query strings.Builder
	args := []any{HighlightStart, HighlightEnd, SnippetEllipsis, snippetTokens, expr}

	query.WriteString(`
		SELECT title, url, type, category,
			snippet(documentation_fts, 1, ?, ?, ?, ?),
			rank
		FROM documentation_fts
		WHERE documentation_fts MATCH ?`)

	appendIn(&query, &args, "type", q.Types)
	appendIn(&query, &args, "category", q.Categories)

	query.WriteString(" ORDER BY rank, url LIMIT ?")
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, searchError(err, userExpr)
	}
	defer rows.Close()

	results := []docboost.SearchResult{}
	for rows.Next() {
		var r docboost.SearchResult
		var category sql.NullString
		if err := rows.Scan(&r.Title, &r.URL, &r.Type, &category, &r.Snippet, &r.Relevance); err != nil {
			return nil, searchError(err, userExpr)
		}
		r.Category = category.String
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, searchError(err, userExpr)
	}

	return results, nil
}

// appendIn appends "AND column IN (?, ...)" for a non-empty value set.
func appendIn(query *strings.Builder, args *[]any, column string, values []string) {
	if len(values) == 0 {
		return
	}
	query.WriteString(" AND " + column + " IN (")
	for i, v := range values {
		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString("?")
		*args = append(*args, v)
	}
	query.WriteString(")")
}

// searchError classifies errors raised while running a match query.
// Malformed match expressions, such as an unbalanced phrase quote, are
// reported as ESEARCH; everything else is a storage failure. For a
// user-supplied expression any generic engine error counts as malformed.
func searchError(err error, userExpr bool) error {
	msg := err.Error()
	if invalidExpression(err, userExpr) {
		return docboost.Errorf(docboost.ESEARCH, "invalid search expression: %s", msg)
	}
	return docboost.Errorf(docboost.ESTORE, "search failed: %s", msg)
}

func invalidExpression(err error, userExpr bool) bool {
	msg := err.Error()
	for _, marker := range []string{"fts5", "syntax error", "unterminated string"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	var serr *sqlite3.Error
	return userExpr && errors.As(err, &serr) && serr.Code() == sqlite3.ERROR
}
