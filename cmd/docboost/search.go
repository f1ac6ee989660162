package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docboost"
	"github.com/fwojciec/docboost/sqlite"
)

var highlightStripper = strings.NewReplacer(sqlite.HighlightStart, "", sqlite.HighlightEnd, "")

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Search.Search(deps.Ctx, docboost.SearchQuery{
		Query:      c.Query,
		Limit:      c.Limit,
		Types:      c.Type,
		Categories: c.Category,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docboost.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	for i, r := range results {
		label := r.Type
		if r.Category != "" {
			label += "/" + r.Category
		}
		fmt.Fprintf(deps.Stdout, "%d. %s [%s]\n", i+1, r.Title, label)
		fmt.Fprintf(deps.Stdout, "   %s\n", r.URL)
		if snippet := strings.Join(strings.Fields(highlightStripper.Replace(r.Snippet)), " "); snippet != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", snippet)
		}
	}

	return nil
}
