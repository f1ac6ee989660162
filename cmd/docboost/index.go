package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/docboost"
	"github.com/fwojciec/docboost/crawl"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	sources, err := c.sources(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docboost.ErrorMessage(err))
		return err
	}

	if c.Clear {
		if err := deps.Store.Clear(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docboost.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "Cleared existing documents.")
	}

	ix := &crawl.Indexer{Store: deps.Store}
	result, err := ix.Index(deps.Ctx, sources, indexProgress(deps.Stderr))
	if result != nil {
		fmt.Fprintf(deps.Stdout, "Indexed: %d, Errors: %d\n", result.Indexed, result.Errors)
	}
	if err != nil {
		return err
	}

	stats, err := deps.Store.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docboost.ErrorMessage(err))
		return err
	}
	printStats(deps.Stdout, stats)

	return nil
}

func (c *IndexCmd) sources(deps *Dependencies) ([]docboost.Source, error) {
	switch c.Source {
	case SourceBook:
		return []docboost.Source{deps.Book}, nil
	case SourceAPI:
		if deps.API == nil {
			return nil, docboost.Errorf(docboost.EINVALID, "API documentation URL not configured (set [api] url in the config file)")
		}
		return []docboost.Source{deps.API}, nil
	default:
		if deps.API == nil {
			fmt.Fprintln(deps.Stderr, "Skipping API documentation: no [api] url configured.")
			return []docboost.Source{deps.Book}, nil
		}
		return []docboost.Source{deps.Book, deps.API}, nil
	}
}

// indexProgress reports documents and sources that failed to index.
func indexProgress(w io.Writer) crawl.IndexFunc {
	return func(e crawl.IndexEvent) {
		if e.Error == nil {
			return
		}
		if e.Document == nil {
			fmt.Fprintf(w, "error: source %s: %v\n", e.Source, e.Error)
			return
		}
		fmt.Fprintf(w, "error: %s: %s\n", e.Document.URL, docboost.ErrorMessage(e.Error))
	}
}

// crawlProgress reports pages the API crawler could not process.
func crawlProgress(w io.Writer) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		if e.Type == crawl.ProgressFailed {
			fmt.Fprintf(w, "skipped %s: %v\n", e.URL, e.Error)
		}
	}
}

func printStats(w io.Writer, stats *docboost.Stats) {
	fmt.Fprintf(w, "Total documents: %d\n", stats.Total)
	for _, tc := range stats.ByType {
		fmt.Fprintf(w, "  %s: %d\n", tc.Type, tc.Count)
	}
}
