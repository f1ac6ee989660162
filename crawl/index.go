package crawl

import (
	"context"

	"github.com/fwojciec/docboost"
)

// Indexer stores the documents of one or more sources.
type Indexer struct {
	Store docboost.DocumentStore
}

// Result holds the outcome of an index run.
type Result struct {
	Indexed int
	Errors  int
}

// IndexEvent reports the outcome of indexing a single document, or the
// failure of a whole source when Document is nil.
type IndexEvent struct {
	Source   string
	Document *docboost.Document
	Indexed  int
	Error    error
}

// IndexFunc is a callback for reporting index progress.
type IndexFunc func(event IndexEvent)

// Index upserts every document of every source. A failing document or
// source is counted as an error and indexing continues; only a canceled
// context stops the run early.
func (ix *Indexer) Index(ctx context.Context, sources []docboost.Source, progress IndexFunc) (*Result, error) {
	var result Result

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return &result, err
		}

		docs, err := src.Documents(ctx)
		if err != nil {
			result.Errors++
			if progress != nil {
				progress(IndexEvent{Source: src.Name(), Indexed: result.Indexed, Error: err})
			}
			continue
		}

		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return &result, err
			}

			err := ix.Store.Upsert(ctx, doc)
			if err != nil {
				result.Errors++
			} else {
				result.Indexed++
			}
			if progress != nil {
				progress(IndexEvent{Source: src.Name(), Document: doc, Indexed: result.Indexed, Error: err})
			}
		}
	}

	return &result, nil
}
