package docboost

import (
	"context"
	"time"
)

// Document types.
const (
	TypeBook    = "book"
	TypeAPI     = "api"
	TypeGuide   = "guide"
	TypeExample = "example"
)

// Document represents an indexed documentation page.
type Document struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Type      string    `json:"type"`
	Category  string    `json:"category,omitempty"`
	Source    string    `json:"source,omitempty"`
	IndexedAt time.Time `json:"indexedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.Type == "" {
		return Errorf(EINVALID, "document type required")
	}
	return nil
}

// DocumentStore represents durable storage of indexed documents.
type DocumentStore interface {
	// Upsert inserts the document or replaces the document with the same URL.
	// The metadata and full-text records are written atomically.
	// Returns ESTORE if the write fails.
	Upsert(ctx context.Context, doc *Document) error

	// Clear removes all indexed documents.
	Clear(ctx context.Context) error

	// Stats returns aggregate document counts.
	Stats(ctx context.Context) (*Stats, error)
}

// Stats holds aggregate counts of indexed documents.
type Stats struct {
	Total  int         `json:"total"`
	ByType []TypeCount `json:"by_type"`
}

// TypeCount is the number of documents of a single type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
