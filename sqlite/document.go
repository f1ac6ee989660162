package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/docboost"
)

// Compile-time interface verification.
var _ docboost.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements docboost.DocumentStore using SQLite.
type DocumentStore struct {
	db  *DB
	now func() time.Time
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db, now: time.Now}
}

// Upsert inserts the document or replaces the document with the same URL.
// The metadata row keeps its id across replacements and the full-text row
// is keyed by that id, so both records are replaced in one transaction.
func (s *DocumentStore) Upsert(ctx context.Context, doc *docboost.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	indexedAt := s.now().UTC()

	id, err := s.upsert(ctx, doc, indexedAt)
	if err != nil {
		return docboost.Errorf(docboost.ESTORE, "failed to add document: %v", err)
	}

	doc.ID = id
	doc.IndexedAt = indexedAt
	return nil
}

func (s *DocumentStore) upsert(ctx context.Context, doc *docboost.Document, indexedAt time.Time) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO documentation_meta (url, title, type, category, source, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			type = excluded.type,
			category = excluded.category,
			source = excluded.source,
			indexed_at = excluded.indexed_at
		RETURNING id
	`, doc.URL, doc.Title, doc.Type, nullString(doc.Category), nullString(doc.Source),
		indexedAt.Format(time.RFC3339)).Scan(&id)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO documentation_fts (rowid, title, content, url, type, category)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, doc.Title, doc.Body, doc.URL, doc.Type, nullString(doc.Category))
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Clear removes all documents from both the metadata and full-text tables.
func (s *DocumentStore) Clear(ctx context.Context) (err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return docboost.Errorf(docboost.ESTORE, "failed to clear index: %v", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"documentation_fts", "documentation_meta"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return docboost.Errorf(docboost.ESTORE, "failed to clear index: %v", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return docboost.Errorf(docboost.ESTORE, "failed to clear index: %v", err)
	}
	return nil
}

// Stats returns the total document count and counts per type ordered by type.
func (s *DocumentStore) Stats(ctx context.Context) (*docboost.Stats, error) {
	stats := &docboost.Stats{ByType: []docboost.TypeCount{}}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documentation_meta").Scan(&stats.Total); err != nil {
		return nil, docboost.Errorf(docboost.ESTORE, "failed to count documents: %v", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT type, COUNT(*)
		FROM documentation_meta
		GROUP BY type
		ORDER BY type
	`)
	if err != nil {
		return nil, docboost.Errorf(docboost.ESTORE, "failed to count documents by type: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tc docboost.TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, docboost.Errorf(docboost.ESTORE, "failed to count documents by type: %v", err)
		}
		stats.ByType = append(stats.ByType, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, docboost.Errorf(docboost.ESTORE, "failed to count documents by type: %v", err)
	}

	return stats, nil
}

// nullString stores empty optional fields as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
