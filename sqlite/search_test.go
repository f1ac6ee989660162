package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docboost"
	"github.com/fwojciec/docboost/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSearchDB indexes a small corpus covering every document type.
func seedSearchDB(t *testing.T) *sqlite.SearchService {
	t.Helper()

	db := setupTestDB(t)
	store := sqlite.NewDocumentStore(db)
	ctx := context.Background()

	docs := []*docboost.Document{
		{
			URL: "http://x/orm/saving", Title: "Saving Data", Type: docboost.TypeBook, Category: "orm",
			Body: "To save data, first create a new entity, then call save() on the table object.",
		},
		{
			URL: "http://x/orm/entities", Title: "Entities", Type: docboost.TypeBook, Category: "orm",
			Body: "Entities represent individual rows. Entities can be saved and validated.",
		},
		{
			URL: "http://x/routing", Title: "Routing", Type: docboost.TypeBook, Category: "routing",
			Body: "Routes connect URLs to controller actions and are defined in config/routes.php.",
		},
		{
			URL: "http://x/api/table", Title: "Table class", Type: docboost.TypeAPI, Category: "orm",
			Body: "Table::save() persists an entity and returns the saved entity or false.",
		},
		{
			URL: "http://x/guide/blog", Title: "Blog tutorial", Type: docboost.TypeGuide,
			Body: "Build a blog: bake the articles table, then save your first article entity.",
		},
	}
	for _, doc := range docs {
		require.NoError(t, store.Upsert(ctx, doc))
	}

	return sqlite.NewSearchService(db)
}

func TestSearchService_Search(t *testing.T) {
	t.Parallel()

	t.Run("finds documents by stemmed prefix", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		results, err := svc.Search(context.Background(), docboost.SearchQuery{Query: "saving", Limit: 10})
		require.NoError(t, err)
		require.NotEmpty(t, results)

		urls := resultURLs(results)
		assert.Contains(t, urls, "http://x/orm/saving")
		assert.Contains(t, urls, "http://x/api/table", "porter stemming should match saved")
	})

	t.Run("results are ordered by rank", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		results, err := svc.Search(context.Background(), docboost.SearchQuery{Query: "save entity table", Limit: 10})
		require.NoError(t, err)
		require.Greater(t, len(results), 1)

		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i-1].Relevance, results[i].Relevance)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		results, err := svc.Search(context.Background(), docboost.SearchQuery{Query: "entity", Limit: 2})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("snippets highlight matches", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		results, err := svc.Search(context.Background(), docboost.SearchQuery{Query: "routes", Limit: 10})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Routing", results[0].Title)
		assert.Equal(t, "routing", results[0].Category)
		assert.Contains(t, results[0].Snippet, sqlite.HighlightStart)
		assert.Contains(t, results[0].Snippet, sqlite.HighlightEnd)
	})

	t.Run("filters by type", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		results, err := svc.Search(context.Background(), docboost.SearchQuery{
			Query: "entity",
			Limit: 10,
			Types: []string{docboost.TypeAPI, docboost.TypeGuide},
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		for _, r := range results {
			assert.Contains(t, []string{docboost.TypeAPI, docboost.TypeGuide}, r.Type)
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		results, err := svc.Search(context.Background(), docboost.SearchQuery{
			Query:      "entity",
			Limit:      10,
			Categories: []string{"orm"},
		})
		require.NoError(t, err)
		require.Len(t, results, 3)
		for _, r := range results {
			assert.Equal(t, "orm", r.Category)
		}
	})

	t.Run("empty filters do not restrict", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)
		ctx := context.Background()

		unfiltered, err := svc.Search(ctx, docboost.SearchQuery{Query: "entity", Limit: 10})
		require.NoError(t, err)
		filtered, err := svc.Search(ctx, docboost.SearchQuery{
			Query:      "entity",
			Limit:      10,
			Types:      []string{},
			Categories: []string{},
		})
		require.NoError(t, err)
		assert.Equal(t, unfiltered, filtered)
	})

	t.Run("phrase query", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		results, err := svc.Search(context.Background(), docboost.SearchQuery{Query: `"table object"`, Limit: 10})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "http://x/orm/saving", results[0].URL)
	})

	t.Run("no matches returns empty slice", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		results, err := svc.Search(context.Background(), docboost.SearchQuery{Query: "kubernetes", Limit: 10})
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("malformed phrase expressions return ESEARCH", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		for _, query := range []string{`"saving data`, `save"`, `"`, `title:save"`, `entity "`} {
			_, err := svc.Search(context.Background(), docboost.SearchQuery{Query: query, Limit: 10})
			require.Error(t, err, "query %q", query)
			assert.Equal(t, docboost.ESEARCH, docboost.ErrorCode(err), "query %q", query)
			assert.Contains(t, docboost.ErrorMessage(err), "invalid search expression", "query %q", query)
		}
	})

	t.Run("closed database returns ESTORE", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		_, err := sqlite.NewSearchService(db).Search(context.Background(), docboost.SearchQuery{Query: "entity", Limit: 10})
		require.Error(t, err)
		assert.Equal(t, docboost.ESTORE, docboost.ErrorCode(err))
	})

	t.Run("equal ranks are ordered by URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewDocumentStore(db)
		ctx := context.Background()

		for _, url := range []string{"http://x/orm/c", "http://x/orm/b", "http://x/orm/a"} {
			require.NoError(t, store.Upsert(ctx, &docboost.Document{
				URL: url, Title: "Behaviors", Type: docboost.TypeBook, Category: "orm",
				Body: "Behaviors add reusable logic to table classes.",
			}))
		}

		results, err := sqlite.NewSearchService(db).Search(ctx, docboost.SearchQuery{Query: "behaviors", Limit: 10})
		require.NoError(t, err)

		require.Len(t, results, 3)
		assert.InDelta(t, results[0].Relevance, results[2].Relevance, 1e-9)
		assert.Equal(t, []string{"http://x/orm/a", "http://x/orm/b", "http://x/orm/c"}, resultURLs(results))
	})

	t.Run("query without searchable terms returns ESEARCH", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		_, err := svc.Search(context.Background(), docboost.SearchQuery{Query: "a an", Limit: 10})
		require.ErrorIs(t, err, docboost.ErrEmptyQuery)
	})

	t.Run("non-positive limit returns EINVALID", func(t *testing.T) {
		t.Parallel()

		svc := seedSearchDB(t)

		_, err := svc.Search(context.Background(), docboost.SearchQuery{Query: "entity", Limit: 0})
		require.Error(t, err)
		assert.Equal(t, docboost.EINVALID, docboost.ErrorCode(err))
	})
}

func resultURLs(results []docboost.SearchResult) []string {
	urls := make([]string, len(results))
	for i, r := range results {
		urls[i] = r.URL
	}
	return urls
}
