package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/docboost"
	"github.com/fwojciec/docboost/mcp"
	"github.com/fwojciec/docboost/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, search *mock.SearchService, schema *mock.SchemaInspector) *mcp.Registry {
	t.Helper()
	r, err := mcp.NewRegistry(mcp.DefaultTools(search, schema)...)
	require.NoError(t, err)
	return r
}

func TestDefaultTools_Definitions(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t, &mock.SearchService{}, &mock.SchemaInspector{})

	defs := r.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, mcp.ToolSearchDocumentation, defs[0].Name)
	assert.Equal(t, []string{"query"}, defs[0].InputSchema.Required)
	assert.Contains(t, defs[0].InputSchema.Properties, "limit")
	assert.Contains(t, defs[0].InputSchema.Properties, "category")
	assert.Equal(t, mcp.ToolGetDatabaseSchema, defs[1].Name)
	assert.Empty(t, defs[1].InputSchema.Required)
}

func TestSearchDocumentationTool(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		var got docboost.SearchQuery
		search := &mock.SearchService{
			SearchFn: func(_ context.Context, q docboost.SearchQuery) ([]docboost.SearchResult, error) {
				got = q
				return []docboost.SearchResult{{Title: "Saving Data", URL: "http://x/a"}}, nil
			},
		}
		r := newTestRegistry(t, search, &mock.SchemaInspector{})

		result, err := r.Call(context.Background(), mcp.ToolSearchDocumentation, json.RawMessage(`{"query":"save"}`))
		require.NoError(t, err)

		assert.Equal(t, docboost.SearchQuery{Query: "save", Limit: docboost.DefaultSearchLimit}, got)

		out, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"query": "save",
			"total_results": 1,
			"results": [{"title":"Saving Data","url":"http://x/a","type":"","category":"","snippet":"","relevance":0}]
		}`, string(out))
	})

	t.Run("passes limit and category filter", func(t *testing.T) {
		t.Parallel()

		var got docboost.SearchQuery
		search := &mock.SearchService{
			SearchFn: func(_ context.Context, q docboost.SearchQuery) ([]docboost.SearchResult, error) {
				got = q
				return []docboost.SearchResult{}, nil
			},
		}
		r := newTestRegistry(t, search, &mock.SchemaInspector{})

		_, err := r.Call(context.Background(), mcp.ToolSearchDocumentation,
			json.RawMessage(`{"query":"save","limit":3,"category":"orm"}`))
		require.NoError(t, err)

		assert.Equal(t, 3, got.Limit)
		assert.Equal(t, []string{"orm"}, got.Categories)
		assert.Empty(t, got.Types)
	})

	t.Run("accepts an integral limit written as a float", func(t *testing.T) {
		t.Parallel()

		var got docboost.SearchQuery
		search := &mock.SearchService{
			SearchFn: func(_ context.Context, q docboost.SearchQuery) ([]docboost.SearchResult, error) {
				got = q
				return []docboost.SearchResult{}, nil
			},
		}
		r := newTestRegistry(t, search, &mock.SchemaInspector{})

		_, err := r.Call(context.Background(), mcp.ToolSearchDocumentation, json.RawMessage(`{"query":"save","limit":5.0}`))
		require.NoError(t, err)
		assert.Equal(t, 5, got.Limit)
	})

	t.Run("fractional limit returns EINVALID", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry(t, &mock.SearchService{}, &mock.SchemaInspector{})

		_, err := r.Call(context.Background(), mcp.ToolSearchDocumentation, json.RawMessage(`{"query":"save","limit":2.5}`))
		require.Error(t, err)
		assert.Equal(t, docboost.EINVALID, docboost.ErrorCode(err))
	})

	t.Run("empty query returns EINVALID", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry(t, &mock.SearchService{}, &mock.SchemaInspector{})

		_, err := r.Call(context.Background(), mcp.ToolSearchDocumentation, json.RawMessage(`{"query":""}`))
		require.Error(t, err)
		assert.Equal(t, docboost.EINVALID, docboost.ErrorCode(err))
		assert.Equal(t, "Query parameter is required", docboost.ErrorMessage(err))
	})

	t.Run("search errors are returned", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(context.Context, docboost.SearchQuery) ([]docboost.SearchResult, error) {
				return nil, docboost.ErrEmptyQuery
			},
		}
		r := newTestRegistry(t, search, &mock.SchemaInspector{})

		_, err := r.Call(context.Background(), mcp.ToolSearchDocumentation, json.RawMessage(`{"query":"a b"}`))
		require.ErrorIs(t, err, docboost.ErrEmptyQuery)
	})
}

func TestGetDatabaseSchemaTool(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the default connection", func(t *testing.T) {
		t.Parallel()

		var gotConn, gotTable string
		schema := &mock.SchemaInspector{
			DescribeSchemaFn: func(_ context.Context, connection, table string) (*docboost.DatabaseSchema, error) {
				gotConn, gotTable = connection, table
				return &docboost.DatabaseSchema{Connection: connection, Tables: map[string]*docboost.TableSchema{}}, nil
			},
		}
		r := newTestRegistry(t, &mock.SearchService{}, schema)

		result, err := r.Call(context.Background(), mcp.ToolGetDatabaseSchema, nil)
		require.NoError(t, err)

		assert.Equal(t, docboost.DefaultConnection, gotConn)
		assert.Empty(t, gotTable)

		out, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `{"connection":"default","tables":{}}`, string(out))
	})

	t.Run("passes table and connection", func(t *testing.T) {
		t.Parallel()

		var gotConn, gotTable string
		schema := &mock.SchemaInspector{
			DescribeSchemaFn: func(_ context.Context, connection, table string) (*docboost.DatabaseSchema, error) {
				gotConn, gotTable = connection, table
				return &docboost.DatabaseSchema{Connection: connection}, nil
			},
		}
		r := newTestRegistry(t, &mock.SearchService{}, schema)

		_, err := r.Call(context.Background(), mcp.ToolGetDatabaseSchema,
			json.RawMessage(`{"table":"users","connection":"app"}`))
		require.NoError(t, err)

		assert.Equal(t, "app", gotConn)
		assert.Equal(t, "users", gotTable)
	})

	t.Run("inspector errors are returned", func(t *testing.T) {
		t.Parallel()

		schema := &mock.SchemaInspector{
			DescribeSchemaFn: func(context.Context, string, string) (*docboost.DatabaseSchema, error) {
				return nil, errors.New("connection refused")
			},
		}
		r := newTestRegistry(t, &mock.SearchService{}, schema)

		_, err := r.Call(context.Background(), mcp.ToolGetDatabaseSchema, json.RawMessage(`{}`))
		require.EqualError(t, err, "connection refused")
	})
}
