package mcp

import (
	"context"
	"encoding/json"
	"math"

	"github.com/fwojciec/docboost"
	"github.com/google/jsonschema-go/jsonschema"
)

// Tool names.
const (
	ToolSearchDocumentation = "search_documentation"
	ToolGetDatabaseSchema   = "get_database_schema"
)

// DefaultTools returns the documentation search and schema tools.
func DefaultTools(search docboost.SearchService, schema docboost.SchemaInspector) []Tool {
	return []Tool{
		SearchDocumentationTool(search),
		GetDatabaseSchemaTool(schema),
	}
}

type searchArgs struct {
	Query    string   `json:"query"`
	Limit    *float64 `json:"limit"`
	Category string   `json:"category"`
}

type searchOutput struct {
	Query        string                  `json:"query"`
	TotalResults int                     `json:"total_results"`
	Results      []docboost.SearchResult `json:"results"`
}

// SearchDocumentationTool returns the search_documentation tool.
func SearchDocumentationTool(search docboost.SearchService) Tool {
	return Tool{
		ToolDefinition: ToolDefinition{
			Name:        ToolSearchDocumentation,
			Description: "Search the documentation index with natural language queries",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"query": {
						Type:        "string",
						Description: `Search query (e.g., "how to save data", "belongsToMany")`,
					},
					"limit": {
						Type:        "integer",
						Description: "Maximum number of results (default: 10)",
						Default:     json.RawMessage("10"),
					},
					"category": {
						Type:        "string",
						Description: "Filter by category (orm, controller, validation, etc.)",
					},
				},
				Required: []string{"query"},
			},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var args searchArgs
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, docboost.Errorf(docboost.EINVALID, "invalid arguments: %v", err)
			}
			if args.Query == "" {
				return nil, docboost.Errorf(docboost.EINVALID, "Query parameter is required")
			}

			q := docboost.SearchQuery{Query: args.Query, Limit: docboost.DefaultSearchLimit}
			if args.Limit != nil {
				if *args.Limit != math.Trunc(*args.Limit) {
					return nil, docboost.Errorf(docboost.EINVALID, "limit must be an integer")
				}
				q.Limit = int(*args.Limit)
			}
			if args.Category != "" {
				q.Categories = []string{args.Category}
			}

			results, err := search.Search(ctx, q)
			if err != nil {
				return nil, err
			}

			return &searchOutput{
				Query:        args.Query,
				TotalResults: len(results),
				Results:      results,
			}, nil
		},
	}
}

type schemaArgs struct {
	Table      string `json:"table"`
	Connection string `json:"connection"`
}

// GetDatabaseSchemaTool returns the get_database_schema tool.
func GetDatabaseSchemaTool(inspector docboost.SchemaInspector) Tool {
	return Tool{
		ToolDefinition: ToolDefinition{
			Name:        ToolGetDatabaseSchema,
			Description: "Get database schema information for tables",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"table": {
						Type:        "string",
						Description: "Specific table name (omit for all tables)",
					},
					"connection": {
						Type:        "string",
						Description: `Database connection name (default: "default")`,
						Default:     json.RawMessage(`"default"`),
					},
				},
			},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var args schemaArgs
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, docboost.Errorf(docboost.EINVALID, "invalid arguments: %v", err)
			}
			if args.Connection == "" {
				args.Connection = docboost.DefaultConnection
			}

			return inspector.DescribeSchema(ctx, args.Connection, args.Table)
		},
	}
}
