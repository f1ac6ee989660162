package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docboost"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Store  docboost.DocumentStore
	Search docboost.SearchService
	Schema docboost.SchemaInspector

	// Book and API are the documentation sources. API is nil when no API
	// documentation URL is configured.
	Book docboost.Source
	API  docboost.Source
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"DOCBOOST_DB" help:"Index database path (default ~/.docboost/docboost.db)"`
	Config  string `name:"config" env:"DOCBOOST_CONFIG" help:"TOML config file path"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Index  IndexCmd  `cmd:"" help:"Index documentation into the search database"`
	Search SearchCmd `cmd:"" help:"Search indexed documentation"`
	Schema SchemaCmd `cmd:"" help:"Describe an application database schema"`
	MCP    MCPCmd    `cmd:"" name:"mcp" help:"Serve the MCP protocol on stdin and stdout"`
}

// Index sources.
const (
	SourceBook = "book"
	SourceAPI  = "api"
	SourceAll  = "all"
)

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Clear  bool   `help:"Remove all indexed documents first"`
	Source string `enum:"book,api,all" default:"all" help:"Documentation to index (book, api, all)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string   `arg:"" help:"Search query"`
	Limit    int      `short:"n" default:"10" help:"Maximum number of results"`
	Type     []string `short:"t" name:"type" help:"Restrict to document type (repeatable)"`
	Category []string `short:"c" name:"category" help:"Restrict to category (repeatable)"`
}

// SchemaCmd is the "schema" subcommand.
type SchemaCmd struct {
	Table      string `arg:"" optional:"" help:"Table to describe (default all tables)"`
	Connection string `default:"default" help:"Connection name from the config file"`
	Format     string `enum:"table,json" default:"table" help:"Output format (table, json)"`
}

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct{}
