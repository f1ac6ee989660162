package main

import (
	"fmt"

	"github.com/fwojciec/docboost/mcp"
)

// Run executes the mcp command. Protocol messages use stdin and stdout;
// diagnostics go to the logger on stderr.
func (c *MCPCmd) Run(deps *Dependencies) error {
	registry, err := mcp.NewRegistry(mcp.DefaultTools(deps.Search, deps.Schema)...)
	if err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}

	srv := mcp.NewServer(registry, deps.Logger)
	deps.Logger.Info("mcp server started", "name", srv.Name, "version", srv.Version)

	if err := srv.Serve(deps.Ctx, deps.Stdin, deps.Stdout); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
