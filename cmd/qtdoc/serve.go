package main

import (
	"fmt"

	"github.com/fwojciec/qtdoc/mcp"
)

// ServeCmd serves the documentation tools over MCP stdio.
type ServeCmd struct{}

// Run executes the serve command. It blocks until the client disconnects.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := mcp.NewServer(deps.Docs, deps.Search, deps.Logger)

	deps.Logger.Info("serving MCP on stdio",
		"doc_base", deps.Config.DocBase,
		"index", deps.Config.IndexPath,
	)

	if err := srv.Run(deps.Ctx); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
