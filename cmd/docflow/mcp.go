package main

import (
	"github.com/spf13/cobra"

	"github.com/lvillar/docflow/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing docflow tools over stdio",
	Long: `Runs a Model Context Protocol server on stdin/stdout.

Available tools:
  - render_document:   render a document description to PDF
  - validate_document: check a description against the schema
  - document_outline:  extract the numbered heading outline
  - pdf_info:          inspect a rendered PDF

Available resources:
  - docflow://schema:  the document JSON Schema
  - docflow://example: a complete example document`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer()
		server.SetLogger(logger)

		mcp.RegisterDefaultTools(server)
		mcp.RegisterDefaultResources(server)

		return server.Run()
	},
}
