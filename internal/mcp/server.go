// Package mcp exposes the file operations as Model Context Protocol tools
// over stdio. Protocol traffic owns stdout; all logging goes to stderr.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/peteretelej/largefile/internal/config"
	"github.com/peteretelej/largefile/internal/ops"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"get_overview": {
		def:     overviewToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleOverview },
	},
	"search_content": {
		def:     searchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearch },
	},
	"read_content": {
		def:     readToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRead },
	},
	"edit_content": {
		def:     editToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEdit },
	},
}

// AllToolNames returns a list of all tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// NewServer creates an MCP server with the largefile tools registered.
func NewServer(deps *ops.Deps, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"largefile",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(deps)
	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}
	return s
}

// Run starts the MCP server on stdio and blocks until the client disconnects.
func Run(cfg *config.Config, log zerolog.Logger, version string) error {
	deps := ops.NewDeps(cfg, log)
	log.Info().Str("version", version).Msg("starting MCP server on stdio")
	return server.ServeStdio(NewServer(deps, version))
}
