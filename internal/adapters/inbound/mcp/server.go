package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewConfGuardMCPServer creates a new MCP server with the ConfGuard tools
// and resources registered. Paths passed to the tools are resolved against
// the server process's working directory.
func NewConfGuardMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"confguard",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s)
	registerResources(s)

	return s
}
