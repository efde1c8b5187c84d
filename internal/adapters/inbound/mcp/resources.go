package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all ConfGuard MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// confguard://rules - registered best-practice rules
	s.AddResource(
		mcplib.NewResource(
			"confguard://rules",
			"Best-Practice Rules",
			mcplib.WithResourceDescription("The registered best-practice rules in registration order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(),
	)
}

func handleRulesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(ruleListing(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "confguard://rules",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
