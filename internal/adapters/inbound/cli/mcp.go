package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/confguard/confguard/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the ConfGuard MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start ConfGuard MCP server (stdio)",
		Long:  "Start the ConfGuard MCP server using stdio transport. This lets AI coding assistants validate configuration files and inspect the rule set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewConfGuardMCPServer()
			return server.ServeStdio(s)
		},
	}
}
