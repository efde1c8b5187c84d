package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/confguard/confguard/internal/adapters/outbound/gitinfo"
	"github.com/confguard/confguard/internal/adapters/outbound/loader"
	"github.com/confguard/confguard/internal/adapters/outbound/logging"
	schemaAdapter "github.com/confguard/confguard/internal/adapters/outbound/schema"
	"github.com/confguard/confguard/internal/application"
	"github.com/confguard/confguard/internal/domain"
	"github.com/confguard/confguard/internal/domain/rules"
)

// registerTools registers all ConfGuard MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. confguard_validate
	s.AddTool(
		mcplib.NewTool("confguard_validate",
			mcplib.WithDescription("Validate a JSON or YAML configuration file, optionally against a JSON-Schema, and run best-practice checks. Returns the run report as JSON."),
			mcplib.WithString("config_file",
				mcplib.Required(),
				mcplib.Description("Path to the configuration file"),
			),
			mcplib.WithString("schema_file", mcplib.Description("Path to a JSON-Schema document")),
			mcplib.WithString("format", mcplib.Description("Explicit format: json or yaml (default: inferred from the file extension)")),
			mcplib.WithBoolean("best_practice", mcplib.Description("Run best-practice checks")),
			mcplib.WithBoolean("strict", mcplib.Description("Treat best-practice warnings as failures")),
		),
		handleValidate(),
	)

	// 2. confguard_list_rules
	s.AddTool(
		mcplib.NewTool("confguard_list_rules",
			mcplib.WithDescription("Returns the registered best-practice rules in registration order"),
		),
		handleListRules(),
	)
}

// newService builds a validate service logging to stderr; stdout belongs to
// the stdio transport.
func newService() *application.ValidateService {
	return application.NewValidateService(
		loader.New(),
		schemaAdapter.NewLoader(),
		schemaAdapter.NewValidator(),
		rules.Default(),
		gitinfo.New(),
		logging.New(os.Stderr, "error"),
	)
}

func handleValidate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		configFile, err := request.RequireString("config_file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		schemaFile, _ := args["schema_file"].(string)
		bestPractice, _ := args["best_practice"].(bool)
		strict, _ := args["strict"].(bool)

		format := domain.FormatUnknown
		if raw, _ := args["format"].(string); raw != "" {
			format, err = domain.ParseFormat(raw)
			if err != nil {
				return errorResult(err.Error()), nil
			}
		}

		report, runErr := newService().Run(application.ValidateRequest{
			ConfigPath:   configFile,
			Format:       format,
			SchemaPath:   schemaFile,
			BestPractice: bestPractice,
			Strict:       strict,
		})
		if runErr != nil {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("marshaling report: %w", err)
			}
			return errorResult(string(data)), nil
		}
		return jsonResult(report)
	}
}

func handleListRules() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(ruleListing())
	}
}

type ruleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func ruleListing() []ruleInfo {
	registry := rules.Default()
	infos := make([]ruleInfo, 0, len(registry))
	for _, rule := range registry {
		infos = append(infos, ruleInfo{Name: rule.Name, Description: rule.Description})
	}
	return infos
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
