package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confguard/confguard/internal/adapters/outbound/gitinfo"
	"github.com/confguard/confguard/internal/adapters/outbound/loader"
	"github.com/confguard/confguard/internal/adapters/outbound/logging"
	schemaAdapter "github.com/confguard/confguard/internal/adapters/outbound/schema"
	"github.com/confguard/confguard/internal/adapters/outbound/tui"
	"github.com/confguard/confguard/internal/application"
	"github.com/confguard/confguard/internal/domain"
	"github.com/confguard/confguard/internal/domain/rules"
)

func newValidateCmd() *cobra.Command {
	var (
		schemaFile   string
		format       string
		bestPractice bool
		strict       bool
		jsonOutput   bool
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "validate <config_file>",
		Short: "Validate a configuration file",
		Long:  "Validate a JSON or YAML configuration file, optionally against a JSON-Schema, and optionally run best-practice checks.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved := domain.FormatUnknown
			if format != "" {
				parsed, err := domain.ParseFormat(format)
				if err != nil {
					return err
				}
				resolved = parsed
			}

			log := logging.New(cmd.ErrOrStderr(), logLevel)
			svc := application.NewValidateService(
				loader.New(),
				schemaAdapter.NewLoader(),
				schemaAdapter.NewValidator(),
				rules.Default(),
				gitinfo.New(),
				log,
			)

			report, runErr := svc.Run(application.ValidateRequest{
				ConfigPath:   args[0],
				Format:       resolved,
				SchemaPath:   schemaFile,
				BestPractice: bestPractice,
				Strict:       strict,
			})

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunReport(report))
			}

			if runErr != nil {
				return fmt.Errorf("validation failed: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema_file", "", "Path to a JSON-Schema document to validate against")
	cmd.Flags().StringVar(&format, "format", "", "Configuration format: json or yaml (default: inferred from the file extension)")
	cmd.Flags().BoolVar(&bestPractice, "best_practice", false, "Run best-practice checks (warnings only)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat best-practice warnings as failures")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run report as JSON")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	return cmd
}
