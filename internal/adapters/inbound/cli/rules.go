package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confguard/confguard/internal/adapters/outbound/tui"
	"github.com/confguard/confguard/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the registered best-practice rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := rules.Default()

			if jsonOutput {
				type ruleInfo struct {
					Name        string `json:"name"`
					Description string `json:"description"`
				}
				infos := make([]ruleInfo, 0, len(registry))
				for _, rule := range registry {
					infos = append(infos, ruleInfo{Name: rule.Name, Description: rule.Description})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(registry))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
