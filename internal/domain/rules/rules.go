// Package rules implements the best-practice rule engine: an ordered registry
// of independent predicate checks over a configuration document. Rules are
// advisory; the orchestrator decides how findings surface.
package rules

import "github.com/confguard/confguard/internal/domain"

// CheckFunc inspects a document and returns zero or more warnings. Checks
// are pure: the same document always yields the same warnings.
type CheckFunc func(doc domain.Value) []domain.Warning

// Rule is a single named best-practice check.
type Rule struct {
	Name        string
	Description string
	Check       CheckFunc
}

// Registry is an ordered rule set. Warning order in a report follows
// registration order.
type Registry []Rule

// Default returns the built-in rule set. New rules are added here without
// touching the orchestrator.
func Default() Registry {
	return Registry{
		{
			Name:        "default-api-key",
			Description: "api_key left at the YOUR_API_KEY placeholder",
			Check:       checkDefaultAPIKey,
		},
		{
			Name:        "placeholder-secret",
			Description: "secret-bearing keys holding placeholder or empty values",
			Check:       checkPlaceholderSecrets,
		},
		{
			Name:        "plaintext-endpoint",
			Description: "endpoint URLs using http:// instead of https://",
			Check:       checkPlaintextEndpoints,
		},
		{
			Name:        "tls-verify-disabled",
			Description: "TLS certificate verification switched off",
			Check:       checkTLSVerifyDisabled,
		},
		{
			Name:        "debug-enabled",
			Description: "debug mode enabled at the top level",
			Check:       checkDebugEnabled,
		},
		{
			Name:        "key-naming",
			Description: "top-level keys drifting from snake_case",
			Check:       checkKeyNaming,
		},
	}
}

// Run applies every rule in registration order and accumulates the warnings.
func (r Registry) Run(doc domain.Value) domain.Report {
	var report domain.Report
	for _, rule := range r {
		report = append(report, rule.Check(doc)...)
	}
	return report
}
