package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confguard/confguard/internal/adapters/outbound/tui"
	"github.com/confguard/confguard/internal/domain"
	"github.com/confguard/confguard/internal/domain/rules"
)

func TestRenderRunReport_Pass(t *testing.T) {
	out := tui.RenderRunReport(&domain.RunReport{
		ConfigPath: "config.json",
		Format:     domain.FormatJSON,
		Schema:     &domain.Outcome{Valid: true},
		RulesRun:   true,
		Status:     domain.StatusPass,
	})

	assert.Contains(t, out, "config.json")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "valid")
	assert.Contains(t, out, "clean")
}

func TestRenderRunReport_SkippedStages(t *testing.T) {
	out := tui.RenderRunReport(&domain.RunReport{
		ConfigPath: "config.yaml",
		Format:     domain.FormatYAML,
		Status:     domain.StatusPass,
	})

	assert.Contains(t, out, "skipped")
}

func TestRenderRunReport_Warnings(t *testing.T) {
	out := tui.RenderRunReport(&domain.RunReport{
		ConfigPath: "config.json",
		Format:     domain.FormatJSON,
		RulesRun:   true,
		Warnings: []domain.Warning{
			{Rule: "default-api-key", Message: "api_key is set to the default API key placeholder, update it to a secure value"},
		},
		Status: domain.StatusWarn,
	})

	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "default-api-key")
	assert.Contains(t, out, "1 warning(s)")
}

func TestRenderRunReport_SchemaFailure(t *testing.T) {
	out := tui.RenderRunReport(&domain.RunReport{
		ConfigPath: "config.json",
		Format:     domain.FormatJSON,
		Schema:     &domain.Outcome{Valid: false, Message: "version is required"},
		Status:     domain.StatusFail,
	})

	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "version is required")
}

func TestRenderRunReport_CommitShortened(t *testing.T) {
	out := tui.RenderRunReport(&domain.RunReport{
		ConfigPath: "config.json",
		Format:     domain.FormatJSON,
		Commit:     "0123456789abcdef0123456789abcdef01234567",
		Status:     domain.StatusPass,
	})

	assert.Contains(t, out, "0123456789ab")
	assert.NotContains(t, out, "0123456789abcdef0123456789abcdef01234567")
}

func TestRenderRules(t *testing.T) {
	out := tui.RenderRules(rules.Default())

	for _, rule := range rules.Default() {
		assert.Contains(t, out, rule.Name)
	}
}
