package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintextEndpoint_Flagged(t *testing.T) {
	messages := warningsFor(t, map[string]any{
		"api": map[string]any{"endpoint": "http://api.example.com/v1"},
	}, "plaintext-endpoint")

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "api.endpoint")
	assert.Contains(t, messages[0], "http://api.example.com/v1")
}

func TestPlaintextEndpoint_LoopbackExempt(t *testing.T) {
	messages := warningsFor(t, map[string]any{
		"endpoint": "http://localhost:8080",
		"metrics":  "http://127.0.0.1:9090/metrics",
	}, "plaintext-endpoint")

	assert.Empty(t, messages)
}

func TestPlaintextEndpoint_HTTPSPasses(t *testing.T) {
	messages := warningsFor(t, map[string]any{
		"endpoint": "https://api.example.com",
	}, "plaintext-endpoint")

	assert.Empty(t, messages)
}

func TestTLSVerifyDisabled_InsecureSkipVerify(t *testing.T) {
	messages := warningsFor(t, map[string]any{
		"upstream": map[string]any{"insecure_skip_verify": true},
	}, "tls-verify-disabled")

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "upstream.insecure_skip_verify")
}

func TestTLSVerifyDisabled_VerifyFalseUnderTLS(t *testing.T) {
	messages := warningsFor(t, map[string]any{
		"tls": map[string]any{"verify": false},
	}, "tls-verify-disabled")

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "tls.verify")
}

func TestTLSVerifyDisabled_VerifyFalseOutsideTLSIgnored(t *testing.T) {
	// verify is too generic a key to flag outside a tls/ssl block.
	messages := warningsFor(t, map[string]any{
		"email": map[string]any{"verify": false},
	}, "tls-verify-disabled")

	assert.Empty(t, messages)
}

func TestDebugEnabled(t *testing.T) {
	assert.Len(t, warningsFor(t, map[string]any{"debug": true}, "debug-enabled"), 1)
	assert.Empty(t, warningsFor(t, map[string]any{"debug": false}, "debug-enabled"))
	assert.Empty(t, warningsFor(t, map[string]any{"debug": "true"}, "debug-enabled"))
}
