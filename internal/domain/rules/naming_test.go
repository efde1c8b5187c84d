package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNaming_CamelCaseFlagged(t *testing.T) {
	messages := warningsFor(t, map[string]any{
		"maxRetries": 3,
	}, "key-naming")

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "maxRetries")
	assert.Contains(t, messages[0], "max_retries")
}

func TestKeyNaming_SnakeCasePasses(t *testing.T) {
	messages := warningsFor(t, map[string]any{
		"max_retries": 3,
		"timeout":     30,
	}, "key-naming")

	assert.Empty(t, messages)
}

func TestKeyNaming_OnlyTopLevelKeysChecked(t *testing.T) {
	messages := warningsFor(t, map[string]any{
		"database": map[string]any{"maxConnections": 10},
	}, "key-naming")

	assert.Empty(t, messages)
}

func TestKeyNaming_SingleWordUppercaseIgnored(t *testing.T) {
	// An all-caps single word is a convention of its own, not camelCase drift.
	messages := warningsFor(t, map[string]any{
		"TTL": 60,
	}, "key-naming")

	assert.Empty(t, messages)
}
