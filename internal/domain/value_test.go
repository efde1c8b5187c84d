package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confguard/confguard/internal/domain"
)

func TestFromGo_Scalars(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		kind domain.Kind
	}{
		{"nil", nil, domain.KindNull},
		{"bool", true, domain.KindBool},
		{"int", 42, domain.KindNumber},
		{"int64", int64(42), domain.KindNumber},
		{"float", 4.2, domain.KindNumber},
		{"string", "hello", domain.KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := domain.FromGo(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestFromGo_TimestampBecomesRFC3339String(t *testing.T) {
	// yaml.v3 hands unquoted timestamp scalars to us as time.Time.
	v, err := domain.FromGo(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, domain.KindString, v.Kind())
	assert.Equal(t, "2024-01-01T00:00:00Z", v.Str())
}

func TestFromGo_BinaryBecomesString(t *testing.T) {
	// yaml !!binary scalars decode to []byte.
	v, err := domain.FromGo([]byte("payload"))
	require.NoError(t, err)

	assert.Equal(t, domain.KindString, v.Kind())
	assert.Equal(t, "payload", v.Str())
}

func TestFromGo_IntAndFloatShareOneNumberKind(t *testing.T) {
	fromYAML, err := domain.FromGo(1) // yaml.v3 decodes whole numbers as int
	require.NoError(t, err)
	fromJSON, err := domain.FromGo(1.0) // encoding/json decodes them as float64
	require.NoError(t, err)

	assert.Equal(t, fromYAML.Number(), fromJSON.Number())
}

func TestFromGo_Nested(t *testing.T) {
	v, err := domain.FromGo(map[string]any{
		"name":  "App",
		"ports": []any{80, 443},
		"tls":   map[string]any{"verify": true},
	})
	require.NoError(t, err)
	require.Equal(t, domain.KindMapping, v.Kind())

	ports, ok := v.Get("ports")
	require.True(t, ok)
	require.Equal(t, domain.KindSequence, ports.Kind())
	assert.Len(t, ports.Sequence(), 2)

	tls, ok := v.Get("tls")
	require.True(t, ok)
	verify, ok := tls.Get("verify")
	require.True(t, ok)
	assert.True(t, verify.Bool())
}

func TestFromGo_InterfaceKeyedMapping(t *testing.T) {
	v, err := domain.FromGo(map[any]any{"name": "App"})
	require.NoError(t, err)

	name, ok := v.Get("name")
	require.True(t, ok)
	assert.Equal(t, "App", name.Str())
}

func TestFromGo_NonStringKeyRejected(t *testing.T) {
	_, err := domain.FromGo(map[any]any{1: "one"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a string")
}

func TestValue_GetOnNonMapping(t *testing.T) {
	v, err := domain.FromGo("scalar")
	require.NoError(t, err)

	_, ok := v.Get("anything")
	assert.False(t, ok)
}

func TestValue_SequenceDoesNotAliasInternalState(t *testing.T) {
	v, err := domain.FromGo(map[string]any{"tags": []any{"a", "b"}})
	require.NoError(t, err)

	tags, ok := v.Get("tags")
	require.True(t, ok)

	seq := tags.Sequence()
	seq[0], err = domain.FromGo("mutated")
	require.NoError(t, err)

	fresh := tags.Sequence()
	assert.Equal(t, "a", fresh[0].Str())
}

func TestValue_InterfaceRoundTrip(t *testing.T) {
	raw := map[string]any{
		"name":    "App",
		"debug":   false,
		"retries": 3.0,
		"tags":    []any{"a", "b"},
		"empty":   nil,
	}

	v, err := domain.FromGo(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, v.Interface())
}
