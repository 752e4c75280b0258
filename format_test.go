package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFormats(t *testing.T) {
	c := NewCompiler()
	c.SetStrictFormat(true)

	cases := []struct {
		format string
		value  string
		valid  bool
	}{
		{"email", "ada@example.com", true},
		{"email", "not-an-email", false},
		{"ipv4", "192.168.1.1", true},
		{"ipv4", "not-an-ip", false},
		{"uuid", "550e8400-e29b-41d4-a716-446655440000", true},
		{"uuid", "not-a-uuid", false},
		{"date", "2024-01-15", true},
		{"date", "not-a-date", false},
	}

	for _, tc := range cases {
		schema, err := c.Compile([]byte(`{"type": "string", "format": "` + tc.format + `"}`))
		require.NoError(t, err)
		assert.Equal(t, tc.valid, schema.Validate(tc.value).IsValid(), "format %s value %q", tc.format, tc.value)
	}
}

func TestRegisterCustomFormat(t *testing.T) {
	c := NewCompiler()
	c.SetStrictFormat(true)
	c.RegisterFormat("even-length", func(v any) bool {
		s, ok := v.(string)
		return !ok || len(s)%2 == 0
	})

	schema, err := c.Compile([]byte(`{"type": "string", "format": "even-length"}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate("ab").IsValid())
	assert.False(t, schema.Validate("abc").IsValid())
}

func TestUnregisterFormatFallsBackToUnknown(t *testing.T) {
	c := NewCompiler()
	c.SetStrictFormat(true)
	c.UnregisterFormat("email")

	schema, err := c.Compile([]byte(`{"type": "string", "format": "email"}`))
	require.NoError(t, err)

	// An unrecognized format name never fails validation.
	assert.True(t, schema.Validate("not-an-email").IsValid())
}
