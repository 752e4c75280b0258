package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDialectIsolation checks invariant 4 from spec §8: validating under an
// earlier draft ignores keywords introduced afterward.
func TestDialectIsolation(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft7)
	schema, err := c.Compile([]byte(`{
		"$dynamicAnchor": "root",
		"type": "object"
	}`))
	require.NoError(t, err)

	// $dynamicAnchor isn't a recognized keyword under draft7; it's simply
	// ignored, not a compile error, and the schema still validates objects.
	verdict := schema.Validate(map[string]any{})
	assert.True(t, verdict.IsValid())
}

func TestDraft3TypeUnionAndDisallow(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft3)
	schema, err := c.Compile([]byte(`{
		"type": ["string", {"type": "object", "properties": {"n": {"type": "number"}}}],
		"disallow": "null"
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate("hello").IsValid())
	assert.True(t, schema.Validate(map[string]any{"n": float64(1)}).IsValid())
	assert.False(t, schema.Validate(nil).IsValid())
	assert.False(t, schema.Validate(float64(5)).IsValid())
}

func TestDraft3RequiredAsPropertyBoolean(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft3)
	schema, err := c.Compile([]byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string", "required": true}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"name": "Ada"}).IsValid())
	assert.False(t, schema.Validate(map[string]any{}).IsValid())
}

func TestDraft3ExclusiveMinimumBooleanModifier(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft3)
	schema, err := c.Compile([]byte(`{
		"minimum": 0,
		"exclusiveMinimum": true
	}`))
	require.NoError(t, err)

	assert.False(t, schema.Validate(float64(0)).IsValid())
	assert.True(t, schema.Validate(float64(0.5)).IsValid())
}

func TestDraft6StandaloneExclusiveMinimum(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft6)
	schema, err := c.Compile([]byte(`{"exclusiveMinimum": 0}`))
	require.NoError(t, err)

	assert.False(t, schema.Validate(float64(0)).IsValid())
	assert.True(t, schema.Validate(float64(1)).IsValid())
}

func TestDynamicRefRecursiveExtension(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"$id": "https://example.com/tree",
		"$dynamicAnchor": "node",
		"type": "object",
		"properties": {
			"children": {
				"type": "array",
				"items": {"$dynamicRef": "#node"}
			}
		}
	}`))
	require.NoError(t, err)

	verdict := schema.Validate(map[string]any{
		"children": []any{
			map[string]any{"children": []any{}},
		},
	})
	assert.True(t, verdict.IsValid())

	verdict = schema.Validate(map[string]any{
		"children": []any{"not an object"},
	})
	assert.False(t, verdict.IsValid())
}

func TestFormatAnnotationByDefaultUnder2020_12(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft2020_12)
	schema, err := c.Compile([]byte(`{"type": "string", "format": "email"}`))
	require.NoError(t, err)

	// format is annotation-only by default under 2020-12; an invalid email
	// does not fail validation unless strictFormat is set.
	assert.True(t, schema.Validate("not-an-email").IsValid())
}

func TestStrictFormatAssertsUnder2020_12(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft2020_12)
	c.SetStrictFormat(true)
	schema, err := c.Compile([]byte(`{"type": "string", "format": "email"}`))
	require.NoError(t, err)

	assert.False(t, schema.Validate("not-an-email").IsValid())
	assert.True(t, schema.Validate("ada@example.com").IsValid())
}

func TestFormatAssertsByDefaultUnderDraft7(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft7)
	schema, err := c.Compile([]byte(`{"type": "string", "format": "email"}`))
	require.NoError(t, err)

	assert.False(t, schema.Validate("not-an-email").IsValid())
}
