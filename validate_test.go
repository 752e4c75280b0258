package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBasic(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"required": ["name"]
	}`))
	require.NoError(t, err)

	verdict := schema.Validate(map[string]any{"name": "Ada"})
	assert.True(t, verdict.IsValid())
	assert.Empty(t, verdict.Errors)

	verdict = schema.Validate(map[string]any{})
	assert.False(t, verdict.IsValid())
	require.Len(t, verdict.Errors, 1)
	assert.Equal(t, "required", verdict.Errors[0].Keyword)
	assert.Equal(t, "", verdict.Errors[0].InstanceLocation)
}

func TestValidateJSON(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{"type": "array", "items": {"type": "integer"}, "minItems": 2}`))
	require.NoError(t, err)

	verdict, err := schema.ValidateJSON([]byte(`[1, 2, 3]`))
	require.NoError(t, err)
	assert.True(t, verdict.IsValid())

	verdict, err = schema.ValidateJSON([]byte(`[1]`))
	require.NoError(t, err)
	assert.False(t, verdict.IsValid())

	_, err = schema.ValidateJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestValidateOneShot(t *testing.T) {
	verdict, err := Validate(
		[]byte(`{"type": "string", "minLength": 3}`),
		[]byte(`"ab"`),
	)
	require.NoError(t, err)
	assert.False(t, verdict.IsValid())
	require.Len(t, verdict.Errors, 1)
	assert.Equal(t, "minLength", verdict.Errors[0].Keyword)
}

func TestValidateOneShotWithOptions(t *testing.T) {
	verdict, err := Validate(
		[]byte(`{"type": "integer"}`),
		[]byte(`1.0`),
		WithDraft(Draft2020_12),
		WithStrictInteger(),
	)
	require.NoError(t, err)
	assert.False(t, verdict.IsValid())
}

func TestCompileInvalidSchemaJSON(t *testing.T) {
	_, err := Compile([]byte(`{not json`))
	assert.ErrorIs(t, err, ErrSchemaCompilation)
}

func TestNestedErrorLocations(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"type": "object",
		"properties": {
			"address": {
				"type": "object",
				"properties": {"zip": {"type": "string", "minLength": 5}}
			}
		}
	}`))
	require.NoError(t, err)

	verdict := schema.Validate(map[string]any{
		"address": map[string]any{"zip": "123"},
	})
	require.False(t, verdict.IsValid())
	require.Len(t, verdict.Errors, 1)
	assert.Equal(t, "/address/zip", verdict.Errors[0].InstanceLocation)
	assert.Equal(t, "minLength", verdict.Errors[0].Keyword)
}

func TestCompileBatchResolvesMutualRefs(t *testing.T) {
	c := NewCompiler()
	schemas, err := c.CompileBatch(map[string][]byte{
		"https://example.com/a": []byte(`{
			"$id": "https://example.com/a",
			"type": "object",
			"properties": {"b": {"$ref": "https://example.com/b"}}
		}`),
		"https://example.com/b": []byte(`{
			"$id": "https://example.com/b",
			"type": "object",
			"properties": {"a": {"$ref": "https://example.com/a"}}
		}`),
	})
	require.NoError(t, err)
	require.Contains(t, schemas, "https://example.com/a")

	verdict := schemas["https://example.com/a"].Validate(map[string]any{
		"b": map[string]any{"a": map[string]any{}},
	})
	assert.True(t, verdict.IsValid())
}
