package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDependenciesUnderDraft7(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft7)
	schema, err := c.Compile([]byte(`{
		"dependencies": {
			"creditCard": ["billingAddress"],
			"membership": {"properties": {"level": {"enum": ["gold", "silver"]}}}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{}).IsValid())
	assert.True(t, schema.Validate(map[string]any{
		"creditCard": "1234", "billingAddress": "x",
	}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"creditCard": "1234"}).IsValid())
	assert.True(t, schema.Validate(map[string]any{
		"membership": true, "level": "gold",
	}).IsValid())
	assert.False(t, schema.Validate(map[string]any{
		"membership": true, "level": "bronze",
	}).IsValid())
}

func TestDependentSchemasAndDependentRequired(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"dependentRequired": {"creditCard": ["billingAddress"]},
		"dependentSchemas": {
			"membership": {"properties": {"level": {"enum": ["gold", "silver"]}}}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"creditCard": "1"}).IsValid())
	assert.True(t, schema.Validate(map[string]any{
		"creditCard": "1", "billingAddress": "x",
	}).IsValid())
	assert.False(t, schema.Validate(map[string]any{
		"membership": true, "level": "bronze",
	}).IsValid())
}

func TestPrefixItemsAndItemsUnder2020_12(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"prefixItems": [{"type": "string"}, {"type": "integer"}],
		"items": {"type": "boolean"}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{"a", float64(1), true, false}).IsValid())
	assert.False(t, schema.Validate([]any{"a", float64(1), "not bool"}).IsValid())
	assert.False(t, schema.Validate([]any{float64(1), "a"}).IsValid())
}

func TestItemsTupleAndAdditionalItemsUnderDraft7(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft7)
	schema, err := c.Compile([]byte(`{
		"items": [{"type": "string"}, {"type": "integer"}],
		"additionalItems": false
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{"a", float64(1)}).IsValid())
	assert.False(t, schema.Validate([]any{"a", float64(1), "extra"}).IsValid())
}

func TestContains(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{"contains": {"type": "integer"}}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{"a", float64(1), "b"}).IsValid())
	assert.False(t, schema.Validate([]any{"a", "b"}).IsValid())
}

func TestMinMaxContains(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"contains": {"type": "integer"},
		"minContains": 2,
		"maxContains": 3
	}`))
	require.NoError(t, err)

	assert.False(t, schema.Validate([]any{float64(1)}).IsValid())
	assert.True(t, schema.Validate([]any{float64(1), float64(2)}).IsValid())
	assert.False(t, schema.Validate([]any{float64(1), float64(2), float64(3), float64(4)}).IsValid())
}

func TestInfrastructureErrorOnUnresolvableRef(t *testing.T) {
	c := NewCompiler()
	_, err := c.Compile([]byte(`{"$ref": "https://nowhere.invalid/missing.json"}`))
	assert.Error(t, err)
}

func TestUnknownDialectFallsBackToDefault(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"$schema": "https://example.com/not-a-real-dialect",
		"type": "string"
	}`))
	require.NoError(t, err)
	assert.True(t, schema.Validate("x").IsValid())
	assert.False(t, schema.Validate(float64(1)).IsValid())
}
