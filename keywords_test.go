package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinators(t *testing.T) {
	c := NewCompiler()

	allOf, err := c.Compile([]byte(`{"allOf": [{"type": "string"}, {"minLength": 2}]}`))
	require.NoError(t, err)
	assert.True(t, allOf.Validate("ab").IsValid())
	assert.False(t, allOf.Validate("a").IsValid())
	assert.False(t, allOf.Validate(float64(1)).IsValid())

	anyOf, err := c.Compile([]byte(`{"anyOf": [{"type": "string"}, {"type": "integer"}]}`))
	require.NoError(t, err)
	assert.True(t, anyOf.Validate("x").IsValid())
	assert.True(t, anyOf.Validate(float64(1)).IsValid())
	assert.False(t, anyOf.Validate(true).IsValid())

	oneOf, err := c.Compile([]byte(`{"oneOf": [{"maximum": 10}, {"minimum": 5}]}`))
	require.NoError(t, err)
	assert.True(t, oneOf.Validate(float64(1)).IsValid())  // matches only "maximum"
	assert.True(t, oneOf.Validate(float64(20)).IsValid()) // matches only "minimum"
	assert.False(t, oneOf.Validate(float64(7)).IsValid()) // matches both

	not, err := c.Compile([]byte(`{"not": {"type": "string"}}`))
	require.NoError(t, err)
	assert.True(t, not.Validate(float64(1)).IsValid())
	assert.False(t, not.Validate("x").IsValid())
}

func TestConditional(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft7)
	schema, err := c.Compile([]byte(`{
		"if": {"properties": {"kind": {"const": "circle"}}},
		"then": {"required": ["radius"]},
		"else": {"required": ["side"]}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"kind": "circle", "radius": float64(1)}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"kind": "circle"}).IsValid())
	assert.True(t, schema.Validate(map[string]any{"kind": "square", "side": float64(1)}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"kind": "square"}).IsValid())
}

func TestUnevaluatedPropertiesAcrossApplicators(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"allOf": [{"properties": {"a": {"type": "string"}}}],
		"properties": {"b": {"type": "string"}},
		"unevaluatedProperties": false
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"a": "x", "b": "y"}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"a": "x", "c": "z"}).IsValid())
}

func TestUnevaluatedItemsAfterPrefixItems(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"prefixItems": [{"type": "string"}],
		"unevaluatedItems": false
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{"a"}).IsValid())
	assert.False(t, schema.Validate([]any{"a", "b"}).IsValid())
}

func TestPropertyDependencies(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"propertyDependencies": {
			"paymentMethod": {
				"card": {"required": ["cardNumber"]},
				"cash": {"required": ["amountTendered"]}
			}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{
		"paymentMethod": "card", "cardNumber": "4111",
	}).IsValid())
	assert.False(t, schema.Validate(map[string]any{
		"paymentMethod": "card",
	}).IsValid())
	assert.True(t, schema.Validate(map[string]any{
		"paymentMethod": "cash", "amountTendered": float64(10),
	}).IsValid())
	// An unrelated value for paymentMethod has no subschema to apply.
	assert.True(t, schema.Validate(map[string]any{"paymentMethod": "check"}).IsValid())
}

func TestContentEncodingAndMediaTypeAssertedUnderDraft7(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft7)
	schema, err := c.Compile([]byte(`{
		"type": "string",
		"contentEncoding": "base64",
		"contentMediaType": "application/json"
	}`))
	require.NoError(t, err)

	// base64("{}") = "e30="
	assert.True(t, schema.Validate("e30=").IsValid())
	assert.False(t, schema.Validate("not base64!!").IsValid())
}

func TestContentSchemaValidatesDecodedJSON(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft7)
	schema, err := c.Compile([]byte(`{
		"type": "string",
		"contentMediaType": "application/json",
		"contentSchema": {"type": "object", "required": ["ok"]}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(`{"ok": true}`).IsValid())
	assert.False(t, schema.Validate(`{"nope": true}`).IsValid())
}

func TestContentAnnotationOnlyUnder2020_12(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft2020_12)
	schema, err := c.Compile([]byte(`{
		"type": "string",
		"contentEncoding": "base64"
	}`))
	require.NoError(t, err)

	// Under 2020-12 content keywords are annotations only, never assertions.
	assert.True(t, schema.Validate("not base64!!").IsValid())
}
