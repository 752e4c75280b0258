package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumAndConst(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"properties": {
			"color": {"enum": ["red", "green", "blue"]},
			"version": {"const": 3}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"color": "red", "version": float64(3)}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"color": "purple"}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"version": float64(4)}).IsValid())
}

func TestStringLengthAndPattern(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"type": "string",
		"minLength": 2,
		"maxLength": 5,
		"pattern": "^[a-z]+$"
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate("abc").IsValid())
	assert.False(t, schema.Validate("a").IsValid())
	assert.False(t, schema.Validate("abcdef").IsValid())
	assert.False(t, schema.Validate("ABC").IsValid())
}

func TestArraySizeAndUniqueItems(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"type": "array",
		"minItems": 1,
		"maxItems": 3,
		"uniqueItems": true
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{float64(1), float64(2)}).IsValid())
	assert.False(t, schema.Validate([]any{}).IsValid())
	assert.False(t, schema.Validate([]any{float64(1), float64(2), float64(3), float64(4)}).IsValid())
	assert.False(t, schema.Validate([]any{float64(1), float64(1)}).IsValid())
}

func TestObjectSizeAndPropertyNames(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"type": "object",
		"minProperties": 1,
		"maxProperties": 2,
		"propertyNames": {"pattern": "^[a-z]+$"}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"abc": 1}).IsValid())
	assert.False(t, schema.Validate(map[string]any{}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"a": 1, "b": 2, "c": 3}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"ABC": 1}).IsValid())
}

func TestPatternPropertiesAndAdditionalProperties(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"patternProperties": {"^S_": {"type": "string"}},
		"additionalProperties": false
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"name": "x", "S_extra": "y"}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"other": "z"}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"S_extra": float64(1)}).IsValid())
}

func TestMultipleOfExactRationalArithmetic(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{"type": "number", "multipleOf": 0.1}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(float64(0.3)).IsValid())
	assert.False(t, schema.Validate(float64(0.31)).IsValid())
}

// TestMultipleOfSmallDecimals covers the classic draft-test-suite case
// where naive float64 division of 0.0075/0.0001 misses by a rounding
// error, even though both are exact multiples at the decimal literal.
func TestMultipleOfSmallDecimals(t *testing.T) {
	c := NewCompiler()
	schema, err := c.Compile([]byte(`{"type": "number", "multipleOf": 0.0001}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(float64(0.0075)).IsValid())
}

// TestWithQuietReturnsMinimalErrorTree checks that WithQuiet still reports
// the correct pass/fail verdict while skipping the detailed error list
// (quiet-mode leaf failures carry no message, so none survive flattening).
func TestWithQuietReturnsMinimalErrorTree(t *testing.T) {
	verdict, err := Validate(
		[]byte(`{"type": "object", "required": ["name"]}`),
		[]byte(`{}`),
		WithQuiet(),
	)
	require.NoError(t, err)
	assert.False(t, verdict.IsValid())
	assert.Empty(t, verdict.Errors)

	passing, err := Validate(
		[]byte(`{"type": "object", "required": ["name"]}`),
		[]byte(`{"name": "a"}`),
		WithQuiet(),
	)
	require.NoError(t, err)
	assert.True(t, passing.IsValid())
}

func TestDraft3Extends(t *testing.T) {
	c := NewCompiler()
	c.SetDefaultDraft(Draft3)
	schema, err := c.Compile([]byte(`{
		"extends": {"properties": {"name": {"type": "string"}}},
		"properties": {"age": {"type": "integer"}}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"name": "a", "age": float64(1)}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"name": float64(1), "age": float64(1)}).IsValid())
}
