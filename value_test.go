package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, kindNull, typeOf(nil))
	assert.Equal(t, kindBoolean, typeOf(true))
	assert.Equal(t, kindString, typeOf("x"))
	assert.Equal(t, kindArray, typeOf([]any{}))
	assert.Equal(t, kindObject, typeOf(map[string]any{}))
	assert.Equal(t, kindInteger, typeOf(float64(5)))
	assert.Equal(t, kindNumber, typeOf(float64(5.5)))
}

func TestDeepEqual(t *testing.T) {
	assert.True(t, deepEqual(float64(1), float64(1.0)))
	assert.True(t, deepEqual(
		map[string]any{"a": float64(1), "b": "x"},
		map[string]any{"b": "x", "a": float64(1)},
	))
	assert.False(t, deepEqual([]any{1.0, 2.0}, []any{2.0, 1.0}))
	assert.True(t, deepEqual([]any{float64(1), float64(2)}, []any{float64(1), float64(2)}))
	assert.False(t, deepEqual("1", float64(1)))
	assert.True(t, deepEqual(nil, nil))
}

func TestUniqueItems(t *testing.T) {
	ok, _, _ := uniqueItems([]any{float64(1), float64(2), float64(3)})
	assert.True(t, ok)

	ok, i, j := uniqueItems([]any{float64(1), float64(1)})
	assert.False(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)

	ok, _, _ = uniqueItems([]any{
		map[string]any{"a": float64(1)},
		map[string]any{"a": float64(1)},
	})
	assert.False(t, ok)
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys(map[string]any{"b": 1, "a": 2, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
