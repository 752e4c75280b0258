package jsonschema

import (
	"math/big"
	"sort"
)

// kind names the six JSON primitive types plus "integer", which is
// not a distinct JSON type but a numeric value with zero fractional part.
type kind string

const (
	kindNull    kind = "null"
	kindBoolean kind = "boolean"
	kindObject  kind = "object"
	kindArray   kind = "array"
	kindString  kind = "string"
	kindNumber  kind = "number"
	kindInteger kind = "integer"
)

// typeOf reports the JSON Schema primitive type of a decoded Go value.
// Values decoded by this engine are always nil, bool, float64, string,
// []any, or map[string]any (the json package's "any" representation).
func typeOf(v any) kind {
	switch n := v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBoolean
	case string:
		return kindString
	case []any:
		return kindArray
	case map[string]any:
		return kindObject
	case float64:
		if isWholeFloat(n) {
			return kindInteger
		}
		return kindNumber
	case *big.Rat:
		if n.IsInt() {
			return kindInteger
		}
		return kindNumber
	default:
		return kindNumber
	}
}

func isWholeFloat(f float64) bool {
	return f == float64(int64(f)) || big.NewFloat(f).IsInt()
}

// deepEqual implements JSON Schema's structural equality: numbers compare by
// mathematical value regardless of representation, object key order is
// irrelevant, and array order matters.
func deepEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case float64:
		return numericEqual(av, b)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, exists := bv[k]
			if !exists || !deepEqual(v, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numericEqual(a float64, b any) bool {
	bv, ok := b.(float64)
	if !ok {
		return false
	}
	return toRat(a).Cmp(toRat(bv)) == 0
}

// uniqueItems reports whether every pair of elements in items is structurally
// distinct, per the uniqueItems keyword.
func uniqueItems(items []any) (bool, int, int) {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if deepEqual(items[i], items[j]) {
				return false, i, j
			}
		}
	}
	return true, -1, -1
}

// sortedKeys returns an object's keys in sorted order, used only where error
// reporting determinism matters and map iteration order would otherwise be
// random.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
