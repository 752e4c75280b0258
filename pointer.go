package jsonschema

import (
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// pointerTokens splits a JSON Pointer ("" or "/a/b/0") into unescaped
// reference tokens, delegating to kaptinlin/jsonpointer for the "~1"/"~0"
// escaping rules rather than reimplementing RFC 6901 by hand.
func pointerTokens(ptr string) []string {
	if ptr == "" || ptr == "/" {
		return nil
	}
	return jsonpointer.Parse(ptr)
}

// navigate walks doc by the reference tokens of ptr, the way the teacher's
// resolveJSONPointer/findSchemaInSegment walk a fixed typed Schema's fields;
// here doc is always a decoded map[string]any/[]any tree (a schema or a data
// document), so navigation is a single generic routine instead of one
// hand-rolled switch per struct field.
func navigate(doc any, ptr string) (any, bool) {
	tokens := pointerTokens(ptr)
	cur := doc
	for _, tok := range tokens {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[tok]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// appendPointer appends a reference token to a JSON Pointer, escaping "~"
// and "/" per RFC 6901. Used to build schemaPath/documentPath while walking
// into object properties and array indices during evaluation.
func appendPointer(base, token string) string {
	escaped := strings.ReplaceAll(token, "~", "~0")
	escaped = strings.ReplaceAll(escaped, "/", "~1")
	return base + "/" + escaped
}

// appendIndex appends an array index token to a JSON Pointer.
func appendIndex(base string, idx int) string {
	return base + "/" + strconv.Itoa(idx)
}
