package jsonschema

import "strings"

func init() {
	registerKeyword("required", compileRequired)
}

// compileRequired compiles the required keyword. Grounded on the teacher's
// evaluateRequired, generalized to also accept draft3's legacy shape where
// "required" is a boolean sibling of an individual property schema rather
// than a schema-level array of names (dialect.legacyRequired); in that
// form properties.go reads it from each property's schema, not from this
// keyword at all, so compileRequired is a no-op under legacyRequired
// dialects and required.go's draft4+ semantics never fire for draft3.
func compileRequired(cc *compileCtx, raw any) (any, checkerFunc, error) {
	if cc.dialect.legacyRequired {
		return nil, nil, nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, nil, nil
	}
	names := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	if len(names) == 0 {
		return nil, nil, nil
	}
	return names, checkRequired, nil
}

func checkRequired(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	names := arg.([]string)
	var missing []string
	for _, name := range names {
		if _, exists := obj[name]; !exists {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "missing required properties: "+strings.Join(missing, ", "), names, value)
}
