package jsonschema

import "fmt"

func init() {
	registerKeyword("patternProperties", compilePatternProperties)
}

type patternPropertyEntry struct {
	pattern string
	schema  planID
}

// compilePatternProperties compiles the patternProperties keyword.
// Grounded on the teacher's evaluatePatternProperties. Each key is compiled
// here through the shared patternCache (regex.go), so an invalid key fails
// compilation with ErrRegexCompilation; evaluation reuses the cached form
// instead of a *regexp.Regexp cached on the schema node.
func compilePatternProperties(cc *compileCtx, raw any) (any, checkerFunc, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, nil
	}
	var entries []patternPropertyEntry
	for _, key := range sortedKeys(obj) {
		if _, err := cc.patterns.compile(key); err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrRegexCompilation, key, err)
		}
		id, err := cc.compileChild(obj[key], appendPointer(appendPointer(cc.pointer, "patternProperties"), key))
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, patternPropertyEntry{pattern: key, schema: id})
	}
	if len(entries) == 0 {
		return nil, nil, nil
	}
	return entries, checkPatternProperties, nil
}

func checkPatternProperties(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	entries := arg.([]patternPropertyEntry)
	var errs []*errorNode
	for _, e := range entries {
		for _, propName := range sortedKeys(obj) {
			matched, err := ec.patterns.matches(e.pattern, propName)
			if err != nil || !matched {
				continue
			}
			local.markProperty(propName)
			res := evaluate(ec, e.schema, obj[propName], appendPointer(documentPath, propName))
			if !res.valid {
				errs = append(errs, res)
			}
		}
	}
	return errs
}
