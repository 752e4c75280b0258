package jsonschema

import "strings"

func init() {
	registerKeyword("dependencies", compileDependencies)
}

type dependencyEntry struct {
	property string
	requires []string // non-nil for the dependentRequired-style shape
	schema   planID   // set when isSchema is true (the dependentSchemas-style shape)
	isSchema bool
}

// compileDependencies compiles the unified dependencies keyword used by
// draft3 through draft7, where 2019-09+ instead split the same rule into
// dependentRequired and dependentSchemas (see dependentRequired.go/
// dependentSchemas.go). Each entry's value is either an array of required
// property names or a subschema, distinguished per spec §4.1's split note.
// Grounded on the teacher's evaluateDependentRequired/evaluateDependentSchemas
// pair, merged back into the one pre-2019-09 keyword shape.
func compileDependencies(cc *compileCtx, raw any) (any, checkerFunc, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, nil
	}
	var entries []dependencyEntry
	for _, key := range sortedKeys(obj) {
		switch v := obj[key].(type) {
		case []any:
			requires := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					requires = append(requires, s)
				}
			}
			entries = append(entries, dependencyEntry{property: key, requires: requires})
		case map[string]any, bool:
			id, err := cc.compileChild(v, appendPointer(appendPointer(cc.pointer, "dependencies"), key))
			if err != nil {
				return nil, nil, err
			}
			entries = append(entries, dependencyEntry{property: key, schema: id, isSchema: true})
		}
	}
	if len(entries) == 0 {
		return nil, nil, nil
	}
	return entries, checkDependencies, nil
}

func checkDependencies(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	entries := arg.([]dependencyEntry)
	var errs []*errorNode
	for _, e := range entries {
		if _, present := obj[e.property]; !present {
			continue
		}
		if e.isSchema {
			res, marks := evaluateMarks(ec, e.schema, value, documentPath)
			if res.valid {
				local.merge(marks)
			} else {
				errs = append(errs, res)
			}
			continue
		}
		var missing []string
		for _, req := range e.requires {
			if _, ok := obj[req]; !ok {
				missing = append(missing, req)
			}
		}
		if len(missing) > 0 {
			errs = append(errs, fail(ec, schemaPath, documentPath,
				"property "+e.property+" requires missing properties: "+strings.Join(missing, ", "), e.requires, value)...)
		}
	}
	return errs
}
