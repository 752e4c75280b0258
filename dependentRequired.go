package jsonschema

import "strings"

func init() {
	registerKeyword("dependentRequired", compileDependentRequired)
}

type dependentRequiredEntry struct {
	property string
	requires []string
}

// compileDependentRequired compiles the dependentRequired keyword
// (2019-09+; draft3-draft7 express the same rule through the unified
// dependencies keyword, see dependencies.go). Grounded on the teacher's
// evaluateDependentRequired.
func compileDependentRequired(cc *compileCtx, raw any) (any, checkerFunc, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, nil
	}
	entries := buildDependentRequired(obj)
	if len(entries) == 0 {
		return nil, nil, nil
	}
	return entries, checkDependentRequired, nil
}

func buildDependentRequired(obj map[string]any) []dependentRequiredEntry {
	var entries []dependentRequiredEntry
	for _, key := range sortedKeys(obj) {
		arr, ok := obj[key].([]any)
		if !ok {
			continue
		}
		requires := make([]string, 0, len(arr))
		for _, v := range arr {
			if s, ok := v.(string); ok {
				requires = append(requires, s)
			}
		}
		entries = append(entries, dependentRequiredEntry{property: key, requires: requires})
	}
	return entries
}

func checkDependentRequired(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	entries := arg.([]dependentRequiredEntry)
	var errs []*errorNode
	for _, e := range entries {
		if _, present := obj[e.property]; !present {
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
