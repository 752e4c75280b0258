package jsonschema

func init() {
	registerKeyword("dependentSchemas", compileDependentSchemas)
}

type dependentSchemaEntry struct {
	property string
	schema   planID
}

// compileDependentSchemas compiles the dependentSchemas keyword (2019-09+;
// draft3-draft7 express the same rule through the unified dependencies
// keyword, see dependencies.go). Grounded on the teacher's
// evaluateDependentSchemas.
func compileDependentSchemas(cc *compileCtx, raw any) (any, checkerFunc, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, nil
	}
	entries, err := compileSchemaMap(cc, obj, "dependentSchemas")
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, nil
	}
	return entries, checkDependentSchemas, nil
}

// compileSchemaMap compiles every value of a map[string]any of subschemas
// keyed by property name, used by dependentSchemas (dependencies.go
// compiles its own schema-valued entries).
func compileSchemaMap(cc *compileCtx, obj map[string]any, keyword string) ([]dependentSchemaEntry, error) {
	var entries []dependentSchemaEntry
	for _, key := range sortedKeys(obj) {
		id, err := cc.compileChild(obj[key], appendPointer(appendPointer(cc.pointer, keyword), key))
		if err != nil {
			return nil, err
		}
		entries = append(entries, dependentSchemaEntry{property: key, schema: id})
	}
	return entries, nil
}

func checkDependentSchemas(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	entries := arg.([]dependentSchemaEntry)
	var errs []*errorNode
	for _, e := range entries {
		if _, present := obj[e.property]; !present {
			continue
		}
		res, marks := evaluateMarks(ec, e.schema, value, documentPath)
		if res.valid {
			local.merge(marks)
		} else {
			errs = append(errs, res)
		}
	}
	return errs
}
