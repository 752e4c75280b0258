package jsonschema

func init() {
	registerKeyword("oneOf", compileOneOf)
}

// compileOneOf compiles the oneOf keyword. Grounded on the teacher's
// evaluateOneOf.
func compileOneOf(cc *compileCtx, raw any) (any, checkerFunc, error) {
	arr, ok := raw.([]any)
	if !ok || len(arr) == 0 {
		return nil, nil, nil
	}
	schemas := make([]planID, len(arr))
	for i, item := range arr {
		id, err := cc.compileChild(item, appendIndex(appendPointer(cc.pointer, "oneOf"), i))
		if err != nil {
			return nil, nil, err
		}
		schemas[i] = id
	}
	return schemas, checkOneOf, nil
}

func checkOneOf(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	schemas := arg.([]planID)
	matchCount := 0
	var lastMarks *evaluatedState
	for _, id := range schemas {
		ok, marks := evaluateQuiet(ec, id, value, documentPath)
		if ok {
			matchCount++
			lastMarks = marks
		}
	}
	switch {
	case matchCount == 1:
		local.merge(lastMarks)
		return nil
	case matchCount == 0:
		if ec.quiet || len(schemas) == 0 {
			return fail(ec, schemaPath, documentPath, "value does not match any schema in oneOf", nil, value)
		}
		detail, _ := evaluateMarks(ec, schemas[0], value, documentPath)
		node := newErrorNode(schemaPath, documentPath, "value does not match any schema in oneOf", nil, value)
		node.errors = []*errorNode{detail}
		return []*errorNode{node}
	default:
		return fail(ec, schemaPath, documentPath, "value matches more than one schema in oneOf", nil, value)
	}
}
