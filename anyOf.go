package jsonschema

func init() {
	registerKeyword("anyOf", compileAnyOf)
}

// compileAnyOf compiles the anyOf keyword. Grounded on the teacher's
// evaluateAnyOf. Every branch is probed in quiet mode first to find the
// one (or more) that pass without paying for a real error tree on
// branches that fail; only if none pass is the first branch re-evaluated
// for real to surface a representative error.
func compileAnyOf(cc *compileCtx, raw any) (any, checkerFunc, error) {
	arr, ok := raw.([]any)
	if !ok || len(arr) == 0 {
		return nil, nil, nil
	}
	schemas := make([]planID, len(arr))
	for i, item := range arr {
		id, err := cc.compileChild(item, appendIndex(appendPointer(cc.pointer, "anyOf"), i))
		if err != nil {
			return nil, nil, err
		}
		schemas[i] = id
	}
	return schemas, checkAnyOf, nil
}

func checkAnyOf(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	schemas := arg.([]planID)
	anyValid := false
	for _, id := range schemas {
		ok, marks := evaluateQuiet(ec, id, value, documentPath)
		if ok {
			anyValid = true
			local.merge(marks)
		}
	}
	if anyValid {
		return nil
	}
	if ec.quiet || len(schemas) == 0 {
		return fail(ec, schemaPath, documentPath, "value does not match any schema in anyOf", nil, value)
	}
	detail, _ := evaluateMarks(ec, schemas[0], value, documentPath)
	node := newErrorNode(schemaPath, documentPath, "value does not match any schema in anyOf", nil, value)
	node.errors = []*errorNode{detail}
	return []*errorNode{node}
}
