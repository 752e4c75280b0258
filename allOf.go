package jsonschema

func init() {
	registerKeyword("allOf", compileAllOf)
}

// compileAllOf compiles the allOf keyword. Grounded on the teacher's
// evaluateAllOf.
func compileAllOf(cc *compileCtx, raw any) (any, checkerFunc, error) {
	arr, ok := raw.([]any)
	if !ok || len(arr) == 0 {
		return nil, nil, nil
	}
	schemas := make([]planID, len(arr))
	for i, item := range arr {
		id, err := cc.compileChild(item, appendIndex(appendPointer(cc.pointer, "allOf"), i))
		if err != nil {
			return nil, nil, err
		}
		schemas[i] = id
	}
	return schemas, checkAllOf, nil
}

func checkAllOf(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	schemas := arg.([]planID)
	var errs []*errorNode
	for _, id := range schemas {
		res, marks := evaluateMarks(ec, id, value, documentPath)
		if res.valid {
			local.merge(marks)
		} else {
			errs = append(errs, res)
		}
	}
	return errs
}
