package jsonschema

func init() {
	registerKeyword("minItems", compileMinItems)
}

// compileMinItems compiles the minItems keyword. Grounded on the teacher's
// evaluateMinItems.
func compileMinItems(cc *compileCtx, raw any) (any, checkerFunc, error) {
	n, ok := raw.(float64)
	if !ok || n < 0 {
		return nil, nil, nil
	}
	return int(n), checkMinItems, nil
}

func checkMinItems(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arr, ok := value.([]any)
	if !ok {
		return nil
	}
	min := arg.(int)
	if len(arr) >= min {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "array has fewer items than the minimum", min, value)
}
