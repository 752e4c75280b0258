package jsonschema

func init() {
	registerKeyword("maxItems", compileMaxItems)
}

// compileMaxItems compiles the maxItems keyword. Grounded on the teacher's
// evaluateMaxItems.
func compileMaxItems(cc *compileCtx, raw any) (any, checkerFunc, error) {
	n, ok := raw.(float64)
	if !ok || n < 0 {
		return nil, nil, nil
	}
	return int(n), checkMaxItems, nil
}

func checkMaxItems(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arr, ok := value.([]any)
	if !ok {
		return nil
	}
	max := arg.(int)
	if len(arr) <= max {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "array has more items than the maximum", max, value)
}
