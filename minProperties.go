package jsonschema

func init() {
	registerKeyword("minProperties", compileMinProperties)
}

// compileMinProperties compiles the minProperties keyword. Grounded on the
// teacher's evaluateMinProperties.
func compileMinProperties(cc *compileCtx, raw any) (any, checkerFunc, error) {
	n, ok := raw.(float64)
	if !ok || n < 0 {
		return nil, nil, nil
	}
	return int(n), checkMinProperties, nil
}

func checkMinProperties(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	min := arg.(int)
	if len(obj) >= min {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "object has fewer properties than the minimum", min, value)
}
