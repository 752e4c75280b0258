package jsonschema

func init() {
	registerKeyword("maxProperties", compileMaxProperties)
}

// compileMaxProperties compiles the maxProperties keyword. Grounded on the
// teacher's evaluateMaxProperties.
func compileMaxProperties(cc *compileCtx, raw any) (any, checkerFunc, error) {
	n, ok := raw.(float64)
	if !ok || n < 0 {
		return nil, nil, nil
	}
	return int(n), checkMaxProperties, nil
}

func checkMaxProperties(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	max := arg.(int)
	if len(obj) <= max {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "object has more properties than the maximum", max, value)
}
