package jsonschema

func init() {
	registerKeyword("enum", compileEnum)
}

// compileEnum compiles the enum keyword. Grounded on the teacher's
// evaluateEnum, using this engine's structural deepEqual (value.go) rather
// than reflect.DeepEqual so numbers compare by mathematical value
// regardless of how the JSON codec represented them.
func compileEnum(cc *compileCtx, raw any) (any, checkerFunc, error) {
	values, ok := raw.([]any)
	if !ok || len(values) == 0 {
		return nil, nil, nil
	}
	return values, checkEnum, nil
}

func checkEnum(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	values := arg.([]any)
	for _, v := range values {
		if deepEqual(value, v) {
			return nil
		}
	}
	return fail(ec, schemaPath, documentPath, "value does not match any enum member", values, value)
}
