package jsonschema

func init() {
	registerKeyword("multipleOf", compileMultipleOf)
	registerKeyword("divisibleBy", compileMultipleOf)
}

// compileMultipleOf compiles both the multipleOf (draft4+) and divisibleBy
// (draft3) keywords, which are mutually exclusive per draft (see
// dialectCatalog) and share identical semantics. Grounded on the teacher's
// evaluateMultipleOf, using rat.go's exact rational arithmetic in place of
// the teacher's Rat wrapper type.
func compileMultipleOf(cc *compileCtx, raw any) (any, checkerFunc, error) {
	divisor, ok := raw.(float64)
	if !ok || divisor <= 0 {
		return nil, nil, nil
	}
	return divisor, checkMultipleOf, nil
}

func checkMultipleOf(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	num, ok := value.(float64)
	if !ok {
		return nil
	}
	divisor := arg.(float64)
	if isMultipleOf(num, divisor) {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "value is not a multiple of the given divisor", divisor, value)
}
