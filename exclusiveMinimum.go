package jsonschema

func init() {
	registerKeyword("exclusiveMinimum", compileExclusiveMinimum)
}

// compileExclusiveMinimum compiles the draft6+ numeric form of
// exclusiveMinimum; see compileExclusiveMaximum for the legacyNumerics
// no-op rationale.
func compileExclusiveMinimum(cc *compileCtx, raw any) (any, checkerFunc, error) {
	if cc.dialect.legacyNumerics {
		return nil, nil, nil
	}
	bound, ok := raw.(float64)
	if !ok {
		return nil, nil, nil
	}
	return bound, checkExclusiveMinimum, nil
}

func checkExclusiveMinimum(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	num, ok := value.(float64)
	if !ok {
		return nil
	}
	bound := arg.(float64)
	if compareRat(num, bound) > 0 {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "value must be strictly greater than the exclusive minimum", bound, value)
}
