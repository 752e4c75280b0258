package jsonschema

func init() {
	registerKeyword("exclusiveMaximum", compileExclusiveMaximum)
}

// compileExclusiveMaximum compiles the draft6+ numeric form of
// exclusiveMaximum. In draft3/draft4, exclusiveMaximum is instead a boolean
// modifier read directly by maximum.go's compileMaximum, so this compiler
// is a no-op under legacyNumerics dialects.
func compileExclusiveMaximum(cc *compileCtx, raw any) (any, checkerFunc, error) {
	if cc.dialect.legacyNumerics {
		return nil, nil, nil
	}
	bound, ok := raw.(float64)
	if !ok {
		return nil, nil, nil
	}
	return bound, checkExclusiveMaximum, nil
}

func checkExclusiveMaximum(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	num, ok := value.(float64)
	if !ok {
		return nil
	}
	bound := arg.(float64)
	if compareRat(num, bound) < 0 {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "value must be strictly less than the exclusive maximum", bound, value)
}
