package jsonschema

func init() {
	registerKeyword("minimum", compileMinimum)
}

// minimumArg carries the bound plus, for draft3/draft4's legacy boolean
// exclusiveMinimum modifier, whether the comparison excludes the bound.
type minimumArg struct {
	bound     float64
	exclusive bool
}

// compileMinimum compiles the minimum keyword. Grounded on the teacher's
// evaluateMinimum, generalized the same way compileMaximum is for the
// legacy boolean exclusiveMinimum modifier.
func compileMinimum(cc *compileCtx, raw any) (any, checkerFunc, error) {
	bound, ok := raw.(float64)
	if !ok {
		return nil, nil, nil
	}
	arg := &minimumArg{bound: bound}
	if cc.dialect.legacyNumerics {
		if excl, ok := cc.object["exclusiveMinimum"].(bool); ok {
			arg.exclusive = excl
		}
	}
	return arg, checkMinimum, nil
}

func checkMinimum(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	num, ok := value.(float64)
	if !ok {
		return nil
	}
	arg := rawArg.(*minimumArg)
	cmp := compareRat(num, arg.bound)
	if arg.exclusive {
		if cmp > 0 {
			return nil
		}
		return fail(ec, schemaPath, documentPath, "value must be strictly greater than the minimum", arg.bound, value)
	}
	if cmp >= 0 {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "value is below the minimum", arg.bound, value)
}
