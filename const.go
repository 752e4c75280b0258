package jsonschema

func init() {
	registerKeyword("const", compileConst)
}

// compileConst compiles the const keyword. Grounded on the teacher's
// evaluateConst; the teacher's separate null-mismatch error code collapses
// here because deepEqual's nil branch already produces the right verdict
// for a null constant, so a single message covers every mismatch.
func compileConst(cc *compileCtx, raw any) (any, checkerFunc, error) {
	if _, present := cc.object["const"]; !present {
		return nil, nil, nil
	}
	return raw, checkConst, nil
}

func checkConst(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	if deepEqual(value, arg) {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "value does not match the constant value", arg, value)
}
