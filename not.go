package jsonschema

func init() {
	registerKeyword("not", compileNot)
}

// compileNot compiles the not keyword. Grounded on the teacher's
// evaluateNot.
func compileNot(cc *compileCtx, raw any) (any, checkerFunc, error) {
	id, err := cc.compileChild(raw, appendPointer(cc.pointer, "not"))
	if err != nil {
		return nil, nil, err
	}
	return id, checkNot, nil
}

func checkNot(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	id := arg.(planID)
	ok, _ := evaluateQuiet(ec, id, value, documentPath)
	if !ok {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "value must not match the not schema", nil, value)
}
