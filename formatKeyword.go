package jsonschema

func init() {
	registerKeyword("format", compileFormat)
}

type formatArg struct {
	name   string
	assert bool
}

// compileFormat compiles the format keyword. Grounded on the teacher's
// evaluateFormat, generalized to consult the dialect's assertFormat flag
// (plus the compiler's strictFormat override) instead of a single
// Compiler.AssertFormat switch, since a format-as-assertion decision is
// drawn per draft here rather than per compiler instance.
func compileFormat(cc *compileCtx, raw any) (any, checkerFunc, error) {
	name, ok := raw.(string)
	if !ok || name == "" {
		return nil, nil, nil
	}
	assert := cc.dialect.requiresFormatAssertion()
	if cc.strictFormat {
		assert = true
	}
	return &formatArg{name: name, assert: assert}, checkFormat, nil
}

func checkFormat(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arg := rawArg.(*formatArg)
	matched, known := ec.formats.check(arg.name, value)
	if matched || !known || !arg.assert {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "value does not match format "+arg.name, arg.name, value)
}
