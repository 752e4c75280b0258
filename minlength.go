package jsonschema

import "unicode/utf8"

func init() {
	registerKeyword("minLength", compileMinLength)
}

// compileMinLength compiles the minLength keyword. Grounded on the
// teacher's evaluateMinLength.
func compileMinLength(cc *compileCtx, raw any) (any, checkerFunc, error) {
	n, ok := raw.(float64)
	if !ok || n < 0 {
		return nil, nil, nil
	}
	return int(n), checkMinLength, nil
}

func checkMinLength(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	min := arg.(int)
	if utf8.RuneCountInString(s) >= min {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "string is shorter than the minimum length", min, value)
}
