package jsonschema

import "unicode/utf8"

func init() {
	registerKeyword("maxLength", compileMaxLength)
}

// compileMaxLength compiles the maxLength keyword. Grounded on the
// teacher's evaluateMaxLength, keeping its utf8.RuneCountInString length
// definition (RFC 8259 characters, not bytes).
func compileMaxLength(cc *compileCtx, raw any) (any, checkerFunc, error) {
	n, ok := raw.(float64)
	if !ok || n < 0 {
		return nil, nil, nil
	}
	return int(n), checkMaxLength, nil
}

func checkMaxLength(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	max := arg.(int)
	if utf8.RuneCountInString(s) <= max {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "string is longer than the maximum length", max, value)
}
