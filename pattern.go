package jsonschema

import "fmt"

func init() {
	registerKeyword("pattern", compilePattern)
}

// compilePattern compiles the pattern keyword. Grounded on the teacher's
// evaluatePattern/getCompiledPattern. The regular expression is compiled
// here through the shared regex adapter (regex.go), so an invalid pattern
// fails compilation with ErrRegexCompilation; the checker then reuses the
// adapter's cached form rather than one cached on the schema node, so the
// same compiled form is shared across every plan node using an identical
// pattern string.
func compilePattern(cc *compileCtx, raw any) (any, checkerFunc, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, nil, nil
	}
	if _, err := cc.patterns.compile(s); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrRegexCompilation, s, err)
	}
	return s, checkPattern, nil
}

func checkPattern(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	pattern := arg.(string)
	matched, err := ec.patterns.matches(pattern, s)
	if err != nil {
		return fail(ec, schemaPath, documentPath, "pattern is not a valid regular expression", pattern, value)
	}
	if matched {
		return nil
	}
	return fail(ec, schemaPath, documentPath, "string does not match the required pattern", pattern, value)
}
