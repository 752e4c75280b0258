package jsonschema

import "fmt"

func init() {
	registerKeyword("contains", compileContains)
	// maxContains/minContains have no independent effect: they only
	// modify contains' validation, so compileContains reads them
	// directly from the sibling object and these two register as no-ops.
	registerKeyword("maxContains", compileContainsNoop)
	registerKeyword("minContains", compileContainsNoop)
}

func compileContainsNoop(cc *compileCtx, raw any) (any, checkerFunc, error) {
	return nil, nil, nil
}

type containsArg struct {
	schema      planID
	minContains int
	maxContains int // -1 means unset
}

// compileContains compiles the contains keyword together with its
// minContains/maxContains modifiers. Grounded on the teacher's
// evaluateContains.
func compileContains(cc *compileCtx, raw any) (any, checkerFunc, error) {
	id, err := cc.compileChild(raw, appendPointer(cc.pointer, "contains"))
	if err != nil {
		return nil, nil, err
	}
	arg := &containsArg{schema: id, minContains: 1, maxContains: -1}
	if n, ok := cc.object["minContains"].(float64); ok && n >= 0 {
		arg.minContains = int(n)
	}
	if n, ok := cc.object["maxContains"].(float64); ok && n >= 0 {
		arg.maxContains = int(n)
	}
	return arg, checkContains, nil
}

func checkContains(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arr, ok := value.([]any)
	if !ok {
		return nil
	}
	arg := rawArg.(*containsArg)

	matched := 0
	for i, item := range arr {
		if ok, _ := evaluateQuiet(ec, arg.schema, item, appendIndex(documentPath, i)); ok {
			matched++
			local.markItem(i)
		}
	}

	if matched < arg.minContains {
		return fail(ec, schemaPath, documentPath,
			fmt.Sprintf("array must contain at least %d matching items, found %d", arg.minContains, matched), arg.minContains, value)
	}
	if arg.maxContains >= 0 && matched > arg.maxContains {
		return fail(ec, schemaPath, documentPath,
			fmt.Sprintf("array must contain at most %d matching items, found %d", arg.maxContains, matched), arg.maxContains, value)
	}
	return nil
}
