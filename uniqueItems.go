package jsonschema

func init() {
	registerKeyword("uniqueItems", compileUniqueItems)
}

// compileUniqueItems compiles the uniqueItems keyword. Grounded on the
// teacher's evaluateUniqueItems, replacing its string-normalization
// comparison with value.go's structural deepEqual (uniqueItems helper),
// which already gives JSON Schema's numeric/key-order-independent equality
// without building an intermediate string representation.
func compileUniqueItems(cc *compileCtx, raw any) (any, checkerFunc, error) {
	b, ok := raw.(bool)
	if !ok || !b {
		return nil, nil, nil
	}
	return nil, checkUniqueItems, nil
}

func checkUniqueItems(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arr, ok := value.([]any)
	if !ok {
		return nil
	}
	if unique, i, j := uniqueItems(arr); !unique {
		return fail(ec, schemaPath, documentPath,
			"array items are not unique", [2]int{i, j}, value)
	}
	return nil
}
