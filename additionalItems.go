package jsonschema

func init() {
	registerKeyword("additionalItems", compileAdditionalItems)
}

// compileAdditionalItems compiles the pre-2020-12 additionalItems keyword,
// which only has effect when items is the legacy tuple-array form; a
// single-schema items (or an absent items) leaves nothing "additional" to
// constrain. Grounded on the pattern of the teacher's
// evaluateAdditionalProperties (applying a schema to the instance entries
// a sibling keyword's annotation left unmarked), adapted from property
// names to array indices beyond the tuple length.
func compileAdditionalItems(cc *compileCtx, raw any) (any, checkerFunc, error) {
	tupleLen, ok := itemsTupleLength(cc.object)
	if !ok {
		return nil, nil, nil
	}
	id, err := cc.compileChild(raw, appendPointer(cc.pointer, "additionalItems"))
	if err != nil {
		return nil, nil, err
	}
	return &itemsArg{schema: id, startIndex: tupleLen}, checkItems, nil
}

// itemsTupleLength reports the length of items' tuple-array form, if obj's
// items is in that shape.
func itemsTupleLength(obj map[string]any) (int, bool) {
	arr, ok := obj["items"].([]any)
	if !ok {
		return 0, false
	}
	return len(arr), true
}
