package jsonschema

func init() {
	registerKeyword("extends", compileExtends)
}

// compileExtends compiles draft3's extends keyword: a schema, or array of
// schemas, every one of which the instance must also validate against —
// draft3's name for what draft4+ renamed allOf. Grounded on this engine's
// own allOf.go, reused verbatim since extends has identical semantics
// except for accepting a single schema (not just an array) directly.
func compileExtends(cc *compileCtx, raw any) (any, checkerFunc, error) {
	var arr []any
	switch v := raw.(type) {
	case []any:
		arr = v
	case map[string]any, bool:
		arr = []any{v}
	default:
		return nil, nil, nil
	}
	if len(arr) == 0 {
		return nil, nil, nil
	}
	schemas := make([]planID, len(arr))
	for i, item := range arr {
		id, err := cc.compileChild(item, appendIndex(appendPointer(cc.pointer, "extends"), i))
		if err != nil {
			return nil, nil, err
		}
		schemas[i] = id
	}
	return schemas, checkAllOf, nil
}
