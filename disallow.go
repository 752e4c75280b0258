package jsonschema

func init() {
	registerKeyword("disallow", compileDisallow)
}

// disallowArg mirrors typeArg: a set of forbidden primitive names plus,
// for draft3's schema-union form, plan IDs of forbidden subschemas.
type disallowArg struct {
	names  []string
	schema []planID
}

// compileDisallow compiles draft3's disallow keyword, the negation of
// type: the instance must match none of the named types or subschemas.
// Grounded on this engine's type.go, inverted.
func compileDisallow(cc *compileCtx, raw any) (any, checkerFunc, error) {
	if raw == nil {
		return nil, nil, nil
	}
	arg := &disallowArg{}
	switch v := raw.(type) {
	case string:
		arg.names = append(arg.names, v)
	case []any:
		for i, item := range v {
			switch t := item.(type) {
			case string:
				arg.names = append(arg.names, t)
			case map[string]any, bool:
				id, err := cc.compileChild(t, appendIndex(appendPointer(cc.pointer, "disallow"), i))
				if err != nil {
					return nil, nil, err
				}
				arg.schema = append(arg.schema, id)
			}
		}
	default:
		return nil, nil, nil
	}
	return arg, checkDisallow, nil
}

func checkDisallow(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arg := rawArg.(*disallowArg)
	actual := typeOf(value)
	for _, name := range arg.names {
		if name == "number" && actual == kindInteger {
			return fail(ec, schemaPath, documentPath, "value must not be of type "+name, nil, value)
		}
		if string(actual) == name {
			return fail(ec, schemaPath, documentPath, "value must not be of type "+name, nil, value)
		}
	}
	for _, id := range arg.schema {
		if ok, _ := evaluateQuiet(ec, id, value, documentPath); ok {
			return fail(ec, schemaPath, documentPath,
				"value must not match disallowed schema", nil, value)
		}
	}
	return nil
}
