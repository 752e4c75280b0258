package jsonschema

import "strings"

func init() {
	registerKeyword("type", compileType)
}

// typeArg is the compiled form of the type keyword: a set of accepted
// primitive names plus, for draft3's schema-union form, the plan IDs of any
// alternative subschemas the array also lists.
type typeArg struct {
	names  []string
	schema []planID
}

// compileType compiles the type keyword. Grounded on the teacher's
// evaluateType in type.go, generalized to accept draft3's looser shape
// (string, or array mixing type names and subschemas) alongside the
// draft4+ shape (string, or array of strings).
func compileType(cc *compileCtx, raw any) (any, checkerFunc, error) {
	if raw == nil {
		return nil, nil, nil
	}
	arg := &typeArg{}
	switch v := raw.(type) {
	case string:
		arg.names = append(arg.names, v)
	case []any:
		for i, item := range v {
			switch t := item.(type) {
			case string:
				arg.names = append(arg.names, t)
			case map[string]any, bool:
				id, err := cc.compileChild(t, appendIndex(appendPointer(cc.pointer, "type"), i))
				if err != nil {
					return nil, nil, err
				}
				arg.schema = append(arg.schema, id)
			}
		}
	default:
		return nil, nil, nil
	}
	return arg, checkType, nil
}

func checkType(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arg := rawArg.(*typeArg)
	if len(arg.names) == 0 && len(arg.schema) == 0 {
		return nil
	}
	actual := typeOf(value)
	for _, name := range arg.names {
		if name == "number" && actual == kindInteger {
			return nil
		}
		if string(actual) == name {
			return nil
		}
	}
	for _, id := range arg.schema {
		if ok, _ := evaluateQuiet(ec, id, value, documentPath); ok {
			return nil
		}
	}
	return fail(ec, schemaPath, documentPath,
		"value is "+string(actual)+" but should be "+strings.Join(arg.names, ", "), nil, value)
}
