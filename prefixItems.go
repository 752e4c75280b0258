package jsonschema

func init() {
	registerKeyword("prefixItems", compilePrefixItems)
}

type prefixItemsArg struct {
	schemas []planID
}

// compilePrefixItems compiles the prefixItems keyword (2020-12+). Grounded
// on the teacher's evaluatePrefixItems, generalized to the checkerFunc/
// evaluatedState pattern and marking evaluated-item indices on local
// instead of a map parameter.
func compilePrefixItems(cc *compileCtx, raw any) (any, checkerFunc, error) {
	arr, ok := raw.([]any)
	if !ok || len(arr) == 0 {
		return nil, nil, nil
	}
	schemas := make([]planID, len(arr))
	for i, item := range arr {
		id, err := cc.compileChild(item, appendIndex(appendPointer(cc.pointer, "prefixItems"), i))
		if err != nil {
			return nil, nil, err
		}
		schemas[i] = id
	}
	return &prefixItemsArg{schemas: schemas}, checkPrefixItems, nil
}

func checkPrefixItems(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arr, ok := value.([]any)
	if !ok {
		return nil
	}
	a := arg.(*prefixItemsArg)
	var errs []*errorNode
	for i, id := range a.schemas {
		if i >= len(arr) {
			break
		}
		res := evaluate(ec, id, arr[i], appendIndex(documentPath, i))
		if res.valid {
			local.markItem(i)
		} else {
			errs = append(errs, res)
		}
	}
	return errs
}
