package jsonschema

func init() {
	registerKeyword("items", compileItems)
}

type itemsArg struct {
	// tuple holds one plan per element for the legacy draft3-2019-09 tuple
	// form (items is an array of schemas). nil when items is a single
	// schema (uniform or, under hasPrefixItems, the remainder schema).
	tuple []planID
	// schema is the single schema applying from startIndex on.
	schema planID
	// startIndex is the first array index the single schema applies to:
	// len(prefixItems) under hasPrefixItems dialects and 0 otherwise for
	// items itself, and the items tuple length when additionalItems.go
	// builds an itemsArg for the remainder.
	startIndex int
}

// compileItems compiles the items keyword across every dialect shape:
// draft3-2019-09 accept either a single schema (applies to every element)
// or an array of schemas (tuple typing, with additionalItems.go covering
// the remainder); 2020-12+ accept only a single schema, applying strictly
// after prefixItems. Grounded on the teacher's evaluateItems, generalized
// from its fixed 2020-12-only prefixItems+items split.
func compileItems(cc *compileCtx, raw any) (any, checkerFunc, error) {
	if cc.dialect.hasPrefixItems {
		id, err := cc.compileChild(raw, appendPointer(cc.pointer, "items"))
		if err != nil {
			return nil, nil, err
		}
		start := 0
		if prefix, ok := cc.object["prefixItems"].([]any); ok {
			start = len(prefix)
		}
		return &itemsArg{schema: id, startIndex: start}, checkItems, nil
	}

	if arr, ok := raw.([]any); ok {
		tuple := make([]planID, len(arr))
		for i, item := range arr {
			id, err := cc.compileChild(item, appendIndex(appendPointer(cc.pointer, "items"), i))
			if err != nil {
				return nil, nil, err
			}
			tuple[i] = id
		}
		return &itemsArg{tuple: tuple}, checkItems, nil
	}

	id, err := cc.compileChild(raw, appendPointer(cc.pointer, "items"))
	if err != nil {
		return nil, nil, err
	}
	return &itemsArg{schema: id, startIndex: 0}, checkItems, nil
}

func checkItems(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arr, ok := value.([]any)
	if !ok {
		return nil
	}
	a := rawArg.(*itemsArg)
	var errs []*errorNode

	if a.tuple != nil {
		for i, id := range a.tuple {
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

	for i := a.startIndex; i < len(arr); i++ {
		res := evaluate(ec, a.schema, arr[i], appendIndex(documentPath, i))
		if res.valid {
			local.markItem(i)
		} else {
			errs = append(errs, res)
		}
	}
	return errs
}
