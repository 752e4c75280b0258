package jsonschema

func init() {
	registerKeyword("unevaluatedItems", compileUnevaluatedItems)
}

// compileUnevaluatedItems compiles the unevaluatedItems keyword. Grounded on
// the teacher's evaluateUnevaluatedItems, simplified since this engine
// tracks evaluated indexes on the shared evaluatedState (local) rather than
// a map threaded by hand through every sibling evaluate call: by the time
// this entry runs (the dialect resolver orders it last), every applicator
// that can mark an index evaluated already has.
func compileUnevaluatedItems(cc *compileCtx, raw any) (any, checkerFunc, error) {
	id, err := cc.compileChild(raw, appendPointer(cc.pointer, "unevaluatedItems"))
	if err != nil {
		return nil, nil, err
	}
	return id, checkUnevaluatedItems, nil
}

func checkUnevaluatedItems(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	id := rawArg.(planID)
	arr, ok := value.([]any)
	if !ok {
		return nil
	}
	var errs []*errorNode
	for i, item := range arr {
		if local.isItemEvaluated(i) {
			continue
		}
		res := evaluate(ec, id, item, appendIndex(documentPath, i))
		if res.valid {
			local.markItem(i)
		} else {
			errs = append(errs, res)
		}
	}
	return errs
}
