package jsonschema

func init() {
	registerKeyword("unevaluatedProperties", compileUnevaluatedProperties)
}

// compileUnevaluatedProperties compiles the unevaluatedProperties keyword.
// Grounded on the teacher's evaluateUnevaluatedProperties, same
// shared-evaluatedState simplification as unevaluatedItems.
func compileUnevaluatedProperties(cc *compileCtx, raw any) (any, checkerFunc, error) {
	id, err := cc.compileChild(raw, appendPointer(cc.pointer, "unevaluatedProperties"))
	if err != nil {
		return nil, nil, err
	}
	return id, checkUnevaluatedProperties, nil
}

func checkUnevaluatedProperties(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	id := rawArg.(planID)
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	var errs []*errorNode
	for _, name := range sortedKeys(obj) {
		if local.isPropertyEvaluated(name) {
			continue
		}
		res := evaluate(ec, id, obj[name], appendPointer(documentPath, name))
		if res.valid {
			local.markProperty(name)
		} else {
			errs = append(errs, res)
		}
	}
	return errs
}
