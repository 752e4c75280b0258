package jsonschema

func init() {
	registerKeyword("propertyNames", compilePropertyNames)
}

// compilePropertyNames compiles the propertyNames keyword. Grounded on the
// teacher's evaluatePropertyNames.
func compilePropertyNames(cc *compileCtx, raw any) (any, checkerFunc, error) {
	id, err := cc.compileChild(raw, appendPointer(cc.pointer, "propertyNames"))
	if err != nil {
		return nil, nil, err
	}
	return id, checkPropertyNames, nil
}

func checkPropertyNames(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	id := arg.(planID)
	var errs []*errorNode
	for _, propName := range sortedKeys(obj) {
		res := evaluate(ec, id, propName, appendPointer(documentPath, propName))
		if !res.valid {
			errs = append(errs, res)
		}
	}
	return errs
}
