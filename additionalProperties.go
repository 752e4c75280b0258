package jsonschema

func init() {
	registerKeyword("additionalProperties", compileAdditionalProperties)
}

// compileAdditionalProperties compiles the additionalProperties keyword.
// Grounded on the teacher's evaluateAdditionalProperties, but rather than
// recomputing which property names properties/patternProperties claimed,
// the checker consults local's evaluated-properties marks directly — those
// keywords run first in dialect-resolver order (catalog.go's dependsOn),
// so their marks are already present by the time this entry runs.
func compileAdditionalProperties(cc *compileCtx, raw any) (any, checkerFunc, error) {
	id, err := cc.compileChild(raw, appendPointer(cc.pointer, "additionalProperties"))
	if err != nil {
		return nil, nil, err
	}
	return id, checkAdditionalProperties, nil
}

func checkAdditionalProperties(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	id := arg.(planID)
	var errs []*errorNode
	for _, propName := range sortedKeys(obj) {
		if local.isPropertyEvaluated(propName) {
			continue
		}
		local.markProperty(propName)
		res := evaluate(ec, id, obj[propName], appendPointer(documentPath, propName))
		if !res.valid {
			errs = append(errs, res)
		}
	}
	return errs
}
