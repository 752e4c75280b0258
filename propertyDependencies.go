package jsonschema

func init() {
	registerKeyword("propertyDependencies", compilePropertyDependencies)
}

type propertyDependencyEntry struct {
	property string
	byValue  map[string]planID
}

// compilePropertyDependencies compiles propertyDependencies, a keyword
// with no basis in any published JSON Schema draft (spec's Open Question
// on it). It is kept as a library extension per that question's preferred
// resolution: a mapping from property name to a further mapping from that
// property's string value to the subschema that applies to the whole
// instance when the property holds that value. This makes it a
// value-conditioned generalization of dependentSchemas, which only
// conditions on presence.
func compilePropertyDependencies(cc *compileCtx, raw any) (any, checkerFunc, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, nil
	}
	var entries []propertyDependencyEntry
	for _, prop := range sortedKeys(obj) {
		valueMap, ok := obj[prop].(map[string]any)
		if !ok {
			continue
		}
		byValue := make(map[string]planID, len(valueMap))
		for _, val := range sortedKeys(valueMap) {
			id, err := cc.compileChild(valueMap[val],
				appendPointer(appendPointer(appendPointer(cc.pointer, "propertyDependencies"), prop), val))
			if err != nil {
				return nil, nil, err
			}
			byValue[val] = id
		}
		entries = append(entries, propertyDependencyEntry{property: prop, byValue: byValue})
	}
	if len(entries) == 0 {
		return nil, nil, nil
	}
	return entries, checkPropertyDependencies, nil
}

func checkPropertyDependencies(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	entries := arg.([]propertyDependencyEntry)
	var errs []*errorNode
	for _, e := range entries {
		propValue, present := obj[e.property]
		if !present {
			continue
		}
		s, ok := propValue.(string)
		if !ok {
			continue
		}
		id, ok := e.byValue[s]
		if !ok {
			continue
		}
		res, marks := evaluateMarks(ec, id, value, documentPath)
		if res.valid {
			local.merge(marks)
		} else {
			errs = append(errs, res)
		}
	}
	return errs
}
