package jsonschema

import "strings"

func init() {
	registerKeyword("properties", compileProperties)
}

type propertyEntry struct {
	name   string
	schema planID
}

// propertiesArg bundles the compiled per-property schemas with, for
// draft3's legacyRequired dialect, the names of properties whose own
// subschema carried a "required": true sibling — draft3's per-property
// spelling of what draft4+ hoisted into the schema-level required array
// (see required.go, a no-op for legacyRequired dialects).
type propertiesArg struct {
	entries  []propertyEntry
	required []string
}

// compileProperties compiles the properties keyword. Grounded on the
// teacher's evaluateProperties, trimmed of its isRequired/defaultIsSpecified
// special-casing for absent-but-required properties: spec's invariants
// treat a missing property as simply unevaluated rather than synthesizing
// a null instance to validate against its schema, so that behavior is not
// carried forward here.
func compileProperties(cc *compileCtx, raw any) (any, checkerFunc, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, nil
	}
	var entries []propertyEntry
	var required []string
	for _, key := range sortedKeys(obj) {
		id, err := cc.compileChild(obj[key], appendPointer(appendPointer(cc.pointer, "properties"), key))
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, propertyEntry{name: key, schema: id})
		if cc.dialect.legacyRequired {
			if sub, ok := obj[key].(map[string]any); ok {
				if req, ok := sub["required"].(bool); ok && req {
					required = append(required, key)
				}
			}
		}
	}
	if len(entries) == 0 {
		return nil, nil, nil
	}
	return &propertiesArg{entries: entries, required: required}, checkProperties, nil
}

func checkProperties(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	arg := rawArg.(*propertiesArg)
	var errs []*errorNode
	for _, e := range arg.entries {
		propValue, exists := obj[e.name]
		if !exists {
			continue
		}
		local.markProperty(e.name)
		res := evaluate(ec, e.schema, propValue, appendPointer(documentPath, e.name))
		if !res.valid {
			errs = append(errs, res)
		}
	}
	if len(arg.required) > 0 {
		var missing []string
		for _, name := range arg.required {
			if _, exists := obj[name]; !exists {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			errs = append(errs, fail(ec, schemaPath, documentPath,
				"missing required properties: "+strings.Join(missing, ", "), arg.required, value)...)
		}
	}
	return errs
}
