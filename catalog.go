package jsonschema

// catalogEntry is one row of the per-draft keyword table described by the
// dialect resolver: a keyword name, the vocabulary it belongs to, and the
// sibling keywords whose annotation-state writes it depends on. Grounded on
// the teacher's sequential, hardcoded evaluation order in validate.go —
// generalized here into an explicit, data-driven table so the same
// evaluator loop can serve every draft instead of one bespoke function per
// draft.
type catalogEntry struct {
	keyword    string
	vocabulary vocabulary
	dependsOn  []string
}

// baseCatalog lists every keyword this engine recognizes across all
// drafts, each with its full dependency set. A draft's active catalog is
// this table filtered to the keywords its dialect enables (see
// dialectCatalog). Dependency sets are drawn from spec §4.1: additionalItems
// depends on items, additionalProperties on properties+patternProperties,
// then/else on if, maxContains/minContains on contains, and
// unevaluatedItems/unevaluatedProperties on every applicator that can mark
// items/properties evaluated.
var baseCatalog = []catalogEntry{
	// Identity and structural keywords have no dependencies; like every
	// keyword whose dependencies are met, they are ordered by name.
	{keyword: "type", vocabulary: vocValidation},
	{keyword: "enum", vocabulary: vocValidation},
	{keyword: "const", vocabulary: vocValidation},

	{keyword: "multipleOf", vocabulary: vocValidation},
	{keyword: "maximum", vocabulary: vocValidation},
	{keyword: "minimum", vocabulary: vocValidation},
	{keyword: "exclusiveMaximum", vocabulary: vocValidation, dependsOn: []string{"maximum"}},
	{keyword: "exclusiveMinimum", vocabulary: vocValidation, dependsOn: []string{"minimum"}},
	{keyword: "divisibleBy", vocabulary: vocValidation},

	{keyword: "maxLength", vocabulary: vocValidation},
	{keyword: "minLength", vocabulary: vocValidation},
	{keyword: "pattern", vocabulary: vocValidation},

	{keyword: "maxItems", vocabulary: vocValidation},
	{keyword: "minItems", vocabulary: vocValidation},
	{keyword: "uniqueItems", vocabulary: vocValidation},
	{keyword: "prefixItems", vocabulary: vocApplicator},
	{keyword: "items", vocabulary: vocApplicator, dependsOn: []string{"prefixItems"}},
	{keyword: "additionalItems", vocabulary: vocApplicator, dependsOn: []string{"items"}},
	{keyword: "contains", vocabulary: vocApplicator},
	{keyword: "maxContains", vocabulary: vocValidation, dependsOn: []string{"contains"}},
	{keyword: "minContains", vocabulary: vocValidation, dependsOn: []string{"contains"}},

	{keyword: "maxProperties", vocabulary: vocValidation},
	{keyword: "minProperties", vocabulary: vocValidation},
	{keyword: "required", vocabulary: vocValidation},
	{keyword: "dependencies", vocabulary: vocApplicator},
	{keyword: "dependentRequired", vocabulary: vocValidation},
	{keyword: "dependentSchemas", vocabulary: vocApplicator},
	{keyword: "properties", vocabulary: vocApplicator},
	{keyword: "patternProperties", vocabulary: vocApplicator},
	{keyword: "additionalProperties", vocabulary: vocApplicator, dependsOn: []string{"properties", "patternProperties"}},
	{keyword: "propertyNames", vocabulary: vocApplicator},
	{keyword: "propertyDependencies", vocabulary: vocApplicator},

	{keyword: "allOf", vocabulary: vocApplicator},
	{keyword: "anyOf", vocabulary: vocApplicator},
	{keyword: "oneOf", vocabulary: vocApplicator},
	{keyword: "not", vocabulary: vocApplicator},
	{keyword: "extends", vocabulary: vocApplicator},
	{keyword: "disallow", vocabulary: vocValidation},

	{keyword: "if", vocabulary: vocApplicator},
	{keyword: "then", vocabulary: vocApplicator, dependsOn: []string{"if"}},
	{keyword: "else", vocabulary: vocApplicator, dependsOn: []string{"if"}},

	{keyword: "format", vocabulary: vocFormatAnnotation},

	{keyword: "contentEncoding", vocabulary: vocContent},
	{keyword: "contentMediaType", vocabulary: vocContent, dependsOn: []string{"contentEncoding"}},
	{keyword: "contentSchema", vocabulary: vocContent, dependsOn: []string{"contentMediaType"}},

	{keyword: "$ref", vocabulary: vocCore, dependsOn: []string{"id", "$id", "$anchor"}},
	{keyword: "$recursiveRef", vocabulary: vocCore, dependsOn: []string{"id", "$id", "$anchor"}},
	{keyword: "$dynamicRef", vocabulary: vocCore, dependsOn: []string{"id", "$id", "$anchor"}},

	{
		keyword:    "unevaluatedItems",
		vocabulary: vocUnevaluated,
		dependsOn: []string{
			"prefixItems", "items", "additionalItems", "contains",
			"uniqueItems", "allOf", "anyOf", "oneOf", "not", "if", "then", "else",
			"$ref", "$recursiveRef", "$dynamicRef",
		},
	},
	{
		keyword:    "unevaluatedProperties",
		vocabulary: vocUnevaluated,
		dependsOn: []string{
			"properties", "patternProperties", "additionalProperties",
			"propertyNames", "dependentSchemas", "propertyDependencies",
			"allOf", "anyOf", "oneOf", "not", "if", "then", "else",
			"$ref", "$recursiveRef", "$dynamicRef",
		},
	},
}

// catalogIndex maps keyword name to its entry for fast filtering.
var catalogIndex = func() map[string]catalogEntry {
	m := make(map[string]catalogEntry, len(baseCatalog))
	for _, e := range baseCatalog {
		m[e.keyword] = e
	}
	return m
}()

// dialectCatalog returns the subset (and per-draft variant) of baseCatalog
// active for d, applying the draft-specific substitutions spec §4.1 calls
// out: legacy numeric/required shapes, split dependencies, split items.
func dialectCatalog(d *dialect) []catalogEntry {
	var out []catalogEntry
	for _, e := range baseCatalog {
		switch e.keyword {
		case "prefixItems":
			if !d.hasPrefixItems {
				continue
			}
		case "additionalItems":
			if d.hasPrefixItems {
				continue
			}
		case "items":
			if d.hasPrefixItems {
				e.dependsOn = nil
			}
		case "dependencies":
			if d.splitDependencies {
				continue
			}
		case "dependentRequired", "dependentSchemas":
			if !d.splitDependencies {
				continue
			}
		case "if", "then", "else":
			if !d.hasIf {
				continue
			}
		case "unevaluatedItems", "unevaluatedProperties":
			if !d.hasUnevaluated {
				continue
			}
		case "disallow", "extends", "divisibleBy":
			if !d.hasDraft3Keywords {
				continue
			}
		case "multipleOf":
			if d.hasDraft3Keywords {
				continue
			}
		case "const", "contains", "propertyNames":
			if d.draft == Draft3 || d.draft == Draft4 {
				continue
			}
		case "$recursiveRef":
			if d.dynamicRefStyle != "recursive" {
				continue
			}
		case "$dynamicRef":
			if d.dynamicRefStyle != "dynamic" {
				continue
			}
		case "propertyDependencies":
			// library extension: always available regardless of draft.
		}
		out = append(out, e)
	}
	return out
}
