package jsonschema

// errorNode is the raw, internal evaluation result for one schema
// location, built bottom-up during Evaluate and never mutated afterward.
// Grounded on the teacher's EvaluationResult in result.go, trimmed to the
// shape spec §3 names: schemaPath, documentPath, message, valid, errors,
// schema, document. The teacher's annotation-collection fields
// (Annotations, title/description/default bookkeeping) are not carried; the
// only annotation state this engine keeps is annotation.go's
// evaluatedState, threaded explicitly instead of copied onto each result.
type errorNode struct {
	schemaPath   string
	documentPath string
	message      string
	valid        bool
	errors       []*errorNode
	schema       any
	document     any
}

// newErrorNode builds a leaf validation failure at the given paths.
func newErrorNode(schemaPath, documentPath, message string, schema, document any) *errorNode {
	return &errorNode{
		schemaPath:   schemaPath,
		documentPath: documentPath,
		message:      message,
		valid:        false,
		schema:       schema,
		document:     document,
	}
}

// newValidNode builds a passing node for a location, optionally wrapping
// child results (e.g. an allOf node is valid iff every child is valid).
func newValidNode(schemaPath, documentPath string, children ...*errorNode) *errorNode {
	return &errorNode{
		schemaPath:   schemaPath,
		documentPath: documentPath,
		valid:        true,
		errors:       children,
	}
}

// newInvalidGroup wraps child results under a combinator location, valid
// iff every child is valid, mirroring allOf/properties/items-style
// aggregation: a parent is invalid iff at least one child is invalid.
func newInvalidGroup(schemaPath, documentPath string, children []*errorNode) *errorNode {
	valid := true
	for _, c := range children {
		if c != nil && !c.valid {
			valid = false
			break
		}
	}
	return &errorNode{
		schemaPath:   schemaPath,
		documentPath: documentPath,
		valid:        valid,
		errors:       children,
	}
}

// fail builds a single-element error slice for a keyword mismatch, skipping
// message/schema/document construction entirely in quiet mode since only
// the caller's pass/fail check on validity is ever consulted there.
func fail(ec *evalContext, schemaPath, documentPath, message string, schema, document any) []*errorNode {
	if ec.quiet {
		return []*errorNode{{valid: false}}
	}
	return []*errorNode{newErrorNode(schemaPath, documentPath, message, schema, document)}
}

// flattenErrors walks the tree collecting every invalid leaf/interior node
// that carries its own message, used by the reformatter to build the public
// flat error list.
func flattenErrors(n *errorNode, out *[]*errorNode) {
	if n == nil {
		return
	}
	if !n.valid && n.message != "" {
		*out = append(*out, n)
	}
	for _, c := range n.errors {
		flattenErrors(c, out)
	}
}
