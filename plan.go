package jsonschema

// planID is a stable index into a planArena, used instead of a direct
// pointer so that reference nodes can point at plan nodes that may still be
// under construction (a schema with a self-referential $ref compiles before
// its own Composite node exists). Grounded on the teacher's approach of
// storing schemas in a *Schema cache keyed by URI and resolving lazily
// (compiler.go's resolveSchemaURL / schema.go's schemas cache) — generalized
// into an arena-of-nodes so cyclic plans never need a direct, possibly-nil
// pointer into an incomplete tree.
type planID int

const invalidPlanID planID = -1

// planKind discriminates the Plan Node variants this engine produces. A
// $ref/$recursiveRef/$dynamicRef is compiled as an ordinary catalog entry
// on its enclosing Composite (see ref.go) rather than as a distinct arena
// node kind, so that 2019-09+ schemas which allow keywords alongside $ref
// evaluate uniformly with every other applicator; the lookup-handle
// indirection spec §4.3 describes is realized instead by registry.go's
// planByLocation memoization (a RefNode's "target-resolver" is just
// resolveRef, called once when ref.go compiles the keyword).
type planKind int

const (
	planBoolean planKind = iota
	planComposite
)

// planEntry is one compiled keyword within a Composite node: the keyword
// name, its pre-compiled argument (already resolved child plan IDs, literal
// values, or a pattern string — whatever that keyword's compiler produced),
// and the checker function that evaluates it against a data value.
type planEntry struct {
	keyword string
	arg     any
	check   checkerFunc
}

// checkerFunc evaluates one keyword's compiled argument against a data
// value at the current evaluation location. schemaPath/documentPath locate
// the keyword for error reporting; local is the evaluated-items/properties
// state shared by every keyword of the enclosing Composite, which writer
// keywords (properties, items, ...) mark and reader keywords
// (unevaluatedItems/unevaluatedProperties) consult.
type checkerFunc func(ec *evalContext, arg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode

// planNode is one node of the compiled plan tree.
type planNode struct {
	kind planKind

	// Boolean
	boolValue bool

	// Composite
	location    string // schema path from the compile root, e.g. "/properties/x"
	baseURI     string
	dialect     *dialect
	entries     []planEntry
	schemaValue any // the raw decoded schema object, kept for error reporting
}

// planArena owns every plan node compiled through one registry, which all
// Compile and CompileBatch calls of a Compiler share. No code path sets
// root; each CompiledSchema holds its own root ID.
type planArena struct {
	nodes []planNode
	root  planID
}

func newPlanArena() *planArena {
	return &planArena{}
}

// reserve allocates a node slot and returns its ID before the node's
// contents are known, so a Composite under construction can be referenced
// by child ref nodes compiled before it finishes (cyclic schemas).
func (a *planArena) reserve() planID {
	a.nodes = append(a.nodes, planNode{})
	return planID(len(a.nodes) - 1)
}

func (a *planArena) set(id planID, n planNode) {
	a.nodes[id] = n
}

func (a *planArena) add(n planNode) planID {
	id := a.reserve()
	a.set(id, n)
	return id
}

func (a *planArena) get(id planID) *planNode {
	if id < 0 || int(id) >= len(a.nodes) {
		return nil
	}
	return &a.nodes[id]
}
