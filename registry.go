package jsonschema

import (
	"fmt"
	"strings"
	"sync"
)

// registry is the schema loader/registry component (C7): it holds every
// decoded schema document compiled or fetched so far, keyed by canonical
// URI, plus the anchor/dynamic-anchor/by-pointer secondary indices spec §4.3
// names. Grounded on the teacher's Compiler.schemas cache plus each
// Schema's anchors/dynamicAnchors maps in schema.go, unified here into one
// component shared by every compiled plan rather than living on each
// *Schema node.
type registry struct {
	mu sync.RWMutex

	// docs holds the raw decoded schema document root for each canonical
	// URI a $id has established or a loader has fetched.
	docs map[string]any

	// planByLocation memoizes compiled plan nodes by "uri#pointer", so a
	// $ref seen twice (or a cyclic schema) reuses the same planID instead
	// of recompiling. The ID is reserved and stored before the recursive
	// compile finishes, which is what lets cyclic schemas terminate: a
	// $ref back to an ancestor finds the ancestor's reserved (but still
	// under construction) ID rather than looping forever.
	planByLocation map[string]planID

	// anchors maps "baseURI#name" to the JSON Pointer location of the
	// subschema that declared that $anchor (or $dynamicAnchor), within its
	// base document. Plain-name fragments written as an id/$id value are not
	// registered here.
	anchors map[string]string

	// dynamicAnchors maps "baseURI#name" to the same, for $dynamicAnchor
	// (also populated for $recursiveAnchor: true roots under the "" name).
	dynamicAnchors map[string]string

	// loader fetches the bytes of a schema document the registry doesn't
	// already have, keyed by absolute URI. nil means no remote fetch is
	// possible; resolution of an unknown URI then fails with
	// ErrNoLoaderRegistered.
	loader SchemaLoader

	arena *planArena

	compile compileFunc

	// patterns/formats/decoders/mediaTypes are the same instances the owning
	// Compiler holds, shared here so compileComposite can populate a
	// compileCtx without threading the Compiler itself through the registry
	// (which would cycle: Compiler depends on registry already).
	patterns   *patternCache
	formats    *formatRegistry
	decoders   map[string]func(string) ([]byte, error)
	mediaTypes map[string]func([]byte) (any, error)

	strictFormat  bool
	strictInteger bool
}

// compileFunc compiles the schema document found at (baseURI, pointer)
// within doc into a plan node under dialect d, returning its planID.
// Implemented by compiler.go; registry.go only needs the function shape to
// avoid an import cycle between the two concerns.
type compileFunc func(reg *registry, doc any, baseURI, pointer string, d *dialect) (planID, error)

// SchemaLoader fetches the raw bytes of a schema document by absolute URI,
// the host capability spec §4.3 calls uri->schema. Grounded on the
// teacher's Loaders map in compiler.go (func(url string) (io.ReadCloser,
// error)), simplified to return bytes directly since this engine decodes
// with a single configurable JSON codec rather than per-scheme streaming.
type SchemaLoader func(uri string) ([]byte, error)

func newRegistry(compile compileFunc) *registry {
	return &registry{
		docs:           make(map[string]any),
		planByLocation: make(map[string]planID),
		anchors:        make(map[string]string),
		dynamicAnchors: make(map[string]string),
		arena:          newPlanArena(),
		compile:        compile,
	}
}

func anchorKey(baseURI, name string) string {
	return baseURI + "#" + name
}

func locationKey(baseURI, pointer string) string {
	return baseURI + "#" + pointer
}

// registerDocument stores a decoded schema document under its canonical
// URI, overwriting a loader-fetched placeholder if the same URI was
// explicitly compiled later.
func (r *registry) registerDocument(uri string, doc any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[canonicalize(uri)] = doc
}

func (r *registry) document(uri string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.docs[canonicalize(uri)]
	return d, ok
}

func (r *registry) registerAnchor(baseURI, name, pointer string, dynamic bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := anchorKey(baseURI, name)
	if _, exists := r.anchors[key]; exists && !dynamic {
		return fmt.Errorf("%w: %s", ErrDuplicateAnchor, key)
	}
	r.anchors[key] = pointer
	if dynamic {
		r.dynamicAnchors[key] = pointer
	}
	return nil
}

func (r *registry) anchorPointer(baseURI, name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.anchors[anchorKey(baseURI, name)]
	return p, ok
}

func (r *registry) dynamicAnchorPointer(baseURI, name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.dynamicAnchors[anchorKey(baseURI, name)]
	return p, ok
}

// lookupDynamicAnchor walks scope outermost-first and returns the plan node
// of the first frame whose base URI has a registered $dynamicAnchor called
// name. This is the teacher's DynamicScope.LookupDynamicAnchor semantics
// (validate.go), ported from a stack of *Schema to a stack of dynamicFrame.
func (r *registry) lookupDynamicAnchor(scope *dynamicScope, name string) *planNode {
	for i := 0; i < len(scope.frames); i++ {
		base := scope.frames[i].baseURI
		if pointer, ok := r.dynamicAnchorPointer(base, name); ok {
			doc, ok := r.document(base)
			if !ok {
				continue
			}
			id, err := r.compile(r, doc, base, pointer, scope.frames[i].node.dialect)
			if err != nil {
				continue
			}
			return r.arena.get(id)
		}
	}
	return nil
}

// resolveRef splits ref against base, loads the target document if
// necessary, interprets the fragment as a JSON Pointer or anchor name per
// spec §4.3 step 3, and compiles (or returns the memoized) plan node for
// it.
func (r *registry) resolveRef(baseURI, ref string, d *dialect) (planID, error) {
	resolved := resolveURI(baseURI, ref)
	uri, fragment := splitFragment(resolved)
	uri = canonicalize(uri)

	doc, ok := r.document(uri)
	if !ok {
		fetched, err := r.fetch(uri)
		if err != nil {
			return invalidPlanID, err
		}
		doc = fetched
	}

	pointer := fragment
	if fragment != "" && !strings.HasPrefix(fragment, "/") {
		// Anchor name fragment.
		p, ok := r.anchorPointer(uri, fragment)
		if !ok {
			return invalidPlanID, fmt.Errorf("%w: %s#%s", ErrReferenceResolution, uri, fragment)
		}
		pointer = p
	}

	key := locationKey(uri, pointer)
	r.mu.RLock()
	if id, ok := r.planByLocation[key]; ok {
		r.mu.RUnlock()
		return id, nil
	}
	r.mu.RUnlock()

	return r.compile(r, doc, uri, pointer, d)
}

// fetch invokes the registered loader for uri, decodes it, and registers
// the resulting document, or fails with ErrNoLoaderRegistered /
// ErrRemoteFetch.
func (r *registry) fetch(uri string) (any, error) {
	r.mu.RLock()
	loader := r.loader
	r.mu.RUnlock()
	if loader == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoLoaderRegistered, uri)
	}
	raw, err := loader(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRemoteFetch, uri, err)
	}
	doc, err := decodeJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRemoteFetch, uri, err)
	}
	r.registerDocument(uri, doc)
	return doc, nil
}

// memoize records id as the compiled plan for (baseURI, pointer), called by
// the compiler immediately after reserving the node's arena slot.
func (r *registry) memoize(baseURI, pointer string, id planID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.planByLocation[locationKey(baseURI, pointer)] = id
}

func (r *registry) memoized(baseURI, pointer string) (planID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.planByLocation[locationKey(baseURI, pointer)]
	return id, ok
}
