package jsonschema

import "fmt"

// globalResolver is the dialect resolver shared by every Compiler instance.
// It is purely a memoized pure function of (draft, key-set) -> order, so
// sharing it across compilers only grows the cache hit rate; it carries no
// per-compiler state. Grounded on spec §4.2's instruction that the resolver
// be memoized on (draft, key-set).
var globalResolver = newResolver()

// keywordCompiler compiles one keyword's raw schema value into a checker's
// pre-compiled argument plus the checker function itself. Implemented once
// per keyword (type.go, enum.go, properties.go, ...), each registering
// itself in keywordCompilers via init() — the same self-registration
// pattern the teacher's compiler.go uses for RegisterFormat/RegisterLoader,
// applied to keyword checkers instead of host plug-ins.
type keywordCompiler func(cc *compileCtx, raw any) (arg any, check checkerFunc, err error)

var keywordCompilers = make(map[string]keywordCompiler)

func registerKeyword(name string, kc keywordCompiler) {
	keywordCompilers[name] = kc
}

// compileCtx carries everything a keyword's compiler needs: the registry
// (to recurse into child schemas and resolve refs), the raw schema object
// the keyword belongs to (for reading sibling values for keywords whose
// compiled form depends on a sibling, e.g. additionalItems on items' tuple
// length), the current base URI and pointer (to recurse and to stamp plan
// node locations), and the active dialect.
type compileCtx struct {
	reg      *registry
	doc      any
	object   map[string]any
	baseURI  string
	pointer  string
	dialect  *dialect
	patterns *patternCache
	formats  *formatRegistry

	strictFormat  bool
	strictInteger bool
}

// compileChild compiles the subschema at object[key] (or, for positional
// keywords like items' array form, a raw value passed directly) into a
// plan node and returns its ID.
func (cc *compileCtx) compileChild(raw any, childPointer string) (planID, error) {
	return compileValue(cc.reg, raw, cc.baseURI, childPointer, cc.dialect)
}

// compileAt is the registry's compileFunc: it resolves (doc, baseURI,
// pointer) to the schema value at that location and compiles it, memoizing
// on (baseURI, pointer) so repeated or cyclic references reuse the same
// plan node. This is the one indirection registry.go depends on without
// importing this file's keyword machinery, breaking what would otherwise
// be an import cycle between "the registry resolves refs" and "the
// compiler recurses through the registry".
func compileAt(reg *registry, doc any, baseURI, pointer string, d *dialect) (planID, error) {
	if id, ok := reg.memoized(baseURI, pointer); ok {
		return id, nil
	}
	raw, ok := navigate(doc, pointer)
	if !ok {
		return invalidPlanID, fmt.Errorf("%w: %s#%s", ErrInvalidPointer, baseURI, pointer)
	}
	id := reg.arena.reserve()
	reg.memoize(baseURI, pointer, id)

	node, err := compileSchemaValue(reg, doc, raw, baseURI, pointer, d)
	if err != nil {
		return invalidPlanID, err
	}
	reg.arena.set(id, node)
	return id, nil
}

// compileValue compiles a schema value already in hand (used when
// recursing into a child whose raw value the caller already navigated to,
// such as an allOf member or a properties entry) under a fresh location,
// reusing the memoization cache the same way compileAt does.
func compileValue(reg *registry, raw any, baseURI, pointer string, d *dialect) (planID, error) {
	if id, ok := reg.memoized(baseURI, pointer); ok {
		return id, nil
	}
	id := reg.arena.reserve()
	reg.memoize(baseURI, pointer, id)
	node, err := compileSchemaValue(reg, nil, raw, baseURI, pointer, d)
	if err != nil {
		return invalidPlanID, err
	}
	reg.arena.set(id, node)
	return id, nil
}

func compileSchemaValue(reg *registry, doc, raw any, baseURI, pointer string, d *dialect) (planNode, error) {
	switch v := raw.(type) {
	case bool:
		return planNode{kind: planBoolean, boolValue: v}, nil
	case map[string]any:
		return compileComposite(reg, doc, v, baseURI, pointer, d)
	default:
		return planNode{}, fmt.Errorf("%w: at %s#%s", ErrInvalidSchemaShape, baseURI, pointer)
	}
}

// compileComposite implements spec §4.4 steps 2-5: dialect switch via
// $schema, base-URI push via $id/id, anchor registration, dialect-resolver
// ordering, and per-keyword compilation into a Composite plan node.
func compileComposite(reg *registry, doc any, obj map[string]any, baseURI, pointer string, d *dialect) (planNode, error) {
	if s, ok := obj["$schema"].(string); ok {
		if switched, ok := draftFromSchemaURI(s); ok {
			d = dialectFor(switched)
		}
	}

	nodeBaseURI := baseURI
	if idVal, ok := obj[d.idKeyword].(string); ok && idVal != "" && pointer != "" {
		nodeBaseURI = canonicalize(resolveURI(baseURI, idVal))
		reg.registerDocument(nodeBaseURI, obj)
		pointer = ""
		if doc != nil {
			doc = obj
		}
	}

	if name, ok := obj["$anchor"].(string); ok && name != "" {
		if err := reg.registerAnchor(nodeBaseURI, name, pointer, false); err != nil {
			return planNode{}, err
		}
	}
	if name, ok := obj["$dynamicAnchor"].(string); ok && name != "" {
		if err := reg.registerAnchor(nodeBaseURI, name, pointer, true); err != nil {
			return planNode{}, err
		}
	}
	if recursive, ok := obj["$recursiveAnchor"].(bool); ok && recursive {
		if err := reg.registerAnchor(nodeBaseURI, "", pointer, true); err != nil {
			return planNode{}, err
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	order := globalResolver.order(d, keys)

	cc := &compileCtx{
		reg: reg, doc: doc, object: obj, baseURI: nodeBaseURI, pointer: pointer, dialect: d,
		patterns: reg.patterns, formats: reg.formats,
		strictFormat: reg.strictFormat, strictInteger: reg.strictInteger,
	}

	entries := make([]planEntry, 0, len(order))
	for _, key := range order {
		kc, ok := keywordCompilers[key]
		if !ok {
			continue
		}
		arg, check, err := kc(cc, obj[key])
		if err != nil {
			return planNode{}, fmt.Errorf("%w: keyword %q at %s#%s: %v", ErrSchemaCompilation, key, nodeBaseURI, pointer, err)
		}
		if check == nil {
			continue
		}
		entries = append(entries, planEntry{keyword: key, arg: arg, check: check})
	}

	return planNode{
		kind:        planComposite,
		location:    pointer,
		baseURI:     nodeBaseURI,
		dialect:     d,
		entries:     entries,
		schemaValue: obj,
	}, nil
}
