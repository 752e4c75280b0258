package jsonschema

import "strings"

func init() {
	registerKeyword("$ref", compileRef)
	registerKeyword("$recursiveRef", compileRecursiveRef)
	registerKeyword("$dynamicRef", compileDynamicRef)
}

// refArg is the compiled form of $ref: the target plan node resolved once
// at compile time (registry.resolveRef memoizes by location, so a cyclic
// $ref resolves to the same reserved planID its own ancestor is still
// compiling under) and the target's base URI, pushed onto the dynamic scope
// while the target evaluates so a $dynamicRef reached through it can see
// this schema resource as an enclosing scope.
type refArg struct {
	target  planID
	baseURI string
}

// compileRef compiles the $ref keyword. Grounded on the teacher's
// Schema.resolveRef plus resolveRefWithFullURL, collapsed into one eager
// registry.resolveRef call since this engine resolves references through a
// single shared registry rather than a per-Schema parent-chain walk.
func compileRef(cc *compileCtx, raw any) (any, checkerFunc, error) {
	ref, ok := raw.(string)
	if !ok || ref == "" {
		return nil, nil, nil
	}
	id, err := cc.reg.resolveRef(cc.baseURI, ref, cc.dialect)
	if err != nil {
		return nil, nil, err
	}
	uri, _ := splitFragment(resolveURI(cc.baseURI, ref))
	return &refArg{target: id, baseURI: canonicalize(uri)}, checkRef, nil
}

func checkRef(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arg := rawArg.(*refArg)
	node := ec.registry.arena.get(arg.target)
	ec.scope.push(dynamicFrame{baseURI: arg.baseURI, node: node})
	defer ec.scope.pop()
	res, marks := evaluateResolvedMarks(ec, node, value, documentPath)
	if res.valid {
		local.merge(marks)
		return nil
	}
	return []*errorNode{res}
}

// dynamicRefArg is the compiled form shared by $recursiveRef and
// $dynamicRef: a static fallback target (resolved the same way a plain
// $ref would be) plus the anchor name a matching $recursiveAnchor/
// $dynamicAnchor further out in the dynamic scope can override. anchorName
// is always "" for $recursiveRef, which only ever targets the root
// $recursiveAnchor registration (see compile.go's compileComposite).
type dynamicRefArg struct {
	staticTarget  planID
	staticBaseURI string
	anchorName    string
}

// compileRecursiveRef compiles $recursiveRef (2019-09). Grounded on the
// teacher's resolveAnchor/DynamicScope.LookupDynamicAnchor pairing,
// specialized to the fixed "" anchor name $recursiveAnchor always
// registers under.
func compileRecursiveRef(cc *compileCtx, raw any) (any, checkerFunc, error) {
	ref, ok := raw.(string)
	if !ok || ref == "" {
		ref = "#"
	}
	return compileDynamicArg(cc, ref, "")
}

// compileDynamicRef compiles $dynamicRef (2020-12+), extracting the
// fragment name a same-named $dynamicAnchor further out in the dynamic
// scope can override.
func compileDynamicRef(cc *compileCtx, raw any) (any, checkerFunc, error) {
	ref, ok := raw.(string)
	if !ok || ref == "" {
		return nil, nil, nil
	}
	resolved := resolveURI(cc.baseURI, ref)
	_, fragment := splitFragment(resolved)
	anchorName := fragment
	if strings.HasPrefix(anchorName, "/") {
		// A JSON-Pointer fragment is never dynamic; treat the same as $ref.
		anchorName = ""
	}
	return compileDynamicArg(cc, ref, anchorName)
}

func compileDynamicArg(cc *compileCtx, ref, anchorName string) (any, checkerFunc, error) {
	id, err := cc.reg.resolveRef(cc.baseURI, ref, cc.dialect)
	if err != nil {
		return nil, nil, err
	}
	uri, _ := splitFragment(resolveURI(cc.baseURI, ref))
	return &dynamicRefArg{
		staticTarget:  id,
		staticBaseURI: canonicalize(uri),
		anchorName:    anchorName,
	}, checkDynamicRef, nil
}

func checkDynamicRef(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arg := rawArg.(*dynamicRefArg)

	node := ec.registry.arena.get(arg.staticTarget)
	baseURI := arg.staticBaseURI
	if found := ec.registry.lookupDynamicAnchor(ec.scope, arg.anchorName); found != nil {
		node = found
		baseURI = found.baseURI
	}

	ec.scope.push(dynamicFrame{baseURI: baseURI, node: node})
	defer ec.scope.pop()
	res, marks := evaluateResolvedMarks(ec, node, value, documentPath)
	if res.valid {
		local.merge(marks)
		return nil
	}
	return []*errorNode{res}
}

// evaluateResolvedMarks behaves like evaluateMarks but starts from an
// already-dereferenced *planNode, needed here since
// registry.lookupDynamicAnchor returns a node directly rather than a planID.
func evaluateResolvedMarks(ec *evalContext, node *planNode, value any, documentPath string) (*errorNode, *evaluatedState) {
	if node == nil {
		return newErrorNode(documentPath, documentPath, "unresolved schema reference", nil, value), nil
	}
	if node.kind == planBoolean {
		if node.boolValue {
			return newValidNode("", documentPath), newEvaluatedState()
		}
		return newErrorNode("", documentPath, "false schema never validates", false, value), nil
	}
	return evalCompositeMarks(ec, node, value, documentPath)
}
