package jsonschema

func init() {
	registerKeyword("if", compileIf)
	// then/else have no independent effect: compileIf reads both siblings
	// directly and compiles the whole if/then/else group into one entry.
	registerKeyword("then", compileConditionalNoop)
	registerKeyword("else", compileConditionalNoop)
}

func compileConditionalNoop(cc *compileCtx, raw any) (any, checkerFunc, error) {
	return nil, nil, nil
}

type conditionalArg struct {
	ifSchema   planID
	thenSchema planID // invalidPlanID if absent
	elseSchema planID // invalidPlanID if absent
}

// compileIf compiles the if/then/else trio as a single keyword entry.
// Grounded on the teacher's evaluateConditional.
func compileIf(cc *compileCtx, raw any) (any, checkerFunc, error) {
	ifID, err := cc.compileChild(raw, appendPointer(cc.pointer, "if"))
	if err != nil {
		return nil, nil, err
	}
	arg := &conditionalArg{ifSchema: ifID, thenSchema: invalidPlanID, elseSchema: invalidPlanID}
	if thenRaw, ok := cc.object["then"]; ok {
		id, err := cc.compileChild(thenRaw, appendPointer(cc.pointer, "then"))
		if err != nil {
			return nil, nil, err
		}
		arg.thenSchema = id
	}
	if elseRaw, ok := cc.object["else"]; ok {
		id, err := cc.compileChild(elseRaw, appendPointer(cc.pointer, "else"))
		if err != nil {
			return nil, nil, err
		}
		arg.elseSchema = id
	}
	return arg, checkConditional, nil
}

func checkConditional(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arg := rawArg.(*conditionalArg)
	ifOK, ifMarks := evaluateQuiet(ec, arg.ifSchema, value, documentPath)

	if ifOK {
		local.merge(ifMarks)
		if arg.thenSchema == invalidPlanID {
			return nil
		}
		res, marks := evaluateMarks(ec, arg.thenSchema, value, documentPath)
		if res.valid {
			local.merge(marks)
			return nil
		}
		return []*errorNode{res}
	}

	if arg.elseSchema == invalidPlanID {
		return nil
	}
	res, marks := evaluateMarks(ec, arg.elseSchema, value, documentPath)
	if res.valid {
		local.merge(marks)
		return nil
	}
	return []*errorNode{res}
}
