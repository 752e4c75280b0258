package jsonschema

import "fmt"

func init() {
	registerKeyword("contentEncoding", compileContentEncoding)
	registerKeyword("contentMediaType", compileContentMediaType)
	registerKeyword("contentSchema", compileContentSchema)
}

// decodeContent decodes s through encoding (if named) and then unmarshals
// the result through mediaType (if named), the two-stage pipeline spec's
// content vocabulary describes. Shared by contentMediaType's and
// contentSchema's checkers since both need the same decoded bytes. Grounded
// on the teacher's evaluateContent, split into an independent helper since
// this engine evaluates contentEncoding/contentMediaType/contentSchema as
// three separate catalog entries rather than one combined evaluator call.
func decodeContent(ec *evalContext, s, encoding, mediaType string) (any, error) {
	content := []byte(s)
	if encoding != "" {
		decoder, ok := ec.decoders[encoding]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, encoding)
		}
		decoded, err := decoder(s)
		if err != nil {
			return nil, err
		}
		content = decoded
	}
	if mediaType == "" {
		return content, nil
	}
	unmarshal, ok := ec.mediaTypes[mediaType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
	return unmarshal(content)
}

type contentEncodingArg struct {
	encoding string
	assert   bool
}

// compileContentEncoding compiles the contentEncoding keyword. It has no
// sibling dependency of its own: it only checks that the instance decodes
// cleanly under the named codec. assert mirrors dialect.assertContent
// (true only for draft7, where content keywords reject a mismatch rather
// than merely annotating it).
func compileContentEncoding(cc *compileCtx, raw any) (any, checkerFunc, error) {
	name, ok := raw.(string)
	if !ok || name == "" {
		return nil, nil, nil
	}
	return &contentEncodingArg{encoding: name, assert: cc.dialect.assertContent}, checkContentEncoding, nil
}

func checkContentEncoding(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arg := rawArg.(*contentEncodingArg)
	s, ok := value.(string)
	if !ok {
		return nil
	}
	if _, err := decodeContent(ec, s, arg.encoding, ""); err != nil && arg.assert {
		return fail(ec, schemaPath, documentPath, "value is not valid "+arg.encoding+" content: "+err.Error(), arg.encoding, value)
	}
	return nil
}

type contentMediaTypeArg struct {
	mediaType string
	encoding  string
	assert    bool
}

// compileContentMediaType compiles the contentMediaType keyword, reading
// the contentEncoding sibling directly since decoding must happen before
// the media type unmarshaler runs.
func compileContentMediaType(cc *compileCtx, raw any) (any, checkerFunc, error) {
	name, ok := raw.(string)
	if !ok || name == "" {
		return nil, nil, nil
	}
	encoding, _ := cc.object["contentEncoding"].(string)
	return &contentMediaTypeArg{mediaType: name, encoding: encoding, assert: cc.dialect.assertContent}, checkContentMediaType, nil
}

func checkContentMediaType(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arg := rawArg.(*contentMediaTypeArg)
	s, ok := value.(string)
	if !ok {
		return nil
	}
	if _, err := decodeContent(ec, s, arg.encoding, arg.mediaType); err != nil && arg.assert {
		return fail(ec, schemaPath, documentPath, "value does not match media type "+arg.mediaType+": "+err.Error(), arg.mediaType, value)
	}
	return nil
}

type contentSchemaArg struct {
	schema    planID
	encoding  string
	mediaType string
	assert    bool
}

// compileContentSchema compiles the contentSchema keyword, reading both
// contentEncoding and contentMediaType siblings so its checker can decode
// and parse the instance the same way contentMediaType's checker does
// before validating the parsed value against schema.
func compileContentSchema(cc *compileCtx, raw any) (any, checkerFunc, error) {
	id, err := cc.compileChild(raw, appendPointer(cc.pointer, "contentSchema"))
	if err != nil {
		return nil, nil, err
	}
	encoding, _ := cc.object["contentEncoding"].(string)
	mediaType, _ := cc.object["contentMediaType"].(string)
	return &contentSchemaArg{schema: id, encoding: encoding, mediaType: mediaType, assert: cc.dialect.assertContent}, checkContentSchema, nil
}

func checkContentSchema(ec *evalContext, rawArg any, value any, schemaPath, documentPath string, local *evaluatedState) []*errorNode {
	arg := rawArg.(*contentSchemaArg)
	s, ok := value.(string)
	if !ok {
		return nil
	}
	parsed, err := decodeContent(ec, s, arg.encoding, arg.mediaType)
	if err != nil {
		if arg.assert {
			return fail(ec, schemaPath, documentPath, "content could not be decoded for contentSchema: "+err.Error(), nil, value)
		}
		return nil
	}
	res := evaluate(ec, arg.schema, parsed, documentPath)
	if res.valid || !arg.assert {
		return nil
	}
	return []*errorNode{res}
}
