package jsonschema

import "fmt"

// Validate checks value (already-decoded JSON: map[string]any, []any,
// string, float64, bool, nil) against the compiled schema
// and returns the public Verdict. Grounded on the teacher's Schema.Validate
// in validate.go, generalized from a *Schema receiver walking typed fields
// to evaluate's walk over s's compiled plan tree. opts applies per-call
// overrides on top of the schema's compiled settings — currently only
// WithQuiet has any effect here, since draft/strictFormat/strictInteger are
// baked in at Compile time.
func (s *CompiledSchema) Validate(value any, opts ...Option) *Verdict {
	ec := s.newEvalContext(opts...)
	root := evaluate(ec, s.root, value, "")
	return newVerdict(root)
}

// ValidateJSON decodes documentJSON with the compiler's configured codec and
// validates the result, the byte-oriented counterpart to Validate for
// callers holding raw JSON rather than an already-decoded Go value.
func (s *CompiledSchema) ValidateJSON(documentJSON []byte, opts ...Option) (*Verdict, error) {
	var value any
	if err := s.compiler.jsonDecoder(documentJSON, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaCompilation, err)
	}
	return s.Validate(value, opts...), nil
}

// newEvalContext builds the evalContext (C9's per-call state) a Validate
// call threads through evaluate: the registry's shared pattern/format/
// decoder/media-type state, a fresh dynamic scope, and the per-call options
// (compiled defaults overlaid with opts, e.g. WithQuiet). This is the first
// and only construction site for evalContext in the package — every other
// file receives one as a parameter.
func (s *CompiledSchema) newEvalContext(opts ...Option) *evalContext {
	o := &Options{
		draft:         s.compiler.defaultDraft,
		strictFormat:  s.compiler.strictFormat,
		strictInteger: s.compiler.strictInteger,
	}
	for _, apply := range opts {
		apply(o)
	}
	return &evalContext{
		registry:   s.compiler.registry,
		patterns:   s.compiler.patterns,
		formats:    s.compiler.formats,
		decoders:   s.compiler.decoders,
		mediaTypes: s.compiler.mediaTypes,
		options:    o,
		scope:      newDynamicScope(),
		quiet:      o.quiet,
	}
}

// Validate is the one-shot public entry point (C11): compile schemaJSON
// under the given options and validate documentJSON against it in a single
// call, for callers who don't need to reuse the compiled schema. Grounded
// on the teacher's package-level convenience wrapped around Compiler/Schema
// in its examples/ directory.
func Validate(schemaJSON, documentJSON []byte, opts ...Option) (*Verdict, error) {
	schema, err := Compile(schemaJSON, opts...)
	if err != nil {
		return nil, err
	}
	return schema.ValidateJSON(documentJSON, opts...)
}

// Compile is the one-shot public entry point for compiling a schema with
// Options rather than a hand-built Compiler, layering opts onto a fresh
// Compiler's defaults.
func Compile(schemaJSON []byte, opts ...Option) (*CompiledSchema, error) {
	o := newOptions(opts...)
	c := NewCompiler()
	c.SetDefaultDraft(o.draft)
	if o.strictFormat {
		c.SetStrictFormat(true)
	}
	if o.strictInteger {
		c.SetStrictInteger(true)
	}
	return c.Compile(schemaJSON)
}
