package jsonschema

// Options configures a single Validate call (or CompiledSchema.Validate),
// layered on top of whatever a Compiler was already configured with.
// Grounded on the teacher's builder-style Compiler configuration, adapted
// into a lightweight per-call options value since the façade (C11) needs to
// let a one-shot Validate override strictness/draft without requiring the
// caller to stand up a Compiler first.
type Options struct {
	draft         Draft
	strictFormat  bool
	strictInteger bool
	quiet         bool
}

// Option mutates an Options value, following the functional-options style
// the teacher's examples/ directory uses for one-shot Validate calls.
type Option func(*Options)

// WithDraft overrides the dialect assumed for a document with no $schema.
func WithDraft(d Draft) Option {
	return func(o *Options) { o.draft = d }
}

// WithStrictFormat enables format assertion regardless of dialect default.
func WithStrictFormat() Option {
	return func(o *Options) { o.strictFormat = true }
}

// WithStrictInteger sets the strictInteger option, which Compile passes on
// to SetStrictInteger. No keyword checker reads it, so validation results
// are the same with or without it.
func WithStrictInteger() Option {
	return func(o *Options) { o.strictInteger = true }
}

// WithQuiet short-circuits message/schema/document construction for every
// keyword failure, returning a minimal error tree (valid=false nodes with
// no message) instead of the full annotated one. Useful for callers that
// only need the pass/fail verdict and want to skip the allocation cost of
// building readable error trees.
func WithQuiet() Option {
	return func(o *Options) { o.quiet = true }
}

func newOptions(opts ...Option) *Options {
	o := &Options{draft: Draft2020_12}
	for _, apply := range opts {
		apply(o)
	}
	return o
}
