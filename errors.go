package jsonschema

import "errors"

// Infrastructure errors are fatal to the current Validate/Compile call: an
// ill-formed schema, an unresolvable reference, an unknown dialect, a regex
// compile failure, or a host callback failure. They are distinct from
// validation failures, which never abort and are collected into the error
// tree instead.
var (
	// ErrSchemaCompilation is returned when a schema cannot be compiled at all.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrUnknownDialect is returned when $schema names a draft with no fallback.
	ErrUnknownDialect = errors.New("unknown schema dialect")

	// ErrReferenceResolution is returned when a $ref/$dynamicRef/$recursiveRef
	// cannot be resolved to a schema location.
	ErrReferenceResolution = errors.New("reference resolution failed")

	// ErrNoLoaderRegistered is returned when no uri->schema callback or
	// built-in loader is registered for the reference's URI scheme.
	ErrNoLoaderRegistered = errors.New("no schema loader registered for scheme")

	// ErrRemoteFetch is returned when the host uri->schema callback fails.
	ErrRemoteFetch = errors.New("remote schema fetch failed")

	// ErrInvalidPointer is returned when a JSON Pointer fragment cannot be
	// parsed or does not resolve within the target document.
	ErrInvalidPointer = errors.New("invalid json pointer")

	// ErrDuplicateAnchor is returned when an $anchor collides with an $anchor
	// or $dynamicAnchor already registered within the same base URI scope. A
	// repeated $dynamicAnchor (or $recursiveAnchor) replaces the earlier
	// registration instead.
	ErrDuplicateAnchor = errors.New("duplicate anchor in schema scope")

	// ErrInvalidSchemaShape is returned when a schema is neither a JSON
	// object nor a JSON boolean.
	ErrInvalidSchemaShape = errors.New("schema must be a boolean or an object")

	// ErrRegexCompilation is returned when a pattern or patternProperties key
	// fails to compile as a regular expression.
	ErrRegexCompilation = errors.New("pattern failed to compile")

	// ErrFormatCallback names a failed format predicate. No code path returns
	// it: format predicates run without a recover, so a predicate that panics
	// propagates the panic to the caller of Validate.
	ErrFormatCallback = errors.New("format predicate failed")

	// ErrUnsupportedEncoding is returned when contentEncoding names a codec
	// with no registered decoder.
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")

	// ErrUnsupportedMediaType is returned when contentMediaType names a type
	// with no registered unmarshaler.
	ErrUnsupportedMediaType = errors.New("unsupported content media type")
)
