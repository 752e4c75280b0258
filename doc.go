// Package jsonschema implements a multi-draft JSON Schema validation engine
// supporting draft-3, draft-4, draft-6, draft-7, 2019-09, 2020-12 and the
// in-development draft-next dialects.
//
// Validation runs in two phases: Compile walks a schema document once and
// produces an executable plan tree bound to a dialect, a base URI, and
// resolved references; Evaluate applies that plan to a data document,
// threading per-location annotation state so that unevaluatedItems and
// unevaluatedProperties can see which sibling applicators ran first.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format
// validators and https://github.com/kaptinlin/jsonschema for the
// compile/evaluate architecture this engine generalizes across dialects.
package jsonschema
