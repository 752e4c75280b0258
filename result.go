package jsonschema

import "github.com/kaptinlin/go-i18n"

// ValidationError is one flattened validation failure: the keyword that
// rejected the instance, the default English message, and the schema/
// instance locations involved. Grounded on the teacher's EvaluationError in
// result.go, trimmed of the Params-template substitution mechanism since
// this engine's checkers build their final message string at evaluation
// time rather than a message template plus params map.
type ValidationError struct {
	Keyword          string `json:"keyword"`
	Message          string `json:"message"`
	SchemaLocation   string `json:"schemaLocation"`
	InstanceLocation string `json:"instanceLocation"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Localize returns a message for this error drawn from localizer's bundle,
// keyed by Keyword. Grounded on the teacher's EvaluationError.Localize,
// adapted to key lookups by keyword name (locales/*.json) rather than by a
// per-error numeric/string code, since errors here aren't minted with a
// separate code. Falls back to the default English Message when localizer
// is nil or has no entry for Keyword.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return e.Message
	}
	msg := localizer.Get(e.Keyword, i18n.Vars(map[string]any{
		"schemaLocation":   e.SchemaLocation,
		"instanceLocation": e.InstanceLocation,
	}))
	if msg == "" || msg == e.Keyword {
		return e.Message
	}
	return msg
}

// Verdict is the public result of a Validate call: whether the instance
// conformed, and every flattened validation failure if it didn't. Grounded
// on the teacher's EvaluationResult/List duo in result.go, collapsed into a
// single flat type since this engine's errorNode tree (errortree.go) already
// keeps the hierarchy internally and spec's consumers only need the flat
// list spec §3 describes.
type Verdict struct {
	Valid  bool               `json:"valid"`
	Errors []*ValidationError `json:"errors,omitempty"`
}

// newVerdict reformats an errorNode tree into the public Verdict shape (the
// C10 reformatter), flattening via errortree.go's flattenErrors and deriving
// each error's Keyword from the last token of its schema pointer.
func newVerdict(root *errorNode) *Verdict {
	v := &Verdict{Valid: root == nil || root.valid}
	if v.Valid {
		return v
	}
	var flat []*errorNode
	flattenErrors(root, &flat)
	v.Errors = make([]*ValidationError, 0, len(flat))
	for _, n := range flat {
		v.Errors = append(v.Errors, &ValidationError{
			Keyword:          lastKeyword(n.schemaPath),
			Message:          n.message,
			SchemaLocation:   n.schemaPath,
			InstanceLocation: n.documentPath,
		})
	}
	return v
}

// IsValid reports whether the instance conformed to the schema.
func (v *Verdict) IsValid() bool {
	return v.Valid
}

// LocalizeErrors returns every error's localized message keyed by its
// instance location, the flat-map shape the teacher's examples/i18n demo
// iterates over.
func (v *Verdict) LocalizeErrors(localizer *i18n.Localizer) map[string]string {
	out := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		out[e.InstanceLocation] = e.Localize(localizer)
	}
	return out
}

// lastKeyword extracts the final reference token of a schema JSON Pointer,
// e.g. "/properties/name/minLength" -> "minLength".
func lastKeyword(schemaPath string) string {
	tokens := pointerTokens(schemaPath)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}
