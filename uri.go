package jsonschema

import (
	"net/url"
	"strings"
)

// resolveURI resolves ref against base per RFt 3986 §5 (relative reference
// resolution), the way $id and $ref values are resolved against the
// enclosing base URI. Grounded on the teacher's resolveRelativeURI in
// utils.go, generalized to use net/url's RFC 3986 algorithm directly instead
// of bailing out when base has no scheme/host (schema documents are
// routinely compiled with no base URI at all, in which case ref is returned
// as its own base).
func resolveURI(base, ref string) string {
	if ref == "" {
		return base
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if base == "" {
		return refURL.String()
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// splitFragment separates a URI reference into its base (pre-#) and
// fragment (post-#) parts, mirroring the teacher's splitRef.
func splitFragment(ref string) (base, fragment string) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// uriScheme extracts a URI's scheme, used to pick a registered loader.
func uriScheme(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Scheme
}

// isAbsoluteURI reports whether raw has both a scheme and is not merely a
// fragment or relative path — i.e. it can stand on its own as a canonical
// schema URI.
func isAbsoluteURI(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs()
}

// canonicalize strips a trailing empty fragment ("schema#" -> "schema") so
// that URI map keys are stable regardless of how a $ref happened to spell
// the root reference.
func canonicalize(raw string) string {
	return strings.TrimSuffix(raw, "#")
}
