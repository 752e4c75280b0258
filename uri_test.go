package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURI(t *testing.T) {
	assert.Equal(t, "https://example.com/b", resolveURI("https://example.com/a", "b"))
	assert.Equal(t, "https://example.com/b", resolveURI("https://example.com/a/", "../b"))
	assert.Equal(t, "https://other.com/x", resolveURI("https://example.com/a", "https://other.com/x"))
	assert.Equal(t, "https://example.com/a", resolveURI("https://example.com/a", ""))
	assert.Equal(t, "foo", resolveURI("", "foo"))
}

func TestSplitFragment(t *testing.T) {
	base, frag := splitFragment("https://example.com/a#/b/c")
	assert.Equal(t, "https://example.com/a", base)
	assert.Equal(t, "/b/c", frag)

	base, frag = splitFragment("https://example.com/a")
	assert.Equal(t, "https://example.com/a", base)
	assert.Equal(t, "", frag)
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "https://example.com/a", canonicalize("https://example.com/a#"))
	assert.Equal(t, "https://example.com/a", canonicalize("https://example.com/a"))
}

func TestURIScheme(t *testing.T) {
	assert.Equal(t, "https", uriScheme("https://example.com/a"))
	assert.Equal(t, "", uriScheme("not a uri"))
}

func TestIsAbsoluteURI(t *testing.T) {
	assert.True(t, isAbsoluteURI("https://example.com/a"))
	assert.False(t, isAbsoluteURI("/relative/path"))
}

func TestPointerNavigate(t *testing.T) {
	doc := map[string]any{
		"a": []any{
			map[string]any{"b": "value"},
		},
	}
	v, ok := navigate(doc, "/a/0/b")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = navigate(doc, "/a/5/b")
	assert.False(t, ok)

	_, ok = navigate(doc, "/missing")
	assert.False(t, ok)
}

func TestAppendPointerEscaping(t *testing.T) {
	assert.Equal(t, "/a/a~1b", appendPointer("/a", "a/b"))
	assert.Equal(t, "/foo~0bar", appendPointer("", "foo~bar"))
	assert.Equal(t, "/0", appendIndex("", 0))
}
