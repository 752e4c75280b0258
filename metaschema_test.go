package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBundledMetaschemasResolveWithoutALoader checks that a $ref to a
// json-schema.org meta-schema URI resolves from the embedded bundle even
// when no loader is registered for that host, per spec §6.
func TestBundledMetaschemasResolveWithoutALoader(t *testing.T) {
	for uri, draft := range map[string]Draft{
		"http://json-schema.org/draft-04/schema#":      Draft4,
		"http://json-schema.org/draft-07/schema#":      Draft7,
		"https://json-schema.org/draft/2019-09/schema": Draft2019_09,
		"https://json-schema.org/draft/2020-12/schema": Draft2020_12,
	} {
		c := NewCompiler()
		schema, err := c.Compile([]byte(`{"$ref": "` + uri + `"}`))
		require.NoError(t, err, "draft %s", draft)

		// An empty object is a valid schema under every bundled meta-schema.
		verdict := schema.Validate(map[string]any{})
		assert.True(t, verdict.IsValid(), "draft %s", draft)
	}
}

func TestDraftFromSchemaURI(t *testing.T) {
	d, ok := draftFromSchemaURI("http://json-schema.org/draft-07/schema#")
	assert.True(t, ok)
	assert.Equal(t, Draft7, d)

	_, ok = draftFromSchemaURI("https://example.com/unknown")
	assert.False(t, ok)
}
