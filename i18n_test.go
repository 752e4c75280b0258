package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestI18nBundleLoads(t *testing.T) {
	bundle, err := I18n()
	require.NoError(t, err)
	require.NotNil(t, bundle)
}

func TestLocalizeErrors(t *testing.T) {
	bundle, err := I18n()
	require.NoError(t, err)

	verdict, err := Validate(
		[]byte(`{"type": "object", "required": ["name"]}`),
		[]byte(`{}`),
	)
	require.NoError(t, err)
	require.False(t, verdict.IsValid())

	localizer := bundle.NewLocalizer("zh-Hans")
	messages := verdict.LocalizeErrors(localizer)
	require.Len(t, messages, 1)
	for _, msg := range messages {
		assert.NotEmpty(t, msg)
	}
}

func TestLocalizeFallsBackWithNilLocalizer(t *testing.T) {
	verdict, err := Validate(
		[]byte(`{"type": "string"}`),
		[]byte(`1`),
	)
	require.NoError(t, err)
	require.False(t, verdict.IsValid())
	assert.Equal(t, verdict.Errors[0].Message, verdict.Errors[0].Localize(nil))
}
