package openapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticket struct {
	Title    string `json:"title" required:"true" description:"what broke"`
	Severity string `json:"severity,omitempty"`
	Internal string `json:"-" required:"true"`
	hidden   string
}

func TestNewSchema_FromTags(t *testing.T) {
	s, err := NewSchema("Ticket", &ticket{})
	require.NoError(t, err)

	assert.Equal(t, "Ticket", s.Name())
	v := s.Value()
	assert.True(t, v.Type.Is("object"))
	assert.Equal(t, []string{"title"}, v.Required)
	require.Contains(t, v.Properties, "title")
	require.Contains(t, v.Properties, "severity")
	assert.NotContains(t, v.Properties, "Internal")
	assert.NotContains(t, v.Properties, "hidden")
	assert.True(t, v.Properties["title"].Value.Type.Is("string"))
	assert.Equal(t, "what broke", v.Properties["title"].Value.Description)
}

func TestSchema_Decode(t *testing.T) {
	s := MustSchema("Ticket", &ticket{})

	t.Run("valid payload", func(t *testing.T) {
		var got ticket
		err := s.Decode([]byte(`{"title":"A","severity":"low","extra":"X"}`), &got)
		require.NoError(t, err)
		assert.Equal(t, ticket{Title: "A", Severity: "low"}, got)
	})

	t.Run("case variants of declared keys are dropped", func(t *testing.T) {
		var got ticket
		err := s.Decode([]byte(`{"title":"A","severity":"low","Title":"Z","SEVERITY":1}`), &got)
		require.NoError(t, err)
		assert.Equal(t, ticket{Title: "A", Severity: "low"}, got)
	})

	t.Run("case variant with wrong type is still valid", func(t *testing.T) {
		var got ticket
		err := s.Decode([]byte(`{"title":"A","TITLE":1}`), &got)
		require.NoError(t, err)
		assert.Equal(t, ticket{Title: "A"}, got)
	})

	t.Run("case variant does not satisfy a required key", func(t *testing.T) {
		var got ticket
		err := s.Decode([]byte(`{"Title":"A"}`), &got)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "title", ve.Issues[0].Field)
	})

	t.Run("empty string is accepted", func(t *testing.T) {
		var got ticket
		require.NoError(t, s.Decode([]byte(`{"title":""}`), &got))
		assert.Equal(t, "", got.Title)
	})

	t.Run("malformed json", func(t *testing.T) {
		var got ticket
		err := s.Decode([]byte(`{"title":`), &got)
		assert.ErrorIs(t, err, ErrMalformedJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		var got ticket
		assert.ErrorIs(t, s.Decode(nil, &got), ErrMalformedJSON)
	})

	t.Run("missing required field", func(t *testing.T) {
		got := ticket{Title: "untouched"}
		err := s.Decode([]byte(`{"severity":"low"}`), &got)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "Ticket", ve.Schema)
		require.Len(t, ve.Issues, 1)
		assert.Equal(t, "title", ve.Issues[0].Field)
		assert.Contains(t, ve.Issues[0].Message, "missing")
		assert.Equal(t, "untouched", got.Title)
	})

	t.Run("wrong type", func(t *testing.T) {
		var got ticket
		err := s.Decode([]byte(`{"title":42,"severity":true}`), &got)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Len(t, ve.Issues, 2)
		assert.Contains(t, ve.Error(), "invalid Ticket")
	})

	t.Run("not an object", func(t *testing.T) {
		var got ticket
		err := s.Decode([]byte(`["title"]`), &got)

		var ve *ValidationError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("null", func(t *testing.T) {
		var got ticket
		err := s.Decode([]byte(`null`), &got)

		var ve *ValidationError
		assert.True(t, errors.As(err, &ve))
	})
}
