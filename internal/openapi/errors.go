package openapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrMalformedJSON is returned by Schema.Decode when the body is not valid JSON.
var ErrMalformedJSON = errors.New("malformed JSON body")

// Issue describes one schema violation.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationError is returned by Schema.Decode when a well-formed payload does
// not match the schema.
type ValidationError struct {
	Schema string
	Issues []Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Field != "" {
			msgs = append(msgs, is.Field+": "+is.Message)
			continue
		}
		msgs = append(msgs, is.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Schema, strings.Join(msgs, "; "))
}

func newValidationError(schema string, err error) *ValidationError {
	ve := &ValidationError{Schema: schema}
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case openapi3.MultiError:
			for _, inner := range e {
				walk(inner)
			}
		case *openapi3.SchemaError:
			ve.Issues = append(ve.Issues, Issue{
				Field:   strings.Join(e.JSONPointer(), "."),
				Message: e.Reason,
			})
		default:
			ve.Issues = append(ve.Issues, Issue{Message: err.Error()})
		}
	}
	walk(err)
	return ve
}
