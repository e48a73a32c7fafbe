package openapi

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// Schema is a named JSON schema generated from a Go type.
// The same value validates request payloads and is published as a component
// of the API description.
type Schema struct {
	name  string
	value *openapi3.Schema
}

// NewSchema reflects the type of v into a schema registered under name.
//
// Field tags drive the result:
//   - json: property name (fields without it are skipped)
//   - required:"true": the property must be present
//   - description: property documentation
func NewSchema(name string, v any) (*Schema, error) {
	ref, err := openapi3gen.NewSchemaRefForValue(v, nil, openapi3gen.SchemaCustomizer(customizeFromTags))
	if err != nil {
		return nil, fmt.Errorf("generate schema %s: %w", name, err)
	}
	return &Schema{name: name, value: ref.Value}, nil
}

// MustSchema is like NewSchema but panics on error. It is meant for
// package-level declarations.
func MustSchema(name string, v any) *Schema {
	s, err := NewSchema(name, v)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the component name of the schema.
func (s *Schema) Name() string { return s.name }

// Value returns the underlying OpenAPI schema.
func (s *Schema) Value() *openapi3.Schema { return s.value }

// Decode parses body as JSON, validates it against the schema and decodes it into dst.
// dst is left untouched unless validation passes. Properties not declared by
// the schema are accepted and dropped, including case variants of declared ones.
func (s *Schema) Decode(body []byte, dst any) error {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if err := s.value.VisitJSON(raw, openapi3.MultiErrors()); err != nil {
		return newValidationError(s.name, err)
	}
	// encoding/json matches keys case-insensitively, so "Title" would land in
	// the title field. Only the exact keys that were validated are decoded.
	if obj, ok := raw.(map[string]any); ok && len(s.value.Properties) > 0 {
		declared := make(map[string]any, len(s.value.Properties))
		for name := range s.value.Properties {
			if v, ok := obj[name]; ok {
				declared[name] = v
			}
		}
		b, err := json.Marshal(declared)
		if err != nil {
			return fmt.Errorf("decode %s: %w", s.name, err)
		}
		body = b
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w", s.name, err)
	}
	return nil
}

func componentRef(name string) string {
	return "#/components/schemas/" + name
}

func customizeFromTags(_ string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	if d := tag.Get("description"); d != "" {
		schema.Description = d
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("required") != "true" {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		schema.Required = append(schema.Required, name)
	}
	return nil
}
