package openapi

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Version of the OpenAPI format produced by Registry.Document.
const Version = "3.0.3"

// Info carries the document-level metadata.
type Info struct {
	Title             string
	Version           string
	Description       string
	ServerURL         string
	ServerDescription string
}

// Response declares one status code of an operation.
// Schema names a registered schema; List wraps it in an array.
type Response struct {
	Status      int
	Description string
	Schema      string
	List        bool
}

// Operation is the route metadata published in the API description.
type Operation struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
	Description string
	Tags        []string
	// RequestBody names the registered schema of a JSON request body, if any.
	RequestBody string
	Responses   []Response
}

// Registry collects schemas and operations as routes are registered.
type Registry struct {
	mu         sync.RWMutex
	schemas    map[string]*Schema
	operations []Operation
}

func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// RegisterSchema makes s available as a component. Registering a second
// schema under the same name replaces the first.
func (r *Registry) RegisterSchema(s *Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[s.Name()] = s
}

// checkRefs reports the first schema name op uses that was never registered.
// Callers hold r.mu.
func (r *Registry) checkRefs(op Operation) error {
	names := make([]string, 0, len(op.Responses)+1)
	if op.RequestBody != "" {
		names = append(names, op.RequestBody)
	}
	for _, resp := range op.Responses {
		if resp.Schema != "" {
			names = append(names, resp.Schema)
		}
	}
	for _, name := range names {
		if _, ok := r.schemas[name]; !ok {
			return fmt.Errorf("%s %s: unknown schema %q", op.Method, op.Path, name)
		}
	}
	return nil
}

// Add declares an operation.
func (r *Registry) Add(op Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, op)
}

// Operations returns the declared operations in registration order.
func (r *Registry) Operations() []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Operation, len(r.operations))
	copy(out, r.operations)
	return out
}

// Document builds the OpenAPI description of every declared operation.
// Schema references are resolved and the result is validated; an operation
// naming an unknown schema makes Document fail.
func (r *Registry) Document(ctx context.Context, info Info) (*openapi3.T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: make(openapi3.Schemas, len(r.schemas))},
	}
	if info.ServerURL != "" {
		doc.Servers = openapi3.Servers{
			&openapi3.Server{URL: info.ServerURL, Description: info.ServerDescription},
		}
	}

	for name, s := range r.schemas {
		doc.Components.Schemas[name] = &openapi3.SchemaRef{Value: s.Value()}
	}

	for _, op := range r.operations {
		item := doc.Paths.Value(op.Path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(op.Path, item)
		}
		if err := r.checkRefs(op); err != nil {
			return nil, err
		}
		if item.GetOperation(op.Method) != nil {
			return nil, fmt.Errorf("duplicate operation %s %s", op.Method, op.Path)
		}
		item.SetOperation(op.Method, buildOperation(op))
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	if err := loader.ResolveRefsIn(doc, nil); err != nil {
		return nil, fmt.Errorf("resolve references: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}
	return doc, nil
}

func buildOperation(op Operation) *openapi3.Operation {
	o := openapi3.NewOperation()
	o.OperationID = op.OperationID
	o.Summary = op.Summary
	o.Description = op.Description
	o.Tags = op.Tags

	if op.RequestBody != "" {
		body := openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchemaRef(openapi3.NewSchemaRef(componentRef(op.RequestBody), nil))
		o.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	o.Responses = openapi3.NewResponsesWithCapacity(len(op.Responses))
	for _, resp := range op.Responses {
		desc := resp.Description
		if desc == "" {
			desc = http.StatusText(resp.Status)
		}
		v := openapi3.NewResponse().WithDescription(desc)
		if resp.Schema != "" {
			ref := openapi3.NewSchemaRef(componentRef(resp.Schema), nil)
			if resp.List {
				arr := openapi3.NewArraySchema()
				arr.Items = ref
				ref = openapi3.NewSchemaRef("", arr)
			}
			v = v.WithJSONSchemaRef(ref)
		}
		o.Responses.Set(fmt.Sprint(resp.Status), &openapi3.ResponseRef{Value: v})
	}
	return o
}
