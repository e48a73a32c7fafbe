// Package docs publishes the generated API description to the swag registry,
// where the Swagger UI handler reads it.
package docs

import (
	"sync"

	"github.com/swaggo/swag"
)

// Spec holds the serialized API description for one swag instance.
type Spec struct {
	InfoInstanceName string

	mu  sync.RWMutex
	doc string
}

// SwaggerInfo is the document served under /swagger/doc.json.
var SwaggerInfo = &Spec{InfoInstanceName: "bugtracker"}

// InstanceName returns the swag instance the document is registered under.
func (s *Spec) InstanceName() string {
	return s.InfoInstanceName
}

// SetDoc replaces the published document.
func (s *Spec) SetDoc(doc []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = string(doc)
}

// ReadDoc implements swag.Swagger.
func (s *Spec) ReadDoc() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
