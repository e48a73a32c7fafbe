package handler

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gopkg.in/yaml.v3"

	"bugtracker/docs"
)

var scalarPage = template.Must(template.New("scalar").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
</head>
<body>
  <script id="api-reference" data-url="{{.DocumentURL}}"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>
`))

// RegisterDocsRoutes serves doc as JSON (/openapi) and YAML (/openapi.yaml),
// the Scalar reference page (/scalar) pointing at documentURL, and Swagger UI
// (/swagger/*).
func RegisterDocsRoutes(app fiber.Router, doc *openapi3.T, documentURL string) error {
	jsonDoc, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal API description: %w", err)
	}
	yamlDoc, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal API description as yaml: %w", err)
	}
	page, err := renderScalarPage(doc.Info.Title, documentURL)
	if err != nil {
		return err
	}

	docs.SwaggerInfo.SetDoc(jsonDoc)

	app.Get("/openapi", OpenAPIDocument(jsonDoc, fiber.MIMEApplicationJSON))
	app.Get("/openapi.yaml", OpenAPIDocument(yamlDoc, "application/yaml"))
	app.Get("/scalar", ScalarReference(page))
	app.Get("/swagger/*", swagger.New(swagger.Config{
		InstanceName: docs.SwaggerInfo.InstanceName(),
		Title:        doc.Info.Title,
	}))
	return nil
}

// OpenAPIDocument serves a pre-rendered API description.
func OpenAPIDocument(body []byte, contentType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, contentType)
		return c.Send(body)
	}
}

// ScalarReference serves the pre-rendered Scalar API reference page.
func ScalarReference(page []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(page)
	}
}

func renderScalarPage(title, documentURL string) ([]byte, error) {
	var buf bytes.Buffer
	err := scalarPage.Execute(&buf, struct {
		Title       string
		DocumentURL string
	}{Title: title, DocumentURL: documentURL})
	if err != nil {
		return nil, fmt.Errorf("render scalar page: %w", err)
	}
	return buf.Bytes(), nil
}
