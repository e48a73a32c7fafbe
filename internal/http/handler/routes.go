package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"bugtracker/internal/model"
	"bugtracker/internal/openapi"
	"bugtracker/internal/service"
)

var (
	bugSchema   = openapi.MustSchema("Bug", &model.Bug{})
	errorSchema = openapi.MustSchema("Error", &errorPayload{})
)

// RegisterRoutes attaches the bug routes to app and declares them in reg.
// Only declared routes appear in the API description; the health probes stay out of it.
func RegisterRoutes(app fiber.Router, reg *openapi.Registry, svc service.BugService) {
	reg.RegisterSchema(bugSchema)
	reg.RegisterSchema(errorSchema)

	route(app, reg, openapi.Operation{
		Method:      http.MethodGet,
		Path:        "/",
		OperationID: "listBugs",
		Summary:     "List bugs",
		Description: "Get all bugs",
		Tags:        []string{"bugs"},
		Responses: []openapi.Response{
			{Status: http.StatusOK, Description: "List of bugs", Schema: bugSchema.Name(), List: true},
		},
	}, ListBugs(svc))

	route(app, reg, openapi.Operation{
		Method:      http.MethodPost,
		Path:        "/",
		OperationID: "createBug",
		Summary:     "Create bug",
		Description: "Create a new bug",
		Tags:        []string{"bugs"},
		RequestBody: bugSchema.Name(),
		Responses: []openapi.Response{
			{Status: http.StatusCreated, Description: "Bug created", Schema: bugSchema.Name()},
			{Status: http.StatusBadRequest, Description: "Invalid bug payload", Schema: errorSchema.Name()},
		},
	}, ValidateJSON[model.Bug](bugSchema), CreateBug(svc))

	app.Get("/health", HealthCheck(svc))
	app.Get("/healthz", LivenessProbe())
}

func route(app fiber.Router, reg *openapi.Registry, op openapi.Operation, handlers ...fiber.Handler) {
	reg.Add(op)
	app.Add(op.Method, op.Path, handlers...)
}
