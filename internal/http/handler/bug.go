package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bugtracker/internal/model"
	"bugtracker/internal/openapi"
	"bugtracker/internal/service"
)

const validatedBodyKey = "validated_body"

// ValidateJSON decodes the request body into a T after checking it against schema.
// On failure it answers 400 and stops the chain, so later handlers only ever
// see a well-formed value (read it back with validatedBody).
func ValidateJSON[T any](schema *openapi.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var v T
		if err := schema.Decode(c.Body(), &v); err != nil {
			var ve *openapi.ValidationError
			switch {
			case errors.As(err, &ve):
				return writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "request body does not match the "+schema.Name()+" schema", ve.Issues)
			case errors.Is(err, openapi.ErrMalformedJSON):
				return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
			default:
				return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
			}
		}
		c.Locals(validatedBodyKey, v)
		return c.Next()
	}
}

func validatedBody[T any](c *fiber.Ctx) (T, bool) {
	v, ok := c.Locals(validatedBodyKey).(T)
	return v, ok
}

// ListBugs returns every bug in creation order.
func ListBugs(svc service.BugService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bugs, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(bugs)
	}
}

// CreateBug stores the bug validated by ValidateJSON and echoes it back.
func CreateBug(svc service.BugService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, ok := validatedBody[model.Bug](c)
		if !ok {
			// Route registered without ValidateJSON.
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		bug, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(bug)
	}
}
