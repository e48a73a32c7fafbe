package handler

import (
	"github.com/gofiber/fiber/v2"

	"bugtracker/internal/service"
)

// HealthCheck reports service status together with the number of stored bugs.
func HealthCheck(svc service.BugService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"bugs":   svc.Count(c.UserContext()),
		})
	}
}

// LivenessProbe answers 200 as long as the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
