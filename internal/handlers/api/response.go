package api

import (
	"github.com/gofiber/fiber/v3"
)

// Feedback API responses share one envelope: {"status":"ok","data":...}
// on success, {"status":"error","error":...} on failure. Records and
// record lists always travel under "data".

func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonCreated wraps a freshly stored feedback record in the envelope
// with a 201 status.
func jsonCreated(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
