package handlers

import (
	"github.com/gofiber/fiber/v3"

	"feedbackhub/internal/store"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	store *store.Store
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(recordStore *store.Store) *ProbeHandler {
	return &ProbeHandler{store: recordStore}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the application can serve traffic (feedback file is
// readable or validly absent).
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.store.Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "feedback store unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
