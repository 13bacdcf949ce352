package handlers

import (
	"github.com/gofiber/fiber/v3"

	"feedbackhub/internal/config"
	"feedbackhub/internal/store"
)

// HomeHandler renders the landing page.
type HomeHandler struct {
	cfg      *config.Config
	store    *store.Store
	profiles *store.ProfileHolder
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(cfg *config.Config, recordStore *store.Store, profiles *store.ProfileHolder) *HomeHandler {
	return &HomeHandler{cfg: cfg, store: recordStore, profiles: profiles}
}

// Index renders the home page with entry points for setup, the feedback
// form, and the staff dashboard.
func (h *HomeHandler) Index(c fiber.Ctx) error {
	total, err := h.store.Count()
	if err != nil {
		return err
	}

	data := MergeBranding(fiber.Map{
		"Staff":         c.Locals("staff") != nil,
		"TotalFeedback": total,
	}, h.cfg)

	if profile := h.profiles.Active(); profile != nil {
		data["CompanyName"] = profile.Name
	}

	return c.Render("index", data)
}
