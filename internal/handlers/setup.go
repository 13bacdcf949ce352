package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"feedbackhub/internal/config"
	"feedbackhub/internal/models"
	"feedbackhub/internal/store"
	"feedbackhub/internal/validation"
)

// SetupHandler manages the company setup form and the active profile.
type SetupHandler struct {
	cfg      *config.Config
	options  *config.YAMLConfig
	profiles *store.ProfileHolder
}

// NewSetupHandler creates a new setup handler.
func NewSetupHandler(cfg *config.Config, options *config.YAMLConfig, profiles *store.ProfileHolder) *SetupHandler {
	return &SetupHandler{cfg: cfg, options: options, profiles: profiles}
}

// Show renders the company setup form.
func (h *SetupHandler) Show(c fiber.Ctx) error {
	data := MergeBranding(fiber.Map{
		"BusinessTypes":     h.options.BusinessTypes,
		"FocusAreas":        h.options.FocusAreas,
		"DefaultCategories": strings.Join(h.options.DefaultCategories, ", "),
	}, h.cfg)

	if profile := h.profiles.Active(); profile != nil {
		data["Profile"] = profile
	}

	return c.Render("setup", data)
}

// Create validates the setup form and installs the new active profile,
// replacing any previous one. Responds with the QR partial for HTMX.
func (h *SetupHandler) Create(c fiber.Ctx) error {
	name := c.FormValue("name")
	businessType := c.FormValue("type")
	description := c.FormValue("description")
	focusAreas := formValues(c, "focus_areas")
	enableRating := c.FormValue("enable_rating") != ""

	if name == "" || description == "" {
		return htmxError(c, "Please fill in all required fields (company name and description).")
	}

	categories := validation.ParseCategories(c.FormValue("categories"))
	if len(categories) == 0 {
		categories = h.options.DefaultCategories
	}

	profile := models.NewCompanyProfile(name, businessType, description, focusAreas, categories, enableRating)
	h.profiles.Replace(profile)

	return c.Render("partials/setup_success", fiber.Map{
		"Profile":     profile,
		"FeedbackURL": h.cfg.FeedbackURL(),
	}, "")
}

// formValues collects all posted values for a repeated form key
// (checkbox groups submit one entry per checked box).
func formValues(c fiber.Ctx, key string) []string {
	values := []string{}
	for _, v := range c.Request().PostArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	return values
}
