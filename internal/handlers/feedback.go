package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"feedbackhub/internal/config"
	"feedbackhub/internal/email"
	"feedbackhub/internal/models"
	"feedbackhub/internal/pipeline"
	"feedbackhub/internal/store"
	"feedbackhub/internal/validation"
)

// FeedbackHandler serves the customer feedback form and runs submissions
// through the pipeline.
type FeedbackHandler struct {
	cfg      *config.Config
	pipeline *pipeline.Service
	profiles *store.ProfileHolder
	notifier *email.Service
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(cfg *config.Config, svc *pipeline.Service, profiles *store.ProfileHolder, notifier *email.Service) *FeedbackHandler {
	return &FeedbackHandler{cfg: cfg, pipeline: svc, profiles: profiles, notifier: notifier}
}

// Show renders the feedback form, driven by the active profile or the
// default settings when no setup has been done.
func (h *FeedbackHandler) Show(c fiber.Ctx) error {
	companyName := models.DefaultCompanyName
	categories := models.DefaultCategories()
	enableRating := true
	hasProfile := false

	if profile := h.profiles.Active(); profile != nil {
		companyName = profile.Name
		categories = profile.Categories
		enableRating = profile.EnableRating
		hasProfile = true
	}

	return c.Render("feedback", MergeBranding(fiber.Map{
		"CompanyName":  companyName,
		"Categories":   categories,
		"EnableRating": enableRating,
		"HasProfile":   hasProfile,
	}, h.cfg))
}

// Submit handles a feedback form POST via HTMX.
func (h *FeedbackHandler) Submit(c fiber.Ctx) error {
	text := c.FormValue("feedback")
	category := c.FormValue("category")
	rating, _ := strconv.Atoi(c.FormValue("rating"))

	if ok, msg := validation.ValidateFeedbackText(text); !ok {
		return htmxError(c, msg)
	}

	record, err := h.pipeline.Submit(text, category, rating)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrEmptyFeedback):
			return htmxError(c, "Please enter your feedback before submitting.")
		case errors.Is(err, pipeline.ErrUnknownCategory):
			return htmxError(c, "Please pick one of the offered categories.")
		case errors.Is(err, pipeline.ErrInvalidRating):
			return htmxError(c, "Please pick a rating between 1 and 5 stars.")
		default:
			return err
		}
	}

	// Notification failures must not fail the submission.
	if h.notifier.IsEnabled() {
		go func() {
			if err := h.notifier.NotifyNewFeedback(record); err != nil {
				slog.Error("failed to send feedback notification", "id", record.ID, "error", err)
			}
		}()
	}

	return c.Render("partials/feedback_success", fiber.Map{
		"Record": record,
	}, "")
}
