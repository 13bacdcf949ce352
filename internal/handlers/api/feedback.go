package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"feedbackhub/internal/models"
	"feedbackhub/internal/pipeline"
	"feedbackhub/internal/store"
)

// Notifier delivers staff notifications for new submissions.
// Satisfied by *email.Service.
type Notifier interface {
	IsEnabled() bool
	NotifyNewFeedback(record *models.FeedbackRecord) error
}

// FeedbackHandler exposes feedback records and submissions via JSON API.
type FeedbackHandler struct {
	store    *store.Store
	pipeline *pipeline.Service
	notifier Notifier
}

// NewFeedbackHandler creates a new API feedback handler.
func NewFeedbackHandler(recordStore *store.Store, svc *pipeline.Service, notifier Notifier) *FeedbackHandler {
	return &FeedbackHandler{store: recordStore, pipeline: svc, notifier: notifier}
}

// List returns all feedback records newest first, optionally filtered by
// category via ?category=.
func (h *FeedbackHandler) List(c fiber.Ctx) error {
	records, err := h.store.Load()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load feedback")
	}

	if category := c.Query("category", ""); category != "" {
		filtered := records[:0:0]
		for _, r := range records {
			if r.Category == category {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	return jsonSuccess(c, records)
}

// Get returns a single feedback record by id.
func (h *FeedbackHandler) Get(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid feedback id")
	}

	record, err := h.store.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "feedback not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to load feedback")
	}

	return jsonSuccess(c, record)
}

// Create runs a JSON submission through the pipeline and notifies staff,
// mirroring the HTML form path.
func (h *FeedbackHandler) Create(c fiber.Ctx) error {
	var body struct {
		Feedback string `json:"feedback"`
		Category string `json:"category"`
		Rating   int    `json:"rating"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	record, err := h.pipeline.Submit(body.Feedback, body.Category, body.Rating)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrEmptyFeedback),
			errors.Is(err, pipeline.ErrUnknownCategory),
			errors.Is(err, pipeline.ErrInvalidRating):
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return jsonError(c, fiber.StatusInternalServerError, "failed to save feedback")
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

	return jsonCreated(c, record)
}
