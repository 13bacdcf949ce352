package handlers

import (
	"github.com/gofiber/fiber/v3"
	qrcode "github.com/skip2/go-qrcode"

	"feedbackhub/internal/config"
)

// QRHandler serves a scannable QR code for the feedback form URL.
type QRHandler struct {
	cfg *config.Config
}

// NewQRHandler creates a new QR handler.
func NewQRHandler(cfg *config.Config) *QRHandler {
	return &QRHandler{cfg: cfg}
}

// Image renders the feedback-form URL as a PNG QR code.
func (h *QRHandler) Image(c fiber.Ctx) error {
	png, err := qrcode.Encode(h.cfg.FeedbackURL(), qrcode.Medium, 300)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
