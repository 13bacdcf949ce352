package handlers

import (
	"github.com/gofiber/fiber/v3"

	"feedbackhub/internal/auth"
	"feedbackhub/internal/config"
	"feedbackhub/internal/middleware"
)

// AuthHandler serves the staff login page and session login/logout.
type AuthHandler struct {
	cfg           *config.Config
	authenticator auth.Authenticator
	sessions      *middleware.AuthMiddleware
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(cfg *config.Config, authenticator auth.Authenticator, sessions *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{cfg: cfg, authenticator: authenticator, sessions: sessions}
}

// LoginPage renders the staff login form.
func (h *AuthHandler) LoginPage(c fiber.Ctx) error {
	return c.Render("login", MergeBranding(fiber.Map{}, h.cfg))
}

// Login validates credentials and establishes a staff session.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if !h.authenticator.Authenticate(username, password) {
		return htmxError(c, "Invalid credentials.")
	}

	if err := h.sessions.Login(c); err != nil {
		return err
	}

	// HTMX follows this header instead of swapping content.
	c.Set("HX-Redirect", "/dashboard")
	return c.SendString("")
}

// Logout destroys the staff session and returns to the home page.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.sessions.Logout(c); err != nil {
		return err
	}
	return c.Redirect().To("/")
}
