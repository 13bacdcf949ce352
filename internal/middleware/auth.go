package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

// staffKey is the session key marking an authenticated staff session.
const staffKey = "staff"

// AuthMiddleware gates the staff dashboard behind a session flag.
type AuthMiddleware struct {
	store *session.Store
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(store *session.Store) *AuthMiddleware {
	return &AuthMiddleware{store: store}
}

// RequireStaff ensures the session belongs to logged-in staff,
// redirecting to /login if not.
func (m *AuthMiddleware) RequireStaff(c fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return c.Redirect().To("/login")
	}

	if logged, _ := sess.Get(staffKey).(bool); !logged {
		return c.Redirect().To("/login")
	}

	c.Locals("staff", true)
	return c.Next()
}

// OptionalStaff marks the request as staff when the session says so, but
// lets everyone through. Used for pages that adapt their navigation.
func (m *AuthMiddleware) OptionalStaff(c fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return c.Next()
	}

	if logged, _ := sess.Get(staffKey).(bool); logged {
		c.Locals("staff", true)
	}
	return c.Next()
}

// Login marks the current session as an authenticated staff session.
// The session middleware persists the change when the response is sent.
func (m *AuthMiddleware) Login(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	sess.Set(staffKey, true)
	return nil
}

// Logout clears the staff session.
func (m *AuthMiddleware) Logout(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}
	sess.Destroy()
	return nil
}
