package store

import (
	"sync"

	"feedbackhub/internal/models"
)

// ProfileHolder holds the active company profile for the running instance.
// Setup replaces the profile wholesale; there is no versioning. Passed
// explicitly into handlers rather than living in a package global.
type ProfileHolder struct {
	mu      sync.RWMutex
	current *models.CompanyProfile
}

// NewProfileHolder creates an empty holder (no profile active).
func NewProfileHolder() *ProfileHolder {
	return &ProfileHolder{}
}

// Active returns the current profile, or nil if no setup has been done.
func (h *ProfileHolder) Active() *models.CompanyProfile {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Replace installs a new active profile, displacing any previous one.
func (h *ProfileHolder) Replace(p *models.CompanyProfile) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = p
}
