package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCompanyName is the placeholder used when no profile is active.
const DefaultCompanyName = "Our Company"

// DefaultCategories is the category set offered when no profile is active.
func DefaultCategories() []string {
	return []string{"General", "Service", "Quality", "Environment"}
}

// CompanyProfile is the business configuration active for a session:
// branding, feedback categories, and whether star ratings are collected.
// A new setup wholly replaces the previous profile.
type CompanyProfile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	FocusAreas   []string  `json:"focus_areas"`
	Categories   []string  `json:"categories"`
	EnableRating bool      `json:"enable_rating"`
	CreatedAt    string    `json:"created_at"`
}

// NewCompanyProfile assembles a profile with a fresh id and creation timestamp.
func NewCompanyProfile(name, businessType, description string, focusAreas, categories []string, enableRating bool) *CompanyProfile {
	return &CompanyProfile{
		ID:           uuid.New(),
		Name:         name,
		Type:         businessType,
		Description:  description,
		FocusAreas:   focusAreas,
		Categories:   categories,
		EnableRating: enableRating,
		CreatedAt:    time.Now().Format(TimestampFormat),
	}
}

// Context returns the company context string fed to the classifier,
// or "" when no profile is active.
func (p *CompanyProfile) Context() string {
	if p == nil || p.Description == "" {
		return ""
	}
	return "Company context: " + p.Description
}

// HasCategory reports whether name is one of the profile's configured
// categories. A nil profile falls back to the default category set.
func (p *CompanyProfile) HasCategory(name string) bool {
	categories := DefaultCategories()
	if p != nil && len(p.Categories) > 0 {
		categories = p.Categories
	}
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}
