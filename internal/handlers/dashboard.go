package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"feedbackhub/internal/config"
	"feedbackhub/internal/models"
	"feedbackhub/internal/store"
)

// recentWindow is the age cutoff for the dashboard's recent-feedback count.
const recentWindow = 24 * time.Hour

// DashboardHandler renders the staff dashboard.
type DashboardHandler struct {
	cfg   *config.Config
	store *store.Store
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(cfg *config.Config, recordStore *store.Store) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, store: recordStore}
}

// Show renders the dashboard: totals, average rating, recent count, and
// the newest-first feedback listing with an optional category filter.
func (h *DashboardHandler) Show(c fiber.Ctx) error {
	records, err := h.store.Load()
	if err != nil {
		return err
	}

	filter := c.Query("category", "")
	filtered := filterByCategory(records, filter)

	data := MergeBranding(fiber.Map{
		"Records":       filtered,
		"Categories":    distinctCategories(records),
		"Filter":        filter,
		"TotalFeedback": len(records),
		"RecentCount":   countRecent(records, time.Now()),
		"AverageRating": formatAverageRating(records),
	}, h.cfg)

	// HTMX category filter swaps just the listing.
	if c.Get("HX-Request") == "true" {
		return c.Render("partials/feedback_list", data, "")
	}

	return c.Render("dashboard", data)
}

// filterByCategory returns the records matching the category, or all
// records when the filter is empty or "All".
func filterByCategory(records []models.FeedbackRecord, category string) []models.FeedbackRecord {
	if category == "" || category == "All" {
		return records
	}
	filtered := make([]models.FeedbackRecord, 0, len(records))
	for _, r := range records {
		if r.Category == category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// distinctCategories lists the categories present in the records,
// preserving first-seen (newest-first) order.
func distinctCategories(records []models.FeedbackRecord) []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, r := range records {
		if !seen[r.Category] {
			seen[r.Category] = true
			categories = append(categories, r.Category)
		}
	}
	return categories
}

// countRecent counts records submitted within the recent window before
// now. Records with unparseable timestamps are skipped.
func countRecent(records []models.FeedbackRecord, now time.Time) int {
	cutoff := now.Add(-recentWindow)
	count := 0
	for _, r := range records {
		at, err := r.SubmittedAt()
		if err != nil {
			continue
		}
		if at.After(cutoff) {
			count++
		}
	}
	return count
}

// averageRating computes the mean star rating over rated records only.
// Returns 0 when nothing has been rated.
func averageRating(records []models.FeedbackRecord) float64 {
	sum, count := 0, 0
	for _, r := range records {
		if r.HasRating() {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// formatAverageRating renders the average for display, "N/A" when no
// record carries a rating.
func formatAverageRating(records []models.FeedbackRecord) string {
	avg := averageRating(records)
	if avg == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/5.0", avg)
}
