package email

import (
	"strings"
	"testing"

	"feedbackhub/internal/config"
	"feedbackhub/internal/models"
)

func TestServiceDisabledWithoutSMTP(t *testing.T) {
	s := NewService(&config.Config{})

	if s.IsEnabled() {
		t.Error("service must be disabled without SMTP configuration")
	}
	// Disabled service is a no-op, not an error.
	if err := s.NotifyNewFeedback(&models.FeedbackRecord{ID: 1}); err != nil {
		t.Errorf("NotifyNewFeedback() on disabled service error = %v, want nil", err)
	}
}

func TestBuildFeedbackBody(t *testing.T) {
	record := &models.FeedbackRecord{
		ID:        7,
		Company:   "Sunset Restaurant",
		Category:  "Service",
		Rating:    2,
		Original:  "The wait for a table was endless",
		Improved:  "The wait for a table was endless",
		Solution:  "Recommendation: Increase staff during peak hours. Consider implementing a queue management system.",
		Timestamp: "2026-08-30 12:00:00",
	}

	body := buildFeedbackBody(record)

	for _, want := range []string{
		"Sunset Restaurant",
		"Category:  Service",
		"Rating:    2/5",
		"The wait for a table was endless",
		"Recommendation: Increase staff",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}

	record.Rating = 0
	if body := buildFeedbackBody(record); !strings.Contains(body, "Rating:    none") {
		t.Errorf("unrated body must say so:\n%s", body)
	}
}
