package validation

import "strings"

// MaxFeedbackLength caps submitted feedback text.
const MaxFeedbackLength = 2000

// ValidateFeedbackText checks that feedback is non-empty after trimming
// and within the length cap.
func ValidateFeedbackText(text string) (bool, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, "Please enter your feedback before submitting."
	}
	if len(text) > MaxFeedbackLength {
		return false, "Feedback is too long."
	}
	return true, ""
}

// ParseCategories splits a comma-separated category string, trimming
// whitespace and dropping empty entries.
func ParseCategories(raw string) []string {
	parts := strings.Split(raw, ",")
	categories := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}

// ValidateRating checks a requested star rating against the rating toggle.
// With ratings disabled any value is acceptable (the pipeline forces it
// to 0); with ratings enabled only 1-5 is valid.
func ValidateRating(rating int, enabled bool) bool {
	if !enabled {
		return true
	}
	return rating >= 1 && rating <= 5
}
