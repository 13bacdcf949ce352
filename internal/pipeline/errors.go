package pipeline

import "errors"

// Validation error sentinels. Surfaced to the submitter; no record is
// created when any of these fire.
var (
	ErrEmptyFeedback   = errors.New("feedback text is required")
	ErrUnknownCategory = errors.New("category is not one of the configured categories")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)
