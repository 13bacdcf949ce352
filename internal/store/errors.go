package store

import "errors"

// Store-level error sentinels.
var (
	ErrRecordNotFound = errors.New("feedback record not found")
)
