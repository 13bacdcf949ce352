package models

import "time"

// TimestampFormat is the fixed layout used for persisted feedback timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

// FeedbackRecord represents one customer submission together with the
// fields derived from it (normalized text, recommendation).
// Records are immutable once created.
type FeedbackRecord struct {
	ID        int    `json:"id"`
	Company   string `json:"company"`
	Category  string `json:"category"`
	Rating    int    `json:"rating"` // 0 means no rating given
	Original  string `json:"original"`
	Improved  string `json:"improved"`
	Solution  string `json:"solution"`
	Timestamp string `json:"timestamp"`
}

// SubmittedAt parses the record timestamp in the local time zone.
func (r *FeedbackRecord) SubmittedAt() (time.Time, error) {
	return time.ParseInLocation(TimestampFormat, r.Timestamp, time.Local)
}

// HasRating returns true if the submitter gave a star rating.
func (r *FeedbackRecord) HasRating() bool {
	return r.Rating > 0
}
