// Package pipeline orchestrates one feedback submission end-to-end:
// validation, text normalization, classification, record construction,
// and the durable append to the store.
package pipeline

import (
	"strings"
	"sync"
	"time"

	"feedbackhub/internal/insights"
	"feedbackhub/internal/models"
	"feedbackhub/internal/store"
	"feedbackhub/internal/validation"
)

// Service runs feedback submissions against a record store and the
// active company profile.
type Service struct {
	mu       sync.Mutex
	store    *store.Store
	profiles *store.ProfileHolder
	now      func() time.Time
}

// New creates a submission service.
func New(recordStore *store.Store, profiles *store.ProfileHolder) *Service {
	return &Service{
		store:    recordStore,
		profiles: profiles,
		now:      time.Now,
	}
}

// Submit processes one feedback submission. On success exactly one record
// has been durably appended and is returned; on validation failure no
// side effect occurs. The id is derived from the current store size, so a
// retry after a failed save recomputes consistently.
func (s *Service) Submit(rawText, category string, rating int) (*models.FeedbackRecord, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyFeedback
	}

	profile := s.profiles.Active()

	if !profile.HasCategory(category) {
		return nil, ErrUnknownCategory
	}

	ratingEnabled := profile == nil || profile.EnableRating
	if !ratingEnabled {
		// Ratings disabled: the form never offers a slider, so any
		// requested value is forced to "no rating given".
		rating = 0
	} else if !validation.ValidateRating(rating, ratingEnabled) {
		return nil, ErrInvalidRating
	}

	company := models.DefaultCompanyName
	if profile != nil {
		company = profile.Name
	}

	improved := insights.Normalize(rawText)
	solution := insights.Classify(improved, profile.Context())

	// Serialize id assignment with the append so concurrent submitters
	// within this process cannot derive the same id.
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.store.Count()
	if err != nil {
		return nil, err
	}

	record := models.FeedbackRecord{
		ID:        count + 1,
		Company:   company,
		Category:  category,
		Rating:    rating,
		Original:  rawText,
		Improved:  improved,
		Solution:  solution,
		Timestamp: s.now().Format(models.TimestampFormat),
	}

	if err := s.store.Append(record); err != nil {
		return nil, err
	}
	return &record, nil
}
