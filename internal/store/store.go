package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"feedbackhub/internal/models"
)

// Store persists the full ordered collection of feedback records as a
// single pretty-printed JSON document, newest first. Writes replace the
// file wholesale via a temp file + rename so readers never observe a
// half-written document. Single-writer by contract; the mutex guards the
// load-mutate-save cycle within this process.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store backed by the given file path. The file is created
// lazily on first save; a missing file is a valid empty state.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted collection. A missing file yields an empty
// slice, not an error.
func (s *Store) Load() ([]models.FeedbackRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]models.FeedbackRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.FeedbackRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read feedback file: %w", err)
	}

	var records []models.FeedbackRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse feedback file: %w", err)
	}
	return records, nil
}

// Save overwrites the persisted collection with the given records.
func (s *Store) Save(records []models.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(records)
}

func (s *Store) save(records []models.FeedbackRecord) error {
	if records == nil {
		records = []models.FeedbackRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode feedback records: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write feedback file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace feedback file: %w", err)
	}
	return nil
}

// Append prepends record to the collection (newest-first ordering is an
// external contract, the dashboard relies on it) and persists the whole
// collection. The load-prepend-save cycle runs under the store lock.
func (s *Store) Append(record models.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	records = append([]models.FeedbackRecord{record}, records...)
	return s.save(records)
}

// Count returns the number of persisted records.
func (s *Store) Count() (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// GetByID finds a record by its sequential id.
func (s *Store) GetByID(id int) (*models.FeedbackRecord, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, ErrRecordNotFound
}

// Ping verifies the backing medium is usable: the file either loads or
// does not exist yet in a readable directory.
func (s *Store) Ping() error {
	if _, err := s.Load(); err != nil {
		return err
	}
	return nil
}
