package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"feedbackhub/internal/models"
)

func testRecord(id int, original string) models.FeedbackRecord {
	return models.FeedbackRecord{
		ID:        id,
		Company:   "Our Company",
		Category:  "General",
		Rating:    4,
		Original:  original,
		Improved:  original,
		Solution:  "Recommendation: Follow up with customer for more specific details. Consider implementing regular feedback sessions.",
		Timestamp: "2026-08-30 12:00:00",
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "feedbacks.json"))

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on missing file error = %v, want nil", err)
	}
	if len(records) != 0 {
		t.Errorf("Load() on missing file = %d records, want 0", len(records))
	}
}

func TestLoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedbacks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(path).Load(); err == nil {
		t.Error("Load() on corrupt file error = nil, want parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "feedbacks.json"))

	want := []models.FeedbackRecord{
		testRecord(2, "The tables were not clean"),
		testRecord(1, "Great experience overall today"),
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	// save(load()) is idempotent: the document content is unchanged.
	before, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(got); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	after, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("Save(Load()) changed the persisted document")
	}
}

func TestSavePrettyPrintsJSON(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "feedbacks.json"))

	if err := s.Save([]models.FeedbackRecord{testRecord(1, "Great experience overall today")}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("persisted document is not valid JSON: %v", err)
	}
	if len(data) == 0 || data[0] != '[' {
		t.Error("persisted document must be a JSON array")
	}
	if !containsByte(data, '\n') {
		t.Error("persisted document must be pretty-printed")
	}
	for _, field := range []string{"id", "company", "category", "rating", "original", "improved", "solution", "timestamp"} {
		if _, ok := decoded[0][field]; !ok {
			t.Errorf("persisted record missing field %q", field)
		}
	}
}

func containsByte(data []byte, b byte) bool {
	for _, c := range data {
		if c == b {
			return true
		}
	}
	return false
}

func TestAppendPrependsNewest(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "feedbacks.json"))

	for i := 1; i <= 3; i++ {
		if err := s.Append(testRecord(i, "Great experience overall today")); err != nil {
			t.Fatalf("Append(%d) error = %v", i, err)
		}
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	wantIDs := []int{3, 2, 1}
	for i, want := range wantIDs {
		if records[i].ID != want {
			t.Errorf("records[%d].ID = %d, want %d (newest first)", i, records[i].ID, want)
		}
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "feedbacks.json"))

	if err := s.Save([]models.FeedbackRecord{testRecord(1, "Great experience overall today")}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "feedbacks.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v, want only feedbacks.json", names)
	}
}

func TestSaveFailsOnUnwritableDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "no-such-dir", "feedbacks.json"))

	if err := s.Save([]models.FeedbackRecord{testRecord(1, "Great experience overall today")}); err == nil {
		t.Error("Save() into missing directory error = nil, want I/O error")
	}
}

func TestGetByID(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "feedbacks.json"))
	if err := s.Save([]models.FeedbackRecord{testRecord(2, "b"), testRecord(1, "a")}); err != nil {
		t.Fatal(err)
	}

	record, err := s.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID(1) error = %v", err)
	}
	if record.Original != "a" {
		t.Errorf("GetByID(1).Original = %q, want %q", record.Original, "a")
	}

	if _, err := s.GetByID(99); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("GetByID(99) error = %v, want ErrRecordNotFound", err)
	}
}
