package api

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"feedbackhub/internal/models"
	"feedbackhub/internal/pipeline"
	"feedbackhub/internal/store"
)

// recordingNotifier captures notified records for assertions.
type recordingNotifier struct {
	enabled bool
	seen    chan *models.FeedbackRecord
}

func newRecordingNotifier(enabled bool) *recordingNotifier {
	return &recordingNotifier{enabled: enabled, seen: make(chan *models.FeedbackRecord, 1)}
}

func (n *recordingNotifier) IsEnabled() bool { return n.enabled }

func (n *recordingNotifier) NotifyNewFeedback(record *models.FeedbackRecord) error {
	n.seen <- record
	return nil
}

func newTestApp(t *testing.T, notifier Notifier) *fiber.App {
	t.Helper()

	recordStore := store.New(filepath.Join(t.TempDir(), "feedbacks.json"))
	profiles := store.NewProfileHolder()
	handler := NewFeedbackHandler(recordStore, pipeline.New(recordStore, profiles), notifier)

	app := fiber.New()
	app.Get("/api/feedback", handler.List)
	app.Get("/api/feedback/:id", handler.Get)
	app.Post("/api/feedback", handler.Create)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestAPISubmitAndList(t *testing.T) {
	app := newTestApp(t, newRecordingNotifier(false))

	resp := postJSON(t, app, "/api/feedback", `{"feedback":"Great service, loved it!","category":"General","rating":5}`)
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("create: expected 201, got %d: %s", resp.StatusCode, body)
	}

	req, _ := http.NewRequest("GET", "/api/feedback", nil)
	listResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", listResp.StatusCode)
	}

	var envelope struct {
		Status string `json:"status"`
		Data   []struct {
			ID       int    `json:"id"`
			Rating   int    `json:"rating"`
			Solution string `json:"solution"`
		} `json:"data"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	if envelope.Status != "ok" || len(envelope.Data) != 1 {
		t.Fatalf("list envelope = %+v, want one record", envelope)
	}
	if envelope.Data[0].ID != 1 || envelope.Data[0].Rating != 5 {
		t.Errorf("record = %+v, want id 1 rating 5", envelope.Data[0])
	}
	if !strings.Contains(envelope.Data[0].Solution, "Positive feedback received!") {
		t.Errorf("solution = %q, want positive acknowledgment", envelope.Data[0].Solution)
	}
}

func TestAPISubmitNotifiesStaff(t *testing.T) {
	notifier := newRecordingNotifier(true)
	app := newTestApp(t, notifier)

	resp := postJSON(t, app, "/api/feedback", `{"feedback":"Service was quite slow today","category":"General","rating":2}`)
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("create: expected 201, got %d: %s", resp.StatusCode, body)
	}

	select {
	case record := <-notifier.seen:
		if record.ID != 1 {
			t.Errorf("notified record id = %d, want 1", record.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never called for the new submission")
	}
}

func TestAPISubmitSkipsDisabledNotifier(t *testing.T) {
	notifier := newRecordingNotifier(false)
	app := newTestApp(t, notifier)

	resp := postJSON(t, app, "/api/feedback", `{"feedback":"Tables were not clean today","category":"General","rating":3}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}

	select {
	case <-notifier.seen:
		t.Error("disabled notifier should not receive submissions")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAPISubmitValidation(t *testing.T) {
	app := newTestApp(t, newRecordingNotifier(false))

	tests := []struct {
		name string
		body string
	}{
		{"empty feedback", `{"feedback":"   ","category":"General","rating":3}`},
		{"unknown category", `{"feedback":"Service was quite slow","category":"Bogus","rating":3}`},
		{"rating out of range", `{"feedback":"Service was quite slow","category":"General","rating":9}`},
		{"malformed body", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/feedback", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("expected 400, got %d: %s", resp.StatusCode, body)
			}
		})
	}
}

func TestAPIGet(t *testing.T) {
	app := newTestApp(t, newRecordingNotifier(false))

	postJSON(t, app, "/api/feedback", `{"feedback":"Tables were not clean today","category":"General","rating":2}`)

	req, _ := http.NewRequest("GET", "/api/feedback/1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", resp.StatusCode)
	}

	req404, _ := http.NewRequest("GET", "/api/feedback/99", nil)
	resp404, err := app.Test(req404)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	if resp404.StatusCode != http.StatusNotFound {
		t.Errorf("get missing: expected 404, got %d", resp404.StatusCode)
	}

	reqBad, _ := http.NewRequest("GET", "/api/feedback/abc", nil)
	respBad, err := app.Test(reqBad)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	if respBad.StatusCode != http.StatusBadRequest {
		t.Errorf("get invalid id: expected 400, got %d", respBad.StatusCode)
	}
}
