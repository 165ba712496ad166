package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	sessionService "github.com/moodlift/moodlift/backend/internal/service/session"
)

func setupRouter() (*chi.Mux, *sessionService.Service) {
	sessions := sessionService.NewService()
	handler := New(sessions)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, sessions
}

func TestCreateSession(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var body struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID == "" {
		t.Fatal("expected a session ID")
	}
}

func TestEndSessionLifecycle(t *testing.T) {
	r, _ := setupRouter()

	create := httptest.NewRecorder()
	r.ServeHTTP(create, httptest.NewRequest(http.MethodPost, "/session", nil))
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(create.Body.Bytes(), &created)

	end := httptest.NewRecorder()
	r.ServeHTTP(end, httptest.NewRequest(http.MethodDelete, "/session/"+created.ID, nil))
	if end.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", end.Code)
	}

	again := httptest.NewRecorder()
	r.ServeHTTP(again, httptest.NewRequest(http.MethodDelete, "/session/"+created.ID, nil))
	if again.Code != http.StatusNotFound {
		t.Fatalf("ending twice should 404, got %d", again.Code)
	}
}

func TestHistoryUnknownSession(t *testing.T) {
	r, _ := setupRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/session/missing/history", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestHistoryEmptyForNewSession(t *testing.T) {
	r, _ := setupRouter()

	create := httptest.NewRecorder()
	r.ServeHTTP(create, httptest.NewRequest(http.MethodPost, "/session", nil))
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(create.Body.Bytes(), &created)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/session/"+created.ID+"/history", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		SessionID string            `json:"sessionId"`
		Checkins  []json.RawMessage `json:"checkins"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.SessionID != created.ID {
		t.Fatalf("unexpected sessionId %s", body.SessionID)
	}
	if len(body.Checkins) != 0 {
		t.Fatalf("expected empty history, got %d", len(body.Checkins))
	}
}
