package mood

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodlift/moodlift/backend/internal/model/wellness"
	moodService "github.com/moodlift/moodlift/backend/internal/service/mood"
	sessionService "github.com/moodlift/moodlift/backend/internal/service/session"
	"github.com/moodlift/moodlift/backend/pkg/utils"
)

// Handler exposes mood classification over HTTP.
type Handler struct {
	moods    *moodService.Service
	sessions *sessionService.Service
}

// New creates the mood handler.
func New(moods *moodService.Service, sessions *sessionService.Service) *Handler {
	return &Handler{moods: moods, sessions: sessions}
}

// RegisterRoutes registers the mood routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/mood/classify", h.handleClassify)
}

func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Text      string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	guidance := h.moods.HandleMoodInput(payload.Text)

	// A check-in is recorded only when the caller is in a known session;
	// classification itself needs no session.
	if payload.SessionID != "" {
		err := h.sessions.RecordCheckIn(r.Context(), wellness.CheckIn{
			SessionID:  payload.SessionID,
			Text:       payload.Text,
			Mood:       guidance.Classification.Mood,
			Confidence: guidance.Classification.Confidence,
			Reason:     guidance.Classification.Reason,
		})
		if err != nil {
			if errors.Is(err, sessionService.ErrSessionNotFound) {
				utils.RespondError(w, http.StatusNotFound, "session not found")
				return
			}
			utils.RespondError(w, http.StatusInternalServerError, "failed to record check-in")
			return
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"mood":        guidance.Classification.Mood,
		"confidence":  guidance.Classification.Confidence,
		"reason":      guidance.Classification.Reason,
		"suggestions": guidance.Suggestions,
	})
}
