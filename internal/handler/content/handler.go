package content

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
	contentModel "github.com/moodlift/moodlift/backend/internal/model/content"
	contentService "github.com/moodlift/moodlift/backend/internal/service/content"
	sessionService "github.com/moodlift/moodlift/backend/internal/service/session"
	"github.com/moodlift/moodlift/backend/pkg/utils"
)

const defaultBatchSize = 3

// Handler exposes deduplicated content batches over HTTP.
type Handler struct {
	dispatcher *contentService.Dispatcher
	sessions   *sessionService.Service
}

// New creates the content handler.
func New(dispatcher *contentService.Dispatcher, sessions *sessionService.Service) *Handler {
	return &Handler{dispatcher: dispatcher, sessions: sessions}
}

// RegisterRoutes registers the content routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/content/batch", h.handleBatch)
}

func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID   string `json:"sessionId"`
		Mood        string `json:"mood"`
		ContentType string `json:"contentType"`
		Count       int    `json:"count"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.SessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	category, ok := mood.ParseCategory(payload.Mood)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "unknown mood")
		return
	}
	contentType, ok := contentModel.ParseType(payload.ContentType)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "unknown content type")
		return
	}

	if _, err := h.sessions.GetSession(r.Context(), payload.SessionID); err != nil {
		if errors.Is(err, sessionService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	count := payload.Count
	if count == 0 {
		count = defaultBatchSize
	}

	// The dispatcher clamps count to the 2..5 product bound.
	batch := h.dispatcher.GetBatch(r.Context(), payload.SessionID, contentType, category, count)
	utils.RespondJSON(w, http.StatusOK, batch)
}
