package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	contentHandler "github.com/moodlift/moodlift/backend/internal/handler/content"
	moodHandler "github.com/moodlift/moodlift/backend/internal/handler/mood"
	sessionHandler "github.com/moodlift/moodlift/backend/internal/handler/session"
	middlewarePkg "github.com/moodlift/moodlift/backend/internal/middleware"
	contentService "github.com/moodlift/moodlift/backend/internal/service/content"
	moodService "github.com/moodlift/moodlift/backend/internal/service/mood"
	sessionService "github.com/moodlift/moodlift/backend/internal/service/session"
	"github.com/moodlift/moodlift/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(sessions *sessionService.Service, moods *moodService.Service, dispatcher *contentService.Dispatcher) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		sessionHandler.New(sessions).RegisterRoutes(api)
		moodHandler.New(moods, sessions).RegisterRoutes(api)
		contentHandler.New(dispatcher, sessions).RegisterRoutes(api)
	})

	return r
}
