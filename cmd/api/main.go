package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
	"github.com/moodlift/moodlift/backend/internal/config"
	"github.com/moodlift/moodlift/backend/internal/handler"
	"github.com/moodlift/moodlift/backend/internal/logger"
	contentModel "github.com/moodlift/moodlift/backend/internal/model/content"
	contentService "github.com/moodlift/moodlift/backend/internal/service/content"
	moodService "github.com/moodlift/moodlift/backend/internal/service/mood"
	sessionService "github.com/moodlift/moodlift/backend/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New("moodlift-api")

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded, continuing with system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	classifier := mood.NewClassifier(mood.DefaultLexicon())
	moodSvc := moodService.NewService(classifier)

	library := contentModel.NewLibrary(contentModel.Seed())

	clientCfg := func(baseURL string) contentService.ClientConfig {
		return contentService.ClientConfig{
			BaseURL:      baseURL,
			Timeout:      cfg.Providers.Timeout,
			RetryCount:   cfg.Providers.RetryCount,
			RetryWait:    cfg.Providers.RetryWait,
			RetryMaxWait: cfg.Providers.RetryMaxWait,
		}
	}

	var jokes, quotes, images contentService.LiveSource
	if cfg.Providers.JokesEnabled() {
		jokes = contentService.NewJokeProvider(clientCfg(cfg.Providers.JokeURL))
	} else {
		log.Info().Msg("live joke provider disabled, serving static jokes only")
	}
	if cfg.Providers.QuotesEnabled() {
		quotes = contentService.NewQuoteProvider(clientCfg(cfg.Providers.QuoteURL))
	} else {
		log.Info().Msg("live quote provider disabled, serving static quotes only")
	}
	if cfg.Providers.ImagesEnabled() {
		images = contentService.NewImageProvider(clientCfg(cfg.Providers.ImageURL))
	} else {
		log.Info().Msg("live image provider disabled, serving static images only")
	}

	catalog := contentService.NewCatalog(library, jokes, quotes, images, log)
	ledger := contentService.NewLedger()
	dispatcher := contentService.NewDispatcher(catalog, ledger, log)

	sessions := sessionService.NewService()
	// Delivered-content ledgers are owned by the session and die with it.
	sessions.OnEnd(ledger.DropSession)

	router := handler.NewRouter(sessions, moodSvc, dispatcher)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Info().Str("addr", cfg.Server.Addr).Msg("MoodLift backend listening")
	if err := runServer(ctx, srv); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
