package server

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"staffdesk/internal/app"
	"staffdesk/internal/platform/config"
	"staffdesk/internal/platform/i18n"
	"staffdesk/internal/transport/http/api"
	rosterhandler "staffdesk/internal/transport/http/handlers/roster"
	"staffdesk/internal/transport/http/middleware"
)

func Run() {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	catalog, err := i18n.Load()
	if err != nil {
		log.Fatalf("locale catalogs failed: %v", err)
	}

	application := app.New(cfg, catalog)
	router := NewRouter(cfg, application)

	slog.Info("employee admin server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// NewRouter wires the middleware chain and the view/intent routes around the
// application root.
func NewRouter(cfg config.Config, application *app.App) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.Language(application))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		handler := rosterhandler.NewHandler(application)
		handler.RegisterRoutes(r)
	})

	// Unmatched paths are the not-found view.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.NotFound(w, "not_found", "page not found", middleware.GetRequestID(r.Context()))
	})

	return router
}
