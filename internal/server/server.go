package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/liftlog/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  *store.Store
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(st *store.Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  st,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", s.handleGetState)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handlePutProfile)

		r.Get("/routines", s.handleListRoutines)
		r.Post("/routines", s.handleCreateRoutine)
		r.Get("/routines/{id}", s.handleGetRoutine)
		r.Put("/routines/{id}", s.handleUpdateRoutine)
		r.Delete("/routines/{id}", s.handleDeleteRoutine)
		r.Post("/routines/{id}/start", s.handleStartSession)

		r.Get("/sessions", s.handleListSessions)
		r.Post("/sessions", s.handleLogSession)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Get("/sessions/{id}/stats", s.handleSessionStats)

		r.Get("/exercises", s.handleListExercises)
		r.Post("/exercises", s.handleCreateExercise)
		r.Get("/exercises/{id}", s.handleGetExercise)
		r.Put("/exercises/{id}", s.handleUpdateExercise)
		r.Delete("/exercises/{id}", s.handleDeleteExercise)

		r.Get("/settings/notifications", s.handleGetNotifications)
		r.Put("/settings/notifications", s.handlePutNotifications)

		r.Get("/stats/timeseries", s.handleTimeSeries)
		r.Get("/stats/summary", s.handleSummary)
		r.Get("/stats/week", s.handleWeekProgress)

		// Data management (API key required — import and reset are destructive)
		r.Route("/data", func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Get("/export", s.handleExport)
			r.Post("/import", s.handleImport)
			r.Post("/reset", s.handleReset)
		})
	})
}
