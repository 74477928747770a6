package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"gitstats/internal/database"
	"gitstats/internal/queue"
)

type Handler struct {
	db        *database.DB
	publisher queue.IPublisher
	logger    *zap.Logger
	router    chi.Router
}

func NewHandler(db *database.DB, publisher queue.IPublisher, logger *zap.Logger) *Handler {
	h := &Handler{
		db:        db,
		publisher: publisher,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(Logger(logger))
	r.Use(CORS)

	r.Get("/ping", h.Ping)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/repositories", func(r chi.Router) {
			r.Post("/", h.CreateRepository)
			r.Get("/", h.ListRepositories)

			r.Route("/{repoID}", func(r chi.Router) {
				r.Get("/", h.GetRepository)
				r.Get("/status", h.GetRepositoryStatus)
				r.Post("/sync", h.SyncRepository)
				r.Get("/stats", h.GetStats)
			})
		})

		r.Get("/queue/length", h.GetQueueLength)
	})

	h.router = r
	return h
}

func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"message": "pong",
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}
