package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gitstats/internal/database"
	"gitstats/internal/validation"
)

// CreateRepositoryRequest represents the request body for creating a repository
type CreateRepositoryRequest struct {
	URL           string `json:"url"`
	DefaultBranch string `json:"default_branch"`
}

// CreateRepository handles POST /api/v1/repositories. The repository is
// registered as pending and an index job is queued for the worker.
func (h *Handler) CreateRepository(w http.ResponseWriter, r *http.Request) {
	var req CreateRepositoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	v := validation.New()
	v.Required("url", req.URL).GitURL("url", req.URL)

	if req.DefaultBranch != "" {
		v.MaxLength("default_branch", req.DefaultBranch, 255)
	}

	if err := v.Validate(); err != nil {
		Error(w, err, http.StatusBadRequest)
		return
	}

	if req.DefaultBranch == "" {
		req.DefaultBranch = "main"
	}

	ctx := r.Context()

	repo := &database.Repository{
		URL:           req.URL,
		DefaultBranch: req.DefaultBranch,
		Status:        database.StatusPending,
	}

	if err := h.db.CreateRepository(ctx, repo); err != nil {
		parsedErr := validation.ParseDatabaseError(err)
		Error(w, parsedErr, http.StatusInternalServerError)
		return
	}

	if err := h.publisher.PublishIndexJob(ctx, repo.ID); err != nil {
		// The record exists but nothing will index it; surface the failure
		h.logger.Error("failed to queue index job",
			zap.Int64("repository_id", repo.ID), zap.Error(err))
		Error(w, fmt.Errorf("failed to queue index job: %w", err), http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusAccepted, repo)
}

// GetRepository handles GET /api/v1/repositories/{repoID}
func (h *Handler) GetRepository(w http.ResponseWriter, r *http.Request) {
	id, err := h.repoID(r)
	if err != nil {
		Error(w, err, http.StatusBadRequest)
		return
	}

	repo, err := h.db.GetRepository(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrRepositoryNotFound) {
			Error(w, err, http.StatusNotFound)
			return
		}
		Error(w, validation.ParseDatabaseError(err), http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusOK, repo)
}

// GetRepositoryStatus handles GET /api/v1/repositories/{repoID}/status
func (h *Handler) GetRepositoryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := h.repoID(r)
	if err != nil {
		Error(w, err, http.StatusBadRequest)
		return
	}

	repo, err := h.db.GetRepository(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrRepositoryNotFound) {
			Error(w, err, http.StatusNotFound)
			return
		}
		Error(w, fmt.Errorf("failed to get repository status: %w", err), http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"repository_id":   repo.ID,
		"status":          repo.Status,
		"last_indexed_at": repo.LastIndexedAt,
	})
}

// ListRepositories handles GET /api/v1/repositories
func (h *Handler) ListRepositories(w http.ResponseWriter, r *http.Request) {
	repos, err := h.db.ListRepositories(r.Context())
	if err != nil {
		Error(w, validation.ParseDatabaseError(err), http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusOK, repos)
}

// SyncRepository handles POST /api/v1/repositories/{repoID}/sync. It queues
// an update job that re-extracts the repository's commit history.
func (h *Handler) SyncRepository(w http.ResponseWriter, r *http.Request) {
	id, err := h.repoID(r)
	if err != nil {
		Error(w, err, http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	repo, err := h.db.GetRepository(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrRepositoryNotFound) {
			Error(w, err, http.StatusNotFound)
			return
		}
		Error(w, validation.ParseDatabaseError(err), http.StatusInternalServerError)
		return
	}

	if err := h.publisher.PublishUpdateJob(ctx, id); err != nil {
		Error(w, fmt.Errorf("failed to queue update job: %w", err), http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusAccepted, map[string]interface{}{
		"message":       "update job queued successfully",
		"repository_id": id,
		"repository":    repo,
	})
}

// GetQueueLength handles GET /api/v1/queue/length
func (h *Handler) GetQueueLength(w http.ResponseWriter, r *http.Request) {
	length, err := h.publisher.GetQueueLength(r.Context())
	if err != nil {
		Error(w, fmt.Errorf("failed to get queue length: %w", err), http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"queue_length": length,
	})
}

// repoID parses and validates the {repoID} path parameter.
func (h *Handler) repoID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "repoID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid repository ID")
	}

	v := validation.New()
	v.GreaterThan("repoID", int(id), 0)
	if err := v.Validate(); err != nil {
		return 0, err
	}

	return id, nil
}
