package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gitstats/internal/database"
	"gitstats/internal/render"
	"gitstats/internal/stats"
	"gitstats/internal/validation"
)

// GetStats handles GET /api/v1/repositories/{repoID}/stats. Query
// parameters: since, until (YYYY-MM-DD), author (substring match) and top
// (author table size). Statistics are computed on the fly from the stored
// commit records.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	id, err := h.repoID(r)
	if err != nil {
		Error(w, err, http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	sinceStr := query.Get("since")
	untilStr := query.Get("until")
	author := query.Get("author")

	top := 10
	if topStr := query.Get("top"); topStr != "" {
		parsed, err := strconv.Atoi(topStr)
		if err != nil {
			Error(w, fmt.Errorf("invalid top parameter"), http.StatusBadRequest)
			return
		}
		top = parsed
	}

	v := validation.New()
	v.Date("since", sinceStr).
		Date("until", untilStr).
		InRange("top", top, 1, 1000)
	if err := v.Validate(); err != nil {
		Error(w, err, http.StatusBadRequest)
		return
	}

	since, _ := validation.ParseDate(sinceStr)
	until, _ := validation.ParseDate(untilStr)

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

	commits, err := h.db.CommitsByRepository(ctx, id)
	if err != nil {
		Error(w, validation.ParseDatabaseError(err), http.StatusInternalServerError)
		return
	}

	filter := stats.Filter{Since: since, Until: until, Author: author}

	snapshot, err := stats.Build(commits, filter, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrNoCommits):
			JSON(w, http.StatusNotFound, ErrorResponse{
				Error: "no commits indexed for this repository",
				Code:  "no_commits",
			})
		case errors.Is(err, stats.ErrNoMatchingCommits):
			JSON(w, http.StatusNotFound, ErrorResponse{
				Error: "no commits match the given filters",
				Code:  "no_matching_commits",
			})
		default:
			Error(w, err, http.StatusInternalServerError)
		}
		return
	}

	report := render.Report{
		Repository: repo.URL,
		Snapshot:   snapshot,
		Filter:     filter,
		Top:        top,
	}

	JSON(w, http.StatusOK, render.NewDocument(report))
}
