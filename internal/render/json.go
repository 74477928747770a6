package render

import (
	"encoding/json"
	"io"

	"gitstats/internal/stats"
)

// Filters echoes the request parameters in the JSON document. They are for
// display only; the engine does not embed them in the snapshot.
type Filters struct {
	Since  *string `json:"since"`
	Until  *string `json:"until"`
	Author *string `json:"author"`
	Top    *int    `json:"top"`
}

// Document is the JSON shape consumed by scripts and the HTTP API.
type Document struct {
	Repository     string             `json:"repository"`
	TotalCommits   int                `json:"total_commits"`
	TotalAuthors   int                `json:"total_authors"`
	FirstCommit    string             `json:"first_commit"`
	LastCommit     string             `json:"last_commit"`
	Filters        Filters            `json:"filters"`
	Authors        []stats.AuthorStat `json:"authors"`
	Streaks        stats.Streaks      `json:"streaks"`
	WeeklyActivity []stats.DayStat    `json:"weekly_activity"`
	HourlyActivity []stats.HourStat   `json:"hourly_activity"`
}

// NewDocument assembles the JSON document for a report, truncating the
// author list to the requested top-N after the engine computed every
// percentage against the full filtered population.
func NewDocument(r Report) Document {
	snap := r.Snapshot

	authors := snap.Authors
	if r.Top > 0 && r.Top < len(authors) {
		authors = authors[:r.Top]
	}

	doc := Document{
		Repository:     r.Repository,
		TotalCommits:   snap.TotalCommits,
		TotalAuthors:   snap.TotalAuthors,
		FirstCommit:    snap.FirstCommit.Format("2006-01-02"),
		LastCommit:     snap.LastCommit.Format("2006-01-02"),
		Authors:        authors,
		Streaks:        snap.Streaks,
		WeeklyActivity: snap.Weekly,
		HourlyActivity: snap.Hourly,
	}

	if r.Filter.Since != nil {
		s := r.Filter.Since.Format("2006-01-02")
		doc.Filters.Since = &s
	}
	if r.Filter.Until != nil {
		u := r.Filter.Until.Format("2006-01-02")
		doc.Filters.Until = &u
	}
	if r.Filter.Author != "" {
		a := r.Filter.Author
		doc.Filters.Author = &a
	}
	if r.Top > 0 {
		top := r.Top
		doc.Filters.Top = &top
	}

	return doc
}

// JSON writes the report as an indented JSON document.
func JSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(r))
}
