package stats

import (
	"errors"
	"time"
)

var (
	// ErrNoCommits means the source produced no commit records at all,
	// before any filtering.
	ErrNoCommits = errors.New("no commits found")

	// ErrNoMatchingCommits means the repository has commits but none
	// satisfy the supplied filters.
	ErrNoMatchingCommits = errors.New("no commits found matching the specified filters")
)

// Snapshot is one consistent view of the statistics for a commit
// sequence. Every field is computed from the same filtered record set.
type Snapshot struct {
	TotalCommits int          `json:"total_commits"`
	TotalAuthors int          `json:"total_authors"`
	FirstCommit  time.Time    `json:"first_commit"`
	LastCommit   time.Time    `json:"last_commit"`
	Authors      []AuthorStat `json:"authors"`
	Weekly       []DayStat    `json:"weekly_activity"`
	Hourly       []HourStat   `json:"hourly_activity"`
	Streaks      Streaks      `json:"streaks"`
}

// Build applies the filter and assembles a snapshot from the surviving
// commits. The reference time drives the current-streak check and must be
// injected by the caller so results are reproducible.
//
// Build distinguishes an empty input (ErrNoCommits) from a filter that
// matched nothing (ErrNoMatchingCommits).
func Build(commits []Commit, filter Filter, now time.Time) (*Snapshot, error) {
	if len(commits) == 0 {
		return nil, ErrNoCommits
	}

	filtered := filter.Apply(commits)
	if len(filtered) == 0 {
		return nil, ErrNoMatchingCommits
	}

	first, last := filtered[0].When, filtered[0].When
	distinct := make(map[string]struct{})
	for _, c := range filtered {
		distinct[c.Author] = struct{}{}
		if c.When.Before(first) {
			first = c.When
		}
		if c.When.After(last) {
			last = c.When
		}
	}

	return &Snapshot{
		TotalCommits: len(filtered),
		TotalAuthors: len(distinct),
		FirstCommit:  first,
		LastCommit:   last,
		Authors:      AuthorStats(filtered),
		Weekly:       WeeklyActivity(filtered),
		Hourly:       HourlyActivity(filtered),
		Streaks:      CommitStreaks(filtered, now),
	}, nil
}
