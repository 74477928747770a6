package stats

import (
	"strings"
	"time"
)

// Filter narrows a commit sequence by date range and/or author name.
// A zero Filter keeps everything.
type Filter struct {
	Since  *time.Time // inclusive calendar-date lower bound
	Until  *time.Time // inclusive upper bound, covers the whole day
	Author string     // case-insensitive substring of the author name
}

// IsZero reports whether no filter criteria were supplied.
func (f Filter) IsZero() bool {
	return f.Since == nil && f.Until == nil && f.Author == ""
}

// Apply returns the subsequence of commits satisfying every supplied
// predicate, preserving input order. With no criteria it returns a fresh
// copy of the input.
func (f Filter) Apply(commits []Commit) []Commit {
	filtered := make([]Commit, 0, len(commits))

	var until time.Time
	if f.Until != nil {
		// Include the entire "until" day.
		until = day(*f.Until).AddDate(0, 0, 1)
	}
	author := strings.ToLower(f.Author)

	for _, c := range commits {
		when := naive(c.When)
		if f.Since != nil && when.Before(day(*f.Since)) {
			continue
		}
		if f.Until != nil && !when.Before(until) {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(c.Author), author) {
			continue
		}
		filtered = append(filtered, c)
	}

	return filtered
}
