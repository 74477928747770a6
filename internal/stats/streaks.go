package stats

import (
	"sort"
	"time"
)

// Streaks summarizes consecutive-day commit activity.
type Streaks struct {
	CurrentStreak   int    `json:"current_streak"`
	LongestStreak   int    `json:"longest_streak"`
	TotalActiveDays int    `json:"total_active_days"`
	LastActiveDate  string `json:"last_commit_date,omitempty"`
}

// CommitStreaks derives active calendar dates from the commit timestamps
// and computes the longest and current consecutive-day streaks. The
// current streak only counts when the last active date is today or
// yesterday relative to the supplied reference time; commits further in
// the past break it, even though the longest streak is unaffected.
func CommitStreaks(commits []Commit, now time.Time) Streaks {
	if len(commits) == 0 {
		return Streaks{}
	}

	seen := make(map[time.Time]struct{})
	for _, c := range commits {
		seen[day(c.When)] = struct{}{}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	// Walk the sorted dates, closing a run whenever the gap exceeds one day.
	var runs []int
	run := 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			run++
			continue
		}
		runs = append(runs, run)
		run = 1
	}
	runs = append(runs, run)

	longest := 0
	for _, r := range runs {
		if r > longest {
			longest = r
		}
	}

	last := dates[len(dates)-1]
	daysSinceLast := int(day(now).Sub(last).Hours() / 24)

	current := 0
	if daysSinceLast <= 1 {
		current = runs[len(runs)-1]
	}

	return Streaks{
		CurrentStreak:   current,
		LongestStreak:   longest,
		TotalActiveDays: len(dates),
		LastActiveDate:  last.Format("2006-01-02"),
	}
}
