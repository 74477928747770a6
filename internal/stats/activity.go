package stats

// Weekday labels in output order, Monday first.
var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const hoursPerDay = 24

// DayStat is the commit activity of one weekday bucket.
type DayStat struct {
	Day        string  `json:"day"`
	Commits    int     `json:"commits"`
	Percentage float64 `json:"percentage"`
}

// HourStat is the commit activity of one hour-of-day bucket.
type HourStat struct {
	Hour       int     `json:"hour"`
	Commits    int     `json:"commits"`
	Percentage float64 `json:"percentage"`
}

// WeeklyActivity buckets commits by weekday. All 7 buckets are always
// present, Monday first, empty or not.
func WeeklyActivity(commits []Commit) []DayStat {
	counts := make([]int, len(weekdays))
	for _, c := range commits {
		// time.Weekday starts on Sunday; shift to Monday = 0.
		counts[(int(c.When.Weekday())+6)%7]++
	}

	total := len(commits)
	weekly := make([]DayStat, len(weekdays))
	for i, label := range weekdays {
		weekly[i] = DayStat{
			Day:        label,
			Commits:    counts[i],
			Percentage: percentage(counts[i], total),
		}
	}

	return weekly
}

// HourlyActivity buckets commits by their local hour of day. All 24
// buckets are always present, in ascending hour order.
func HourlyActivity(commits []Commit) []HourStat {
	counts := make([]int, hoursPerDay)
	for _, c := range commits {
		counts[c.When.Hour()]++
	}

	total := len(commits)
	hourly := make([]HourStat, hoursPerDay)
	for h := range hourly {
		hourly[h] = HourStat{
			Hour:       h,
			Commits:    counts[h],
			Percentage: percentage(counts[h], total),
		}
	}

	return hourly
}

// percentage guards against an empty population: 0 of 0 is 0%, not NaN.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) * 100.0 / float64(total)
}
