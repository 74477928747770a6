package stats

import "time"

// Commit is a single commit record as handed over by a log source.
// Records carry no ordering guarantee; every computation in this package
// sorts or buckets explicitly where order matters.
type Commit struct {
	Hash   string    `json:"hash"`
	Author string    `json:"author"`
	Email  string    `json:"email"`
	When   time.Time `json:"date"`
}

// day reduces a timestamp to its calendar date, using the wall-clock
// fields of the commit's own timezone.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// naive strips the timezone from a timestamp so date-range bounds compare
// against the commit's local wall-clock time.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
