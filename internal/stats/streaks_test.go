package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommitStreaksEmpty(t *testing.T) {
	s := CommitStreaks(nil, time.Now())
	assert.Equal(t, Streaks{}, s)
	assert.Empty(t, s.LastActiveDate)
}

func TestCommitStreaksConsecutiveDays(t *testing.T) {
	now := dateAt(2024, time.January, 3, 18)
	commits := []Commit{
		{When: dateAt(2024, time.January, 1, 9)},
		{When: dateAt(2024, time.January, 2, 10)},
		{When: dateAt(2024, time.January, 3, 11)},
	}

	s := CommitStreaks(commits, now)
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.TotalActiveDays)
	assert.Equal(t, "2024-01-03", s.LastActiveDate)
}

func TestCommitStreaksGapSplitsRuns(t *testing.T) {
	now := dateAt(2024, time.January, 3, 12)
	commits := []Commit{
		{When: dateAt(2024, time.January, 1, 9)},
		{When: dateAt(2024, time.January, 3, 10)},
	}

	s := CommitStreaks(commits, now)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 2, s.TotalActiveDays)
}

func TestCommitStreaksMultipleCommitsSameDayCountOnce(t *testing.T) {
	now := dateAt(2024, time.January, 2, 8)
	commits := []Commit{
		{When: dateAt(2024, time.January, 1, 9)},
		{When: dateAt(2024, time.January, 1, 15)},
		{When: dateAt(2024, time.January, 1, 23)},
		{When: dateAt(2024, time.January, 2, 1)},
	}

	s := CommitStreaks(commits, now)
	assert.Equal(t, 2, s.TotalActiveDays)
	assert.Equal(t, 2, s.LongestStreak)
	assert.Equal(t, 2, s.CurrentStreak)
}

func TestCommitStreaksBrokenByInactivity(t *testing.T) {
	// Last activity five days before evaluation: the current streak is
	// gone but the longest streak stands.
	now := dateAt(2024, time.January, 10, 12)
	commits := []Commit{
		{When: dateAt(2024, time.January, 3, 9)},
		{When: dateAt(2024, time.January, 4, 9)},
		{When: dateAt(2024, time.January, 5, 9)},
	}

	s := CommitStreaks(commits, now)
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, 0, s.CurrentStreak)
}

func TestCommitStreaksLastActiveYesterday(t *testing.T) {
	now := dateAt(2024, time.January, 6, 7)
	commits := []Commit{
		{When: dateAt(2024, time.January, 4, 9)},
		{When: dateAt(2024, time.January, 5, 9)},
	}

	s := CommitStreaks(commits, now)
	assert.Equal(t, 2, s.CurrentStreak)
}

func TestCommitStreaksCurrentIsLastRunOnly(t *testing.T) {
	// Longest run happened earlier; only the run ending at the last
	// active date counts as current.
	now := dateAt(2024, time.January, 10, 12)
	commits := []Commit{
		{When: dateAt(2024, time.January, 1, 9)},
		{When: dateAt(2024, time.January, 2, 9)},
		{When: dateAt(2024, time.January, 3, 9)},
		{When: dateAt(2024, time.January, 9, 9)},
		{When: dateAt(2024, time.January, 10, 9)},
	}

	s := CommitStreaks(commits, now)
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, 5, s.TotalActiveDays)
}

func TestCommitStreaksSingleDate(t *testing.T) {
	commits := []Commit{{When: dateAt(2024, time.January, 1, 9)}}

	s := CommitStreaks(commits, dateAt(2024, time.January, 1, 23))
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, 1, s.CurrentStreak)

	s = CommitStreaks(commits, dateAt(2024, time.February, 1, 0))
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, 0, s.CurrentStreak)
}

func TestCommitStreaksUnsortedInput(t *testing.T) {
	now := dateAt(2024, time.January, 3, 12)
	commits := []Commit{
		{When: dateAt(2024, time.January, 3, 9)},
		{When: dateAt(2024, time.January, 1, 9)},
		{When: dateAt(2024, time.January, 2, 9)},
	}

	s := CommitStreaks(commits, now)
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, 3, s.CurrentStreak)
}
