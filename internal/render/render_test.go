package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitstats/internal/stats"
)

func testReport(t *testing.T, top int) Report {
	t.Helper()

	when := func(d, h int) time.Time {
		return time.Date(2024, time.January, d, h, 0, 0, 0, time.UTC)
	}
	commits := []stats.Commit{
		{Hash: "c1", Author: "Alice", When: when(1, 9)},
		{Hash: "c2", Author: "Alice", When: when(2, 14)},
		{Hash: "c3", Author: "Bob", When: when(3, 18)},
	}

	snap, err := stats.Build(commits, stats.Filter{}, when(3, 20))
	require.NoError(t, err)

	return Report{
		Repository: "/tmp/repo",
		Snapshot:   snap,
		Top:        top,
	}
}

func TestTextReport(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Text(&buf, testReport(t, 0))
	out := buf.String()

	assert.Contains(t, out, "Git Statistics for:")
	assert.Contains(t, out, "/tmp/repo")
	assert.Contains(t, out, "Total commits: 3")
	assert.Contains(t, out, "Contributors: 2")
	assert.Contains(t, out, "First commit: 2024-01-01")
	assert.Contains(t, out, "Latest commit: 2024-01-03")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "Current streak: 3 days")
	assert.Contains(t, out, "Longest streak: 3 days")
	assert.Contains(t, out, "Total active days: 3")
	assert.NotContains(t, out, "Filtered:")
}

func TestTextReportTopTruncation(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Text(&buf, testReport(t, 1))
	out := buf.String()

	assert.Contains(t, out, "top 1 of 2")
	assert.NotContains(t, out, "Bob")
}

func TestTextReportShowsFilters(t *testing.T) {
	color.NoColor = true

	r := testReport(t, 0)
	since := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	r.Filter = stats.Filter{Since: &since, Author: "alice"}

	var buf bytes.Buffer
	Text(&buf, r)

	assert.Contains(t, buf.String(), "Filtered: from 2024-01-01 author: alice")
}

func TestJSONDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, testReport(t, 0)))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "/tmp/repo", doc.Repository)
	assert.Equal(t, 3, doc.TotalCommits)
	assert.Equal(t, 2, doc.TotalAuthors)
	assert.Equal(t, "2024-01-01", doc.FirstCommit)
	assert.Equal(t, "2024-01-03", doc.LastCommit)
	assert.Len(t, doc.Authors, 2)
	assert.Len(t, doc.WeeklyActivity, 7)
	assert.Len(t, doc.HourlyActivity, 24)
	assert.Equal(t, 3, doc.Streaks.LongestStreak)

	// Unused filters serialize as explicit nulls.
	assert.Nil(t, doc.Filters.Since)
	assert.Nil(t, doc.Filters.Author)
	assert.True(t, strings.Contains(buf.String(), `"since": null`))
}

func TestJSONTruncatesAuthorsAfterPercentages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, testReport(t, 1)))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Authors, 1)
	assert.Equal(t, "Alice", doc.Authors[0].Author)
	// Percentage still reflects the full population, not the truncated list.
	assert.InDelta(t, 66.67, doc.Authors[0].Percentage, 0.01)
	require.NotNil(t, doc.Filters.Top)
	assert.Equal(t, 1, *doc.Filters.Top)
}
