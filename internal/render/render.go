// Package render writes statistics snapshots to an explicit output sink,
// either as human-readable terminal output or as a JSON document. It never
// recomputes anything: percentages and rankings come from the engine, and
// top-N truncation happens here, after the fact.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"gitstats/internal/stats"
)

const (
	// Author bar is percentage/2 wide, so 100% spans 50 characters.
	authorBarDivisor = 2
	weeklyBarWidth   = 30
	peakHourCount    = 3
	maxStreakFlames  = 5
)

// Report bundles a snapshot with the display-only request parameters that
// produced it.
type Report struct {
	Repository string
	Snapshot   *stats.Snapshot
	Filter     stats.Filter
	Top        int
}

// Text renders the full statistics report to w.
func Text(w io.Writer, r Report) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "\n%s %s\n", bold("📊 Git Statistics for:"), cyan(r.Repository))

	if parts := filterParts(r.Filter); len(parts) > 0 {
		fmt.Fprintf(w, "%s\n", dim("Filtered: "+strings.Join(parts, " ")))
	}
	fmt.Fprintln(w)

	snap := r.Snapshot
	fmt.Fprintf(w, "%s %s\n", bold("Total commits:"), green(humanize.Comma(int64(snap.TotalCommits))))
	fmt.Fprintf(w, "%s %s\n", bold("Contributors:"), green(humanize.Comma(int64(snap.TotalAuthors))))
	fmt.Fprintf(w, "%s %s\n", bold("First commit:"), yellow(snap.FirstCommit.Format("2006-01-02")))
	fmt.Fprintf(w, "%s %s\n", bold("Latest commit:"), yellow(snap.LastCommit.Format("2006-01-02")))
	fmt.Fprintln(w)

	writeAuthorTable(w, snap.Authors, r.Top)
	writeActivity(w, snap, bold, cyan, green, yellow)
	writeStreaks(w, snap.Streaks, bold, cyan, green, yellow, dim)
}

func filterParts(f stats.Filter) []string {
	var parts []string
	if f.Since != nil {
		parts = append(parts, "from "+f.Since.Format("2006-01-02"))
	}
	if f.Until != nil {
		parts = append(parts, "to "+f.Until.Format("2006-01-02"))
	}
	if f.Author != "" {
		parts = append(parts, "author: "+f.Author)
	}
	return parts
}

func writeAuthorTable(w io.Writer, authors []stats.AuthorStat, top int) {
	title := "👥 Commits by Author"
	if top > 0 && top < len(authors) {
		title = fmt.Sprintf("%s (top %d of %d)", title, top, len(authors))
		authors = authors[:top]
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(title)
	tbl.AppendHeader(table.Row{"Author", "Commits", "Percentage", ""})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	for _, a := range authors {
		bar := strings.Repeat("█", int(a.Percentage)/authorBarDivisor)
		tbl.AppendRow(table.Row{a.Author, a.Commits, fmt.Sprintf("%.1f%%", a.Percentage), bar})
	}

	tbl.Render()
	fmt.Fprintln(w)
}

func writeActivity(w io.Writer, snap *stats.Snapshot, bold, cyan, green, yellow func(a ...interface{}) string) {
	fmt.Fprintf(w, "%s\n\n", bold("📅 Activity by Day of Week"))

	maxCommits := 0
	for _, d := range snap.Weekly {
		if d.Commits > maxCommits {
			maxCommits = d.Commits
		}
	}

	for _, d := range snap.Weekly {
		width := 0
		if maxCommits > 0 {
			width = d.Commits * weeklyBarWidth / maxCommits
		}
		bar := strings.Repeat("█", width)
		fmt.Fprintf(w, "  %s │ %s %3d commits\n", cyan(d.Day), green(fmt.Sprintf("%-*s", weeklyBarWidth, bar)), d.Commits)
	}
	fmt.Fprintln(w)

	peaks := peakHours(snap.Hourly)
	if len(peaks) > 0 {
		fmt.Fprintf(w, "%s\n\n", bold("⏰ Peak Coding Hours"))
		for _, h := range peaks {
			fmt.Fprintf(w, "  %s - %d commits (%.1f%%)\n", yellow(fmt.Sprintf("%02d:00", h.Hour)), h.Commits, h.Percentage)
		}
		fmt.Fprintln(w)
	}
}

// peakHours returns the busiest non-empty hours, at most peakHourCount.
func peakHours(hourly []stats.HourStat) []stats.HourStat {
	sorted := make([]stats.HourStat, len(hourly))
	copy(sorted, hourly)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Commits > sorted[j].Commits })

	var peaks []stats.HourStat
	for _, h := range sorted {
		if h.Commits == 0 || len(peaks) == peakHourCount {
			break
		}
		peaks = append(peaks, h)
	}
	return peaks
}

func writeStreaks(w io.Writer, s stats.Streaks, bold, cyan, green, yellow, dim func(a ...interface{}) string) {
	fmt.Fprintf(w, "%s\n\n", bold("🔥 Commit Streaks"))

	if s.CurrentStreak > 0 {
		flames := s.CurrentStreak
		if flames > maxStreakFlames {
			flames = maxStreakFlames
		}
		fmt.Fprintf(w, "  %s %d days %s\n", green("Current streak:"), s.CurrentStreak, strings.Repeat("🔥", flames))
	} else {
		fmt.Fprintf(w, "  %s 0 days (no recent commits)\n", dim("Current streak:"))
	}

	fmt.Fprintf(w, "  %s %d days\n", yellow("Longest streak:"), s.LongestStreak)
	fmt.Fprintf(w, "  %s %d\n", cyan("Total active days:"), s.TotalActiveDays)
	fmt.Fprintln(w)
}
