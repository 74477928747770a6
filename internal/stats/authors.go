package stats

import "sort"

// AuthorStat holds the contribution share of a single author.
type AuthorStat struct {
	Author     string  `json:"author"`
	Commits    int     `json:"commits"`
	Percentage float64 `json:"percentage"`
}

// AuthorStats groups commits by exact author name and returns one entry
// per distinct author, sorted by commit count descending. Authors with
// equal counts are ordered by name so the output is deterministic.
// Percentages are computed against the full input; truncation to a top-N
// is left to the caller.
func AuthorStats(commits []Commit) []AuthorStat {
	counts := make(map[string]int)
	for _, c := range commits {
		counts[c.Author]++
	}

	total := len(commits)
	authors := make([]AuthorStat, 0, len(counts))
	for author, count := range counts {
		authors = append(authors, AuthorStat{
			Author:     author,
			Commits:    count,
			Percentage: float64(count) * 100.0 / float64(total),
		})
	}

	sort.Slice(authors, func(i, j int) bool {
		if authors[i].Commits != authors[j].Commits {
			return authors[i].Commits > authors[j].Commits
		}
		return authors[i].Author < authors[j].Author
	})

	return authors
}
