package gitlog

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"gitstats/internal/stats"
)

// Line format produced by `git log --format=%H|%an|%ae|%aI`.
const logFieldCount = 4

var errMalformedLine = errors.New("malformed log line")

// ParseLine parses one pipe-delimited log line into a commit record.
func ParseLine(line string) (stats.Commit, error) {
	parts := strings.SplitN(line, "|", logFieldCount)
	if len(parts) < logFieldCount {
		return stats.Commit{}, errMalformedLine
	}

	when, err := time.Parse(time.RFC3339, parts[3])
	if err != nil {
		return stats.Commit{}, errMalformedLine
	}

	return stats.Commit{
		Hash:   parts[0],
		Author: parts[1],
		Email:  parts[2],
		When:   when,
	}, nil
}

// ReadFrom parses piped `git log` output line by line. Malformed lines are
// skipped rather than aborting the whole run.
func ReadFrom(r io.Reader) ([]stats.Commit, error) {
	var commits []stats.Commit

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		commit, err := ParseLine(line)
		if err != nil {
			continue
		}
		commits = append(commits, commit)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(commits) == 0 {
		return nil, ErrNotRepository
	}

	return commits, nil
}
