// Package gitlog extracts flat commit records from git repositories.
// It is the input side of the statistics engine: everything it returns is
// a plain stats.Commit sequence, with no ordering guarantee.
package gitlog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"gitstats/internal/stats"
)

// ErrNotRepository is returned when the target path cannot be opened as a
// git repository or has no commits to walk. Callers surface both the same
// way: there are no statistics to produce.
var ErrNotRepository = errors.New("no commits found or not a git repository")

// Read extracts all commits reachable from HEAD of the repository at path.
func Read(path string) ([]stats.Commit, error) {
	return ReadContext(context.Background(), path)
}

// ReadContext is Read with cancellation.
func ReadContext(ctx context.Context, path string) ([]stats.Commit, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
	}

	commits, err := readRepository(ctx, repo)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
	}

	return commits, nil
}

// CloneOrOpen opens the repository at path if one exists, otherwise
// clones url there. Used by the indexing worker.
func CloneOrOpen(ctx context.Context, url, path string) (*git.Repository, error) {
	if _, err := os.Stat(path); err == nil {
		repo, err := git.PlainOpen(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
		}
		return repo, nil
	}

	repo, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{URL: url})
	if err != nil {
		return nil, fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return repo, nil
}

// Extract walks HEAD of an already-open repository.
func Extract(ctx context.Context, repo *git.Repository) ([]stats.Commit, error) {
	return readRepository(ctx, repo)
}

func readRepository(ctx context.Context, repo *git.Repository) ([]stats.Commit, error) {
	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRepository, err)
	}

	iter, err := repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to get commit log: %w", err)
	}
	defer iter.Close()

	var commits []stats.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		commits = append(commits, stats.Commit{
			Hash:   c.Hash.String(),
			Author: c.Author.Name,
			Email:  c.Author.Email,
			When:   c.Author.When,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}

	return commits, nil
}
