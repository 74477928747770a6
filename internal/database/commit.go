package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"gitstats/internal/stats"
)

// ReplaceCommits rewrites a repository's commit history in one
// transaction: the old rows are dropped and the fresh extraction is batch
// inserted.
func (db *DB) ReplaceCommits(ctx context.Context, repositoryID int64, commits []stats.Commit) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM commits WHERE repository_id = $1`, repositoryID); err != nil {
		return fmt.Errorf("failed to clear commits: %w", err)
	}

	query := `
		INSERT INTO commits (repository_id, hash, author_name, author_email, committed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (repository_id, hash)
		DO UPDATE SET
			author_name = EXCLUDED.author_name,
			author_email = EXCLUDED.author_email,
			committed_at = EXCLUDED.committed_at
	`

	batch := &pgx.Batch{}
	for _, c := range commits {
		batch.Queue(query, repositoryID, c.Hash, c.Author, c.Email, c.When)
	}

	br := tx.SendBatch(ctx, batch)

	for range commits {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to execute batch: %w", err)
		}
	}

	// Must close batch reader before committing transaction
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CommitsByRepository loads the full commit record sequence for a
// repository. The statistics engine always consumes the complete set, so
// there is no pagination here.
func (db *DB) CommitsByRepository(ctx context.Context, repositoryID int64) ([]stats.Commit, error) {
	query := `
		SELECT hash, author_name, author_email, committed_at
		FROM commits
		WHERE repository_id = $1
		ORDER BY committed_at ASC
	`

	rows, err := db.pool.Query(ctx, query, repositoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get commits: %w", err)
	}
	defer rows.Close()

	commits := []stats.Commit{}
	for rows.Next() {
		var c stats.Commit
		if err := rows.Scan(&c.Hash, &c.Author, &c.Email, &c.When); err != nil {
			return nil, fmt.Errorf("failed to scan commit: %w", err)
		}
		commits = append(commits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return commits, nil
}

// CountCommits returns the number of stored commits for a repository.
func (db *DB) CountCommits(ctx context.Context, repositoryID int64) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM commits WHERE repository_id = $1`, repositoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count commits: %w", err)
	}
	return count, nil
}
