package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// ErrRepositoryNotFound is returned when a repository lookup matches nothing.
var ErrRepositoryNotFound = errors.New("repository not found")

// CreateRepository creates a new repository record
func (db *DB) CreateRepository(ctx context.Context, repo *Repository) error {
	query := `
		INSERT INTO repositories (url, status, default_branch)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	defaultBranch := repo.DefaultBranch
	if defaultBranch == "" {
		defaultBranch = "main"
	}

	err := db.pool.QueryRow(ctx, query, repo.URL, repo.Status, defaultBranch).
		Scan(&repo.ID, &repo.CreatedAt, &repo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	return nil
}

// GetRepository retrieves a repository by ID
func (db *DB) GetRepository(ctx context.Context, id int64) (*Repository, error) {
	query := `
		SELECT id, url, local_path, default_branch, status, last_indexed_at, created_at, updated_at
		FROM repositories
		WHERE id = $1
	`

	repo := &Repository{}
	err := db.pool.QueryRow(ctx, query, id).Scan(
		&repo.ID,
		&repo.URL,
		&repo.LocalPath,
		&repo.DefaultBranch,
		&repo.Status,
		&repo.LastIndexedAt,
		&repo.CreatedAt,
		&repo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}

	return repo, nil
}

// GetRepositoryByURL retrieves a repository by its URL
func (db *DB) GetRepositoryByURL(ctx context.Context, url string) (*Repository, error) {
	query := `
		SELECT id, url, local_path, default_branch, status, last_indexed_at, created_at, updated_at
		FROM repositories
		WHERE url = $1
	`

	repo := &Repository{}
	err := db.pool.QueryRow(ctx, query, url).Scan(
		&repo.ID,
		&repo.URL,
		&repo.LocalPath,
		&repo.DefaultBranch,
		&repo.Status,
		&repo.LastIndexedAt,
		&repo.CreatedAt,
		&repo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}

	return repo, nil
}

// ListRepositories retrieves all repositories ordered by creation time
func (db *DB) ListRepositories(ctx context.Context) ([]*Repository, error) {
	query := `
		SELECT id, url, local_path, default_branch, status, last_indexed_at, created_at, updated_at
		FROM repositories
		ORDER BY created_at DESC
	`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}
	defer rows.Close()

	repositories := []*Repository{}
	for rows.Next() {
		repo := &Repository{}
		err := rows.Scan(
			&repo.ID,
			&repo.URL,
			&repo.LocalPath,
			&repo.DefaultBranch,
			&repo.Status,
			&repo.LastIndexedAt,
			&repo.CreatedAt,
			&repo.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan repository: %w", err)
		}
		repositories = append(repositories, repo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return repositories, nil
}

// UpdateRepositoryStatus updates the status of a repository
func (db *DB) UpdateRepositoryStatus(ctx context.Context, id int64, status RepositoryStatus) error {
	query := `
		UPDATE repositories
		SET status = $2, updated_at = now()
		WHERE id = $1
	`

	if _, err := db.pool.Exec(ctx, query, id, status); err != nil {
		return fmt.Errorf("failed to update repository status: %w", err)
	}

	return nil
}

// MarkRepositoryIndexed records a successful indexing run.
func (db *DB) MarkRepositoryIndexed(ctx context.Context, id int64, localPath string, indexedAt time.Time) error {
	query := `
		UPDATE repositories
		SET status = $2, local_path = $3, last_indexed_at = $4, updated_at = now()
		WHERE id = $1
	`

	if _, err := db.pool.Exec(ctx, query, id, StatusCompleted, localPath, indexedAt); err != nil {
		return fmt.Errorf("failed to mark repository indexed: %w", err)
	}

	return nil
}
