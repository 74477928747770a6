package database

import "time"

// RepositoryStatus represents the status of a repository indexing process
type RepositoryStatus string

const (
	StatusPending   RepositoryStatus = "pending"
	StatusIndexing  RepositoryStatus = "indexing"
	StatusCompleted RepositoryStatus = "completed"
	StatusFailed    RepositoryStatus = "failed"
)

// Repository represents a git repository being tracked
type Repository struct {
	ID            int64            `json:"id"`
	URL           string           `json:"url"`
	LocalPath     *string          `json:"local_path,omitempty"`
	DefaultBranch string           `json:"default_branch"`
	Status        RepositoryStatus `json:"status"`
	LastIndexedAt *time.Time       `json:"last_indexed_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Commit is one stored commit record row. Only the raw record is
// persisted; statistics are recomputed from these rows on every request.
type Commit struct {
	ID           int64     `json:"id"`
	RepositoryID int64     `json:"repository_id"`
	Hash         string    `json:"hash"`
	AuthorName   string    `json:"author_name"`
	AuthorEmail  string    `json:"author_email"`
	CommittedAt  time.Time `json:"committed_at"`
	CreatedAt    time.Time `json:"created_at"`
}
