package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/repository"
)

// RepoIssueRepository implements repository.RepoIssueRepository for SQLite
type RepoIssueRepository struct {
	db *DB
}

// NewRepoIssueRepository creates a new RepoIssueRepository
func NewRepoIssueRepository(db *DB) *RepoIssueRepository {
	return &RepoIssueRepository{db: db}
}

const repoIssueColumns = `id, number, title, body, state, author, assignees, labels,
	created_at, updated_at, closed_at, repository, comments_count`

// Create stores an issue
func (r *RepoIssueRepository) Create(ctx context.Context, issue *repoissue.Issue) error {
	return insertRepoIssue(ctx, r.db, issue)
}

func insertRepoIssue(ctx context.Context, ex execer, issue *repoissue.Issue) error {
	assignees, err := encodeStrings(issue.Assignees)
	if err != nil {
		return err
	}
	labels, err := encodeStrings(issue.Labels)
	if err != nil {
		return err
	}

	query := `INSERT INTO repo_issues (` + repoIssueColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = ex.ExecContext(ctx, query,
		issue.ID,
		issue.Number,
		issue.Title,
		nullString(issue.Body),
		string(issue.State),
		issue.Author,
		assignees,
		labels,
		encodeTime(issue.CreatedAt),
		encodeTimePtr(issue.UpdatedAt),
		encodeTimePtr(issue.ClosedAt),
		issue.Repository,
		issue.CommentsCount,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("repo issue %d: %w", issue.ID, repository.ErrDuplicate)
		case isCheckViolation(err):
			return fmt.Errorf("repo issue %d: %w", issue.ID, repository.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create repo issue: %w", err)
	}
	return nil
}

// Get retrieves an issue by ID
func (r *RepoIssueRepository) Get(ctx context.Context, id int64) (*repoissue.Issue, error) {
	query := `SELECT ` + repoIssueColumns + ` FROM repo_issues WHERE id = ?`

	issue, err := scanRepoIssue(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get repo issue: %w", err)
	}
	return issue, nil
}

// List returns every issue ordered by ID
func (r *RepoIssueRepository) List(ctx context.Context) ([]repoissue.Issue, error) {
	query := `SELECT ` + repoIssueColumns + ` FROM repo_issues ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list repo issues: %w", err)
	}
	defer rows.Close()

	issues := []repoissue.Issue{}
	for rows.Next() {
		issue, err := scanRepoIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan repo issue: %w", err)
		}
		issues = append(issues, *issue)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating repo issue rows: %w", err)
	}

	return issues, nil
}

func scanRepoIssue(row rowScanner) (*repoissue.Issue, error) {
	var (
		issue               repoissue.Issue
		body                sql.NullString
		state               string
		assignees, labels   string
		createdAt           string
		updatedAt, closedAt sql.NullString
	)
	err := row.Scan(
		&issue.ID,
		&issue.Number,
		&issue.Title,
		&body,
		&state,
		&issue.Author,
		&assignees,
		&labels,
		&createdAt,
		&updatedAt,
		&closedAt,
		&issue.Repository,
		&issue.CommentsCount,
	)
	if err != nil {
		return nil, err
	}

	issue.Body = stringPtr(body)
	issue.State = repoissue.State(state)
	if issue.Assignees, err = decodeStrings(assignees); err != nil {
		return nil, err
	}
	if issue.Labels, err = decodeStrings(labels); err != nil {
		return nil, err
	}
	if issue.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if issue.UpdatedAt, err = decodeTimePtr(updatedAt); err != nil {
		return nil, err
	}
	if issue.ClosedAt, err = decodeTimePtr(closedAt); err != nil {
		return nil, err
	}
	return &issue, nil
}
