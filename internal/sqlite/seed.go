package sqlite

import (
	"context"
	"fmt"

	"github.com/abcstark/team-wellbeing/internal/datasource"
)

// Seed inserts every record of ds in a single transaction.
func (db *DB) Seed(ctx context.Context, ds *datasource.Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range ds.Messages {
		if err := insertMessage(ctx, tx, &ds.Messages[i]); err != nil {
			return err
		}
	}
	for i := range ds.RepoIssues {
		if err := insertRepoIssue(ctx, tx, &ds.RepoIssues[i]); err != nil {
			return err
		}
	}
	for i := range ds.Tickets {
		if err := insertTicket(ctx, tx, &ds.Tickets[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SeedIfEmpty seeds ds only when all three tables are empty. It reports whether
// anything was written.
func (db *DB) SeedIfEmpty(ctx context.Context, ds *datasource.Dataset) (bool, error) {
	var total int
	query := `
		SELECT
			(SELECT COUNT(*) FROM messages) +
			(SELECT COUNT(*) FROM repo_issues) +
			(SELECT COUNT(*) FROM tickets)
	`
	if err := db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return false, fmt.Errorf("failed to count records: %w", err)
	}
	if total > 0 {
		return false, nil
	}
	if err := db.Seed(ctx, ds); err != nil {
		return false, err
	}
	return true, nil
}
