package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
	"github.com/abcstark/team-wellbeing/internal/repository"
)

// TicketRepository implements repository.TicketRepository for SQLite
type TicketRepository struct {
	db *DB
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(db *DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketColumns = `id, key, summary, description, status, priority, issue_type, reporter, assignee,
	labels, components, created, updated, resolved, project_key, story_points, time_spent`

// Create stores a ticket
func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	return insertTicket(ctx, r.db, t)
}

func insertTicket(ctx context.Context, ex execer, t *ticket.Ticket) error {
	labels, err := encodeStrings(t.Labels)
	if err != nil {
		return err
	}
	components, err := encodeStrings(t.Components)
	if err != nil {
		return err
	}

	var points sql.NullFloat64
	if t.StoryPoints != nil {
		points = sql.NullFloat64{Float64: *t.StoryPoints, Valid: true}
	}
	var spent sql.NullInt64
	if t.TimeSpent != nil {
		spent = sql.NullInt64{Int64: *t.TimeSpent, Valid: true}
	}

	query := `INSERT INTO tickets (` + ticketColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = ex.ExecContext(ctx, query,
		t.ID,
		t.Key,
		t.Summary,
		nullString(t.Description),
		t.Status,
		t.Priority,
		t.IssueType,
		t.Reporter,
		nullString(t.Assignee),
		labels,
		components,
		encodeTime(t.Created),
		encodeTimePtr(t.Updated),
		encodeTimePtr(t.Resolved),
		t.ProjectKey,
		points,
		spent,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("ticket %s: %w", t.Key, repository.ErrDuplicate)
		case isCheckViolation(err):
			return fmt.Errorf("ticket %s: %w", t.Key, repository.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

// Get retrieves a ticket by ID
func (r *TicketRepository) Get(ctx context.Context, id string) (*ticket.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = ?`

	t, err := scanTicket(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return t, nil
}

// List returns every ticket in insertion order
func (r *TicketRepository) List(ctx context.Context) ([]ticket.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	tickets := []ticket.Ticket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, *t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ticket rows: %w", err)
	}

	return tickets, nil
}

func scanTicket(row rowScanner) (*ticket.Ticket, error) {
	var (
		t                  ticket.Ticket
		description        sql.NullString
		assignee           sql.NullString
		labels, components string
		created            string
		updated, resolved  sql.NullString
		points             sql.NullFloat64
		spent              sql.NullInt64
	)
	err := row.Scan(
		&t.ID,
		&t.Key,
		&t.Summary,
		&description,
		&t.Status,
		&t.Priority,
		&t.IssueType,
		&t.Reporter,
		&assignee,
		&labels,
		&components,
		&created,
		&updated,
		&resolved,
		&t.ProjectKey,
		&points,
		&spent,
	)
	if err != nil {
		return nil, err
	}

	t.Description = stringPtr(description)
	t.Assignee = stringPtr(assignee)
	if t.Labels, err = decodeStrings(labels); err != nil {
		return nil, err
	}
	if t.Components, err = decodeStrings(components); err != nil {
		return nil, err
	}
	if t.Created, err = decodeTime(created); err != nil {
		return nil, err
	}
	if t.Updated, err = decodeTimePtr(updated); err != nil {
		return nil, err
	}
	if t.Resolved, err = decodeTimePtr(resolved); err != nil {
		return nil, err
	}
	if points.Valid {
		v := points.Float64
		t.StoryPoints = &v
	}
	if spent.Valid {
		v := spent.Int64
		t.TimeSpent = &v
	}
	return &t, nil
}
