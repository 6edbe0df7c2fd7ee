package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/repository"
)

// MessageRepository implements repository.MessageRepository for SQLite
type MessageRepository struct {
	db *DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *DB) *MessageRepository {
	return &MessageRepository{db: db}
}

const messageColumns = `id, channel_id, channel_name, user_id, username, text, ts, thread_ts, reaction_count`

// Create stores a message
func (r *MessageRepository) Create(ctx context.Context, msg *message.Message) error {
	return insertMessage(ctx, r.db, msg)
}

func insertMessage(ctx context.Context, ex execer, msg *message.Message) error {
	query := `INSERT INTO messages (` + messageColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := ex.ExecContext(ctx, query,
		msg.ID,
		msg.ChannelID,
		msg.ChannelName,
		msg.UserID,
		msg.Username,
		msg.Text,
		encodeTime(msg.Timestamp),
		nullString(msg.ThreadTS),
		msg.ReactionCount,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("message %s: %w", msg.ID, repository.ErrDuplicate)
		case isCheckViolation(err):
			return fmt.Errorf("message %s: %w", msg.ID, repository.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// Get retrieves a message by ID
func (r *MessageRepository) Get(ctx context.Context, id string) (*message.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = ?`

	msg, err := scanMessage(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

// List returns every message in insertion order
func (r *MessageRepository) List(ctx context.Context) ([]message.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	msgs := []message.Message{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msgs = append(msgs, *msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return msgs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (*message.Message, error) {
	var (
		msg      message.Message
		ts       string
		threadTS sql.NullString
	)
	err := row.Scan(
		&msg.ID,
		&msg.ChannelID,
		&msg.ChannelName,
		&msg.UserID,
		&msg.Username,
		&msg.Text,
		&ts,
		&threadTS,
		&msg.ReactionCount,
	)
	if err != nil {
		return nil, err
	}
	if msg.Timestamp, err = decodeTime(ts); err != nil {
		return nil, err
	}
	msg.ThreadTS = stringPtr(threadTS)
	return &msg, nil
}
