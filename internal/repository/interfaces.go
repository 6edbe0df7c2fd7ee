package repository

import (
	"context"

	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
)

// MessageRepository manages chat message persistence
type MessageRepository interface {
	Create(ctx context.Context, msg *message.Message) error
	Get(ctx context.Context, id string) (*message.Message, error)
	List(ctx context.Context) ([]message.Message, error)
}

// RepoIssueRepository manages repository issue persistence
type RepoIssueRepository interface {
	Create(ctx context.Context, issue *repoissue.Issue) error
	Get(ctx context.Context, id int64) (*repoissue.Issue, error)
	List(ctx context.Context) ([]repoissue.Issue, error)
}

// TicketRepository manages ticket persistence
type TicketRepository interface {
	Create(ctx context.Context, t *ticket.Ticket) error
	Get(ctx context.Context, id string) (*ticket.Ticket, error)
	List(ctx context.Context) ([]ticket.Ticket, error)
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}
