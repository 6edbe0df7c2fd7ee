package mocks

import (
	"context"

	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
	"github.com/stretchr/testify/mock"
)

// MessageRepository is a mock for repository.MessageRepository.
type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, msg *message.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepository) Get(ctx context.Context, id string) (*message.Message, error) {
	args := m.Called(ctx, id)
	if msg, ok := args.Get(0).(*message.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MessageRepository) List(ctx context.Context) ([]message.Message, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]message.Message); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// RepoIssueRepository is a mock for repository.RepoIssueRepository.
type RepoIssueRepository struct {
	mock.Mock
}

func (m *RepoIssueRepository) Create(ctx context.Context, issue *repoissue.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *RepoIssueRepository) Get(ctx context.Context, id int64) (*repoissue.Issue, error) {
	args := m.Called(ctx, id)
	if issue, ok := args.Get(0).(*repoissue.Issue); ok {
		return issue, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoIssueRepository) List(ctx context.Context) ([]repoissue.Issue, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]repoissue.Issue); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TicketRepository is a mock for repository.TicketRepository.
type TicketRepository struct {
	mock.Mock
}

func (m *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TicketRepository) Get(ctx context.Context, id string) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*ticket.Ticket); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TicketRepository) List(ctx context.Context) ([]ticket.Ticket, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]ticket.Ticket); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Pinger is a mock for repository.Pinger.
type Pinger struct {
	mock.Mock
}

func (m *Pinger) PingContext(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
