package datasource

import (
	"context"
	"fmt"

	"github.com/abcstark/team-wellbeing/internal/repository"
)

// RepositorySource reads datasets from persisted repositories.
type RepositorySource struct {
	messages repository.MessageRepository
	issues   repository.RepoIssueRepository
	tickets  repository.TicketRepository
	pinger   repository.Pinger
}

// NewRepositorySource creates a repository-backed source. pinger may be nil.
func NewRepositorySource(
	messages repository.MessageRepository,
	issues repository.RepoIssueRepository,
	tickets repository.TicketRepository,
	pinger repository.Pinger,
) *RepositorySource {
	return &RepositorySource{messages: messages, issues: issues, tickets: tickets, pinger: pinger}
}

func (s *RepositorySource) Name() string { return NameSQLite }

// Fetch lists the three collections.
func (s *RepositorySource) Fetch(ctx context.Context) (*Dataset, error) {
	msgs, err := s.messages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	issues, err := s.issues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list repo issues: %w", err)
	}
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return &Dataset{Messages: msgs, RepoIssues: issues, Tickets: tickets}, nil
}

// CheckConnections reports every integration reachable when the database answers.
func (s *RepositorySource) CheckConnections(ctx context.Context) ConnectionStatus {
	ok := s.pinger == nil || s.pinger.PingContext(ctx) == nil
	return newConnectionStatus(ok, ok, ok)
}
