package facade

import (
	"context"

	"github.com/abcstark/team-wellbeing/internal/datasource"
	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
	"github.com/abcstark/team-wellbeing/internal/domain/wellbeing"
	"github.com/abcstark/team-wellbeing/internal/store"
)

// Facade is every operation exposed by the MCP and REST adapters.
type Facade interface {
	Health(ctx context.Context) HealthResponse
	TestConnections(ctx context.Context) datasource.ConnectionStatus
	CollectData(ctx context.Context) OperationResult
	GetMessages(ctx context.Context, channel string) []message.Message
	GetChannels(ctx context.Context) []string
	GetIssuesA(ctx context.Context) []repoissue.Issue
	GetIssuesAStats(ctx context.Context) map[string]string
	GetIssuesAForUser(ctx context.Context, username string) []repoissue.Issue
	GetIssuesB(ctx context.Context) []ticket.Ticket
	GetIssuesBStats(ctx context.Context) map[string]string
	GetIssuesBForUser(ctx context.Context, username string) []ticket.Ticket
	GetAllData(ctx context.Context) AllData
	ClearAllData(ctx context.Context) OperationResult
	GetWellbeingStatus(ctx context.Context) wellbeing.Summary
	DefaultChannel() string
}

// RecordStore is the store behaviour the facade depends on.
type RecordStore interface {
	Reset(ctx context.Context) (*store.Snapshot, error)
	Clear() *store.Snapshot
	Current() *store.Snapshot
	Source() datasource.Source
	Messages() []message.Message
	RepoIssues() []repoissue.Issue
	Tickets() []ticket.Ticket
}

// CollectionObserver is notified after every collection attempt.
type CollectionObserver interface {
	ObserveCollection(trigger, outcome string)
}
