package store

import (
	"time"

	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
)

// Snapshot is one immutable generation of the store contents.
type Snapshot struct {
	ID         string
	LoadedAt   time.Time
	Source     string
	Messages   []message.Message
	RepoIssues []repoissue.Issue
	Tickets    []ticket.Ticket
}

// Statistics summarises the current snapshot.
type Statistics struct {
	MessagesCount int       `json:"messages_count"`
	IssuesACount  int       `json:"issues_a_count"`
	IssuesBCount  int       `json:"issues_b_count"`
	TotalRecords  int       `json:"total_records"`
	SnapshotID    string    `json:"snapshot_id"`
	Source        string    `json:"source"`
	LastUpdated   time.Time `json:"last_updated"`
}
