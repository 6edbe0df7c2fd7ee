package datasource

import (
	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
)

// Source names reported in statistics and logs.
const (
	NameFixture = "fixture"
	NameLive    = "live"
	NameSQLite  = "sqlite"
)

// Dataset is the full set of collections produced by one fetch.
type Dataset struct {
	Messages   []message.Message
	RepoIssues []repoissue.Issue
	Tickets    []ticket.Ticket
}

// Clone returns a copy whose top-level slices are not shared with d.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return &Dataset{}
	}
	return &Dataset{
		Messages:   append([]message.Message(nil), d.Messages...),
		RepoIssues: append([]repoissue.Issue(nil), d.RepoIssues...),
		Tickets:    append([]ticket.Ticket(nil), d.Tickets...),
	}
}

// ConnectionStatus reports per-integration reachability.
type ConnectionStatus struct {
	Slack   bool `json:"slack"`
	GitHub  bool `json:"github"`
	Jira    bool `json:"jira"`
	Overall bool `json:"overall"`
}

func newConnectionStatus(slack, github, jira bool) ConnectionStatus {
	return ConnectionStatus{
		Slack:   slack,
		GitHub:  github,
		Jira:    jira,
		Overall: slack && github && jira,
	}
}
