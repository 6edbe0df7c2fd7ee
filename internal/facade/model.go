package facade

import (
	"time"

	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
	"github.com/abcstark/team-wellbeing/internal/store"
)

const (
	ServiceName    = "Team Wellbeing Agent MCP Server"
	ServiceVersion = "1.0.0"
)

// Operation outcomes reported by mutating operations.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Collection triggers.
const (
	TriggerManual    = "manual"
	TriggerScheduled = "scheduled"
	TriggerStartup   = "startup"
)

const (
	msgCollectOK   = "Data collection triggered successfully"
	msgCollectFail = "Data collection failed: "
	msgClearOK     = "All data cleared successfully"
	msgClearFail   = "Failed to clear data: "
)

// HealthResponse is the service liveness payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// OperationResult reports the outcome of collect and clear.
type OperationResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AllData is every collection plus statistics, taken from one snapshot.
type AllData struct {
	Messages   []message.Message `json:"messages"`
	IssuesA    []repoissue.Issue `json:"issues_a"`
	IssuesB    []ticket.Ticket   `json:"issues_b"`
	Statistics store.Statistics  `json:"statistics"`
}
