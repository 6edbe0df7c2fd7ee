package ticket

import "time"

// Status buckets recognised by Stats. Other status values are not counted.
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// AverageCycleTimePlaceholder is reported until cycle times are measured.
const AverageCycleTimePlaceholder = "3.5 days"

// Ticket represents a ticket-tracker issue (issue tracker B).
type Ticket struct {
	ID          string     `json:"issue_id"`
	Key         string     `json:"key"`
	Summary     string     `json:"summary"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	IssueType   string     `json:"issue_type"`
	Reporter    string     `json:"reporter"`
	Assignee    *string    `json:"assignee"`
	Labels      []string   `json:"labels"`
	Components  []string   `json:"components"`
	Created     time.Time  `json:"created"`
	Updated     *time.Time `json:"updated"`
	Resolved    *time.Time `json:"resolved"`
	ProjectKey  string     `json:"project_key"`
	StoryPoints *float64   `json:"story_points"`
	TimeSpent   *int64     `json:"time_spent"`
}

// InvolvesUser reports whether user reported the ticket or is its assignee.
func (t Ticket) InvolvesUser(user string) bool {
	if t.Reporter == user {
		return true
	}
	return t.Assignee != nil && *t.Assignee == user
}

// Stats summarises tickets by status bucket.
type Stats struct {
	Project          string
	ToDo             int
	InProgress       int
	Done             int
	TotalStoryPoints float64
	AverageCycleTime string
}

// Map renders the stats as the string map exposed to clients.
func (s Stats) Map() map[string]string {
	return map[string]string{
		"project":            s.Project,
		"todo":               itoa(s.ToDo),
		"in_progress":        itoa(s.InProgress),
		"done":               itoa(s.Done),
		"total_story_points": formatPoints(s.TotalStoryPoints),
		"average_cycle_time": s.AverageCycleTime,
	}
}
