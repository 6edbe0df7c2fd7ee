package repoissue

import "time"

// State is the open/closed state of a repository issue.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// RecentActivityPlaceholder is reported until commit activity is collected.
const RecentActivityPlaceholder = "5 commits in the last week"

// Issue represents a repository issue (issue tracker A).
type Issue struct {
	ID            int64      `json:"issue_id"`
	Number        int        `json:"number"`
	Title         string     `json:"title"`
	Body          *string    `json:"body"`
	State         State      `json:"state"`
	Author        string     `json:"author"`
	Assignees     []string   `json:"assignees"`
	Labels        []string   `json:"labels"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	ClosedAt      *time.Time `json:"closed_at"`
	Repository    string     `json:"repository"`
	CommentsCount int        `json:"comments_count"`
}

// InvolvesUser reports whether user authored the issue or is one of its assignees.
func (i Issue) InvolvesUser(user string) bool {
	if i.Author == user {
		return true
	}
	for _, assignee := range i.Assignees {
		if assignee == user {
			return true
		}
	}
	return false
}

// Stats summarises repository issues by state.
type Stats struct {
	Repository     string
	Open           int
	Closed         int
	Total          int
	RecentActivity string
}

// Map renders the stats as the string map exposed to clients.
func (s Stats) Map() map[string]string {
	return map[string]string{
		"repository":      s.Repository,
		"open_issues":     itoa(s.Open),
		"closed_issues":   itoa(s.Closed),
		"total_issues":    itoa(s.Total),
		"recent_activity": s.RecentActivity,
	}
}
