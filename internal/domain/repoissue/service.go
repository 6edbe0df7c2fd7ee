package repoissue

import (
	"log/slog"
	"strconv"
)

// Service answers repository issue queries over the current snapshot.
type Service struct {
	reader     Reader
	repository string
	logger     *slog.Logger
}

// NewService creates a new repository issue service. repository names the
// tracked repository in stats output.
func NewService(reader Reader, repository string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{reader: reader, repository: repository, logger: logger}
}

// All returns every stored issue.
func (s *Service) All() []Issue {
	issues := s.reader.RepoIssues()
	out := make([]Issue, len(issues))
	copy(out, issues)
	return out
}

// ForUser returns issues authored by or assigned to user.
func (s *Service) ForUser(user string) []Issue {
	issues := FilterByUser(s.reader.RepoIssues(), user)
	s.logger.Debug("repository issues for user", "user", user, "count", len(issues))
	return issues
}

// Stats counts open and closed issues.
func (s *Service) Stats() Stats {
	stats := Summarize(s.reader.RepoIssues(), s.repository)
	s.logger.Debug("repository issue stats", "repository", s.repository, "open", stats.Open, "closed", stats.Closed)
	return stats
}

// FilterByUser returns the issues that involve user.
func FilterByUser(issues []Issue, user string) []Issue {
	out := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.InvolvesUser(user) {
			out = append(out, issue)
		}
	}
	return out
}

// CountOpen returns the number of open issues.
func CountOpen(issues []Issue) int {
	n := 0
	for _, issue := range issues {
		if issue.State == StateOpen {
			n++
		}
	}
	return n
}

// Summarize builds stats for issues.
func Summarize(issues []Issue, repository string) Stats {
	stats := Stats{
		Repository:     repository,
		Total:          len(issues),
		RecentActivity: RecentActivityPlaceholder,
	}
	for _, issue := range issues {
		switch issue.State {
		case StateOpen:
			stats.Open++
		case StateClosed:
			stats.Closed++
		}
	}
	return stats
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
