package ticket

import (
	"log/slog"
	"strconv"
	"strings"
)

// Service answers ticket queries over the current snapshot.
type Service struct {
	reader  Reader
	project string
	logger  *slog.Logger
}

// NewService creates a new ticket service. project names the tracked project
// in stats output.
func NewService(reader Reader, project string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{reader: reader, project: project, logger: logger}
}

// All returns every stored ticket.
func (s *Service) All() []Ticket {
	tickets := s.reader.Tickets()
	out := make([]Ticket, len(tickets))
	copy(out, tickets)
	return out
}

// ForUser returns tickets reported by or assigned to user.
func (s *Service) ForUser(user string) []Ticket {
	tickets := FilterByUser(s.reader.Tickets(), user)
	s.logger.Debug("tickets for user", "user", user, "count", len(tickets))
	return tickets
}

// Stats buckets tickets by status and sums story points.
func (s *Service) Stats() Stats {
	stats := Summarize(s.reader.Tickets(), s.project)
	s.logger.Debug("ticket stats", "project", s.project, "in_progress", stats.InProgress, "story_points", stats.TotalStoryPoints)
	return stats
}

// FilterByUser returns the tickets that involve user.
func FilterByUser(tickets []Ticket, user string) []Ticket {
	out := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.InvolvesUser(user) {
			out = append(out, t)
		}
	}
	return out
}

// CountStatus returns the number of tickets whose status equals status exactly.
func CountStatus(tickets []Ticket, status string) int {
	n := 0
	for _, t := range tickets {
		if t.Status == status {
			n++
		}
	}
	return n
}

// Summarize builds stats for tickets. Missing story points count as zero.
func Summarize(tickets []Ticket, project string) Stats {
	stats := Stats{
		Project:          project,
		AverageCycleTime: AverageCycleTimePlaceholder,
	}
	for _, t := range tickets {
		switch t.Status {
		case StatusToDo:
			stats.ToDo++
		case StatusInProgress:
			stats.InProgress++
		case StatusDone:
			stats.Done++
		}
		if t.StoryPoints != nil {
			stats.TotalStoryPoints += *t.StoryPoints
		}
	}
	return stats
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// formatPoints always keeps one decimal place for whole numbers ("16.0").
func formatPoints(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
