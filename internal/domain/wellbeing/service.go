package wellbeing

import (
	"log/slog"

	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
)

// Service derives wellbeing summaries from snapshot collections.
type Service struct {
	scorer Scorer
	logger *slog.Logger
}

// NewService creates a new wellbeing service. A nil scorer selects ThresholdScorer.
func NewService(scorer Scorer, logger *slog.Logger) *Service {
	if scorer == nil {
		scorer = NewThresholdScorer()
	}
	return &Service{scorer: scorer, logger: logger}
}

// Status scores the given collections. Callers pass collections taken from a
// single snapshot.
func (s *Service) Status(msgs []message.Message, issues []repoissue.Issue, tickets []ticket.Ticket) Summary {
	signals := Collect(msgs, issues, tickets)
	summary := s.scorer.Score(signals)
	if s.logger != nil {
		s.logger.Debug("wellbeing scored",
			"total_messages", signals.TotalMessages,
			"open_issues", signals.OpenIssueCount,
			"in_progress", signals.InProgressCount,
			"mood", summary.OverallMood,
			"stress", summary.OverallStressLevel,
		)
	}
	return summary
}

// Collect derives scorer signals from the three collections.
func Collect(msgs []message.Message, issues []repoissue.Issue, tickets []ticket.Ticket) Signals {
	return Signals{
		TotalMessages:   len(msgs),
		OpenIssueCount:  repoissue.CountOpen(issues),
		InProgressCount: ticket.CountStatus(tickets, ticket.StatusInProgress),
	}
}
