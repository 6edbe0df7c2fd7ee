package store

import (
	"fmt"

	"github.com/abcstark/team-wellbeing/internal/datasource"
)

func validateDataset(ds *datasource.Dataset) error {
	seenMsg := make(map[string]struct{}, len(ds.Messages))
	for _, m := range ds.Messages {
		if _, ok := seenMsg[m.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateMessageID, m.ID)
		}
		seenMsg[m.ID] = struct{}{}
		if m.ReactionCount < 0 {
			return fmt.Errorf("%w: message %s has negative reaction count", ErrInvalidRecord, m.ID)
		}
	}

	seenIssue := make(map[int64]struct{}, len(ds.RepoIssues))
	for _, i := range ds.RepoIssues {
		if _, ok := seenIssue[i.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateIssueID, i.ID)
		}
		seenIssue[i.ID] = struct{}{}
		if i.CommentsCount < 0 {
			return fmt.Errorf("%w: issue %d has negative comment count", ErrInvalidRecord, i.ID)
		}
	}

	seenTicket := make(map[string]struct{}, len(ds.Tickets))
	for _, t := range ds.Tickets {
		if _, ok := seenTicket[t.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateTicketID, t.ID)
		}
		seenTicket[t.ID] = struct{}{}
		if t.StoryPoints != nil && *t.StoryPoints < 0 {
			return fmt.Errorf("%w: ticket %s has negative story points", ErrInvalidRecord, t.Key)
		}
		if t.TimeSpent != nil && *t.TimeSpent < 0 {
			return fmt.Errorf("%w: ticket %s has negative time spent", ErrInvalidRecord, t.Key)
		}
	}
	return nil
}
