package facade

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abcstark/team-wellbeing/internal/datasource"
	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
	"github.com/abcstark/team-wellbeing/internal/domain/wellbeing"
	"github.com/abcstark/team-wellbeing/internal/store"
)

// Config names the tracked repository, project and default channel.
type Config struct {
	Repository     string
	Project        string
	DefaultChannel string
}

// Service implements Facade over a record store.
type Service struct {
	store     RecordStore
	messages  *message.Service
	issues    *repoissue.Service
	tickets   *ticket.Service
	wellbeing *wellbeing.Service
	observer  CollectionObserver
	cfg       Config
	logger    *slog.Logger
	now       func() time.Time
}

var _ Facade = (*Service)(nil)

// NewService creates the facade. scorer may be nil to use the threshold scorer.
func NewService(st RecordStore, scorer wellbeing.Scorer, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.DefaultChannel == "" {
		cfg.DefaultChannel = message.DefaultChannel
	}
	return &Service{
		store:     st,
		messages:  message.NewService(st, logger),
		issues:    repoissue.NewService(st, cfg.Repository, logger),
		tickets:   ticket.NewService(st, cfg.Project, logger),
		wellbeing: wellbeing.NewService(scorer, logger),
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// SetObserver registers a collection observer.
func (s *Service) SetObserver(o CollectionObserver) {
	s.observer = o
}

// DefaultChannel is the channel used when get_messages omits one.
func (s *Service) DefaultChannel() string {
	return s.cfg.DefaultChannel
}

// Health reports liveness with the service name, version and current time.
func (s *Service) Health(context.Context) HealthResponse {
	return HealthResponse{
		Status:    "UP",
		Service:   ServiceName,
		Version:   ServiceVersion,
		Timestamp: s.now().UTC(),
	}
}

// TestConnections asks the configured source which integrations are reachable.
func (s *Service) TestConnections(ctx context.Context) datasource.ConnectionStatus {
	return s.store.Source().CheckConnections(ctx)
}

// Collect resets the store from its source. Panics are converted to errors.
func (s *Service) Collect(ctx context.Context, trigger string) (err error) {
	start := s.now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during collection: %v", r)
		}
		outcome := StatusSuccess
		if err != nil {
			outcome = StatusError
			s.logger.Error("data collection failed", "trigger", trigger, "error", err)
		} else {
			s.logger.Info("data collection completed", "trigger", trigger, "duration", s.now().Sub(start))
		}
		if s.observer != nil {
			s.observer.ObserveCollection(trigger, outcome)
		}
	}()

	_, err = s.store.Reset(ctx)
	return err
}

// CollectData reloads the store from its source. Failures are reported in the
// result, never returned.
func (s *Service) CollectData(ctx context.Context) OperationResult {
	if err := s.Collect(ctx, TriggerManual); err != nil {
		return OperationResult{Status: StatusError, Message: msgCollectFail + err.Error()}
	}
	return OperationResult{Status: StatusSuccess, Message: msgCollectOK}
}

// ClearAllData empties every collection.
func (s *Service) ClearAllData(context.Context) (result OperationResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("clear failed", "panic", r)
			result = OperationResult{Status: StatusError, Message: msgClearFail + fmt.Sprint(r)}
		}
	}()
	s.store.Clear()
	return OperationResult{Status: StatusSuccess, Message: msgClearOK}
}

// GetMessages returns the messages of channel, matched exactly. An empty
// channel is a real value and matches nothing; adapters substitute
// DefaultChannel only when the argument is absent.
func (s *Service) GetMessages(_ context.Context, channel string) []message.Message {
	return s.messages.ByChannel(channel)
}

// GetChannels lists observed and supplementary channel names, sorted.
func (s *Service) GetChannels(context.Context) []string {
	return s.messages.Channels()
}

// GetIssuesA returns every repository issue.
func (s *Service) GetIssuesA(context.Context) []repoissue.Issue {
	return s.issues.All()
}

// GetIssuesAStats returns open/closed counts for the tracked repository.
func (s *Service) GetIssuesAStats(context.Context) map[string]string {
	return s.issues.Stats().Map()
}

// GetIssuesAForUser returns repository issues authored by or assigned to username.
func (s *Service) GetIssuesAForUser(_ context.Context, username string) []repoissue.Issue {
	return s.issues.ForUser(username)
}

// GetIssuesB returns every ticket.
func (s *Service) GetIssuesB(context.Context) []ticket.Ticket {
	return s.tickets.All()
}

// GetIssuesBStats returns status buckets and story points for the tracked project.
func (s *Service) GetIssuesBStats(context.Context) map[string]string {
	return s.tickets.Stats().Map()
}

// GetIssuesBForUser returns tickets reported by or assigned to username.
func (s *Service) GetIssuesBForUser(_ context.Context, username string) []ticket.Ticket {
	return s.tickets.ForUser(username)
}

// GetAllData reads every collection from one snapshot.
func (s *Service) GetAllData(context.Context) AllData {
	snap := s.store.Current()
	return AllData{
		Messages:   append(make([]message.Message, 0, len(snap.Messages)), snap.Messages...),
		IssuesA:    append(make([]repoissue.Issue, 0, len(snap.RepoIssues)), snap.RepoIssues...),
		IssuesB:    append(make([]ticket.Ticket, 0, len(snap.Tickets)), snap.Tickets...),
		Statistics: store.StatisticsOf(snap, s.now()),
	}
}

// GetWellbeingStatus scores one snapshot.
func (s *Service) GetWellbeingStatus(context.Context) wellbeing.Summary {
	snap := s.store.Current()
	return s.wellbeing.Status(snap.Messages, snap.RepoIssues, snap.Tickets)
}
