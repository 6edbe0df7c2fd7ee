package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/abcstark/team-wellbeing/internal/datasource"
	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
	"github.com/google/uuid"
)

// Store holds the current snapshot. Writers build a new snapshot and swap the
// pointer; readers load the pointer once and never see a partial update.
type Store struct {
	source  datasource.Source
	current atomic.Pointer[Snapshot]
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a store with an empty snapshot. Call Reset to load the source.
func New(source datasource.Source, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{source: source, logger: logger, now: time.Now}
	s.current.Store(s.emptySnapshot())
	return s
}

// Source returns the configured source.
func (s *Store) Source() datasource.Source {
	return s.source
}

// Reset fetches the source dataset and installs it. On error the previous
// snapshot stays in place.
func (s *Store) Reset(ctx context.Context) (*Snapshot, error) {
	ds, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	if ds == nil {
		ds = &datasource.Dataset{}
	}
	if err := validateDataset(ds); err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}

	ds = ds.Clone()
	snap := &Snapshot{
		ID:         uuid.NewString(),
		LoadedAt:   s.now().UTC(),
		Source:     s.source.Name(),
		Messages:   nonNil(ds.Messages),
		RepoIssues: nonNil(ds.RepoIssues),
		Tickets:    nonNil(ds.Tickets),
	}
	s.current.Store(snap)

	s.logger.Info("store reset",
		"snapshot_id", snap.ID,
		"source", snap.Source,
		"messages", len(snap.Messages),
		"repo_issues", len(snap.RepoIssues),
		"tickets", len(snap.Tickets),
	)
	return snap, nil
}

// Clear installs an empty snapshot.
func (s *Store) Clear() *Snapshot {
	snap := s.emptySnapshot()
	s.current.Store(snap)
	s.logger.Info("store cleared", "snapshot_id", snap.ID)
	return snap
}

// Current returns the installed snapshot. Callers must not modify it.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Statistics counts the current snapshot; LastUpdated is the time of the call.
func (s *Store) Statistics() Statistics {
	return StatisticsOf(s.Current(), s.now())
}

// StatisticsOf counts snap as of now.
func StatisticsOf(snap *Snapshot, now time.Time) Statistics {
	return Statistics{
		MessagesCount: len(snap.Messages),
		IssuesACount:  len(snap.RepoIssues),
		IssuesBCount:  len(snap.Tickets),
		TotalRecords:  len(snap.Messages) + len(snap.RepoIssues) + len(snap.Tickets),
		SnapshotID:    snap.ID,
		Source:        snap.Source,
		LastUpdated:   now.UTC(),
	}
}

// Messages implements message.Reader.
func (s *Store) Messages() []message.Message {
	return copyOf(s.Current().Messages)
}

// RepoIssues implements repoissue.Reader.
func (s *Store) RepoIssues() []repoissue.Issue {
	return copyOf(s.Current().RepoIssues)
}

// Tickets implements ticket.Reader.
func (s *Store) Tickets() []ticket.Ticket {
	return copyOf(s.Current().Tickets)
}

func (s *Store) emptySnapshot() *Snapshot {
	return &Snapshot{
		ID:         uuid.NewString(),
		LoadedAt:   s.now().UTC(),
		Source:     s.source.Name(),
		Messages:   []message.Message{},
		RepoIssues: []repoissue.Issue{},
		Tickets:    []ticket.Ticket{},
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func copyOf[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
