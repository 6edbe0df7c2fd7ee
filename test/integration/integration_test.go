package integration_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abcstark/team-wellbeing/internal/datasource"
	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
	"github.com/abcstark/team-wellbeing/internal/domain/wellbeing"
	"github.com/abcstark/team-wellbeing/internal/facade"
	"github.com/abcstark/team-wellbeing/internal/sqlite"
	"github.com/abcstark/team-wellbeing/internal/store"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db       *sqlite.DB
	messages *sqlite.MessageRepository
	tickets  *sqlite.TicketRepository
	store    *store.Store
	svc      *facade.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	seeded, err := db.SeedIfEmpty(context.Background(), datasource.SampleDataset())
	require.NoError(t, err)
	require.True(t, seeded)

	messages := sqlite.NewMessageRepository(db)
	tickets := sqlite.NewTicketRepository(db)
	source := datasource.NewRepositorySource(messages, sqlite.NewRepoIssueRepository(db), tickets, db)

	st := store.New(source, nil)
	svc := facade.NewService(st, nil, facade.Config{
		Repository:     "team-wellbeing-agent",
		Project:        "TEAM",
		DefaultChannel: message.DefaultChannel,
	}, nil)

	return &testEnv{db: db, messages: messages, tickets: tickets, store: st, svc: svc}
}

func TestIntegration_SeedRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.Equal(t, facade.StatusSuccess, env.svc.CollectData(ctx).Status)

	want := datasource.SampleDataset()
	require.Equal(t, want.Messages, env.svc.GetMessages(ctx, "nonexistent"))
	require.Equal(t, want.RepoIssues, env.svc.GetIssuesA(ctx))
	require.Equal(t, want.Tickets, env.svc.GetIssuesB(ctx))

	stats := env.store.Statistics()
	require.Equal(t, datasource.NameSQLite, stats.Source)
	require.Equal(t, 9, stats.TotalRecords)
}

func TestIntegration_CollectPicksUpNewRows(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.svc.Collect(ctx, facade.TriggerStartup))
	before := env.store.Current().ID

	require.NoError(t, env.messages.Create(ctx, &message.Message{
		ID:          "msg_004",
		ChannelID:   "C345678",
		ChannelName: "incidents",
		UserID:      "U004",
		Username:    "dana.ops",
		Text:        "Coffee run anyone?",
		Timestamp:   time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
	}))

	// Not visible until the next collection.
	require.Equal(t, []string{"design", "development", "engineering", "general", "product", "random"}, env.svc.GetChannels(ctx))

	require.Equal(t, facade.StatusSuccess, env.svc.CollectData(ctx).Status)
	require.NotEqual(t, before, env.store.Current().ID)
	require.Equal(t, []string{"design", "development", "engineering", "general", "incidents", "product", "random"}, env.svc.GetChannels(ctx))
	require.Len(t, env.svc.GetMessages(ctx, "incidents"), 1)
}

func TestIntegration_WorkloadDrivesStress(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.svc.Collect(ctx, facade.TriggerStartup))

	created := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		require.NoError(t, env.tickets.Create(ctx, &ticket.Ticket{
			ID:         fmt.Sprintf("%d", 10100+i),
			Key:        fmt.Sprintf("TEAM-%d", 200+i),
			Summary:    "Incident follow-up",
			Status:     ticket.StatusInProgress,
			Priority:   "High",
			IssueType:  "Task",
			Reporter:   "alice.dev",
			Labels:     []string{},
			Components: []string{},
			Created:    created,
			ProjectKey: "TEAM",
		}))
	}

	require.Equal(t, wellbeing.StressMedium, env.svc.GetWellbeingStatus(ctx).OverallStressLevel)

	require.NoError(t, env.svc.Collect(ctx, facade.TriggerManual))
	summary := env.svc.GetWellbeingStatus(ctx)
	require.Equal(t, wellbeing.StressHigh, summary.OverallStressLevel)
}

func TestIntegration_FailedCollectionKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.svc.Collect(ctx, facade.TriggerStartup))
	before := env.store.Current()

	require.NoError(t, env.db.Close())

	res := env.svc.CollectData(ctx)
	require.Equal(t, facade.StatusError, res.Status)
	require.True(t, strings.HasPrefix(res.Message, "Data collection failed: "))

	require.Same(t, before, env.store.Current())
	require.Len(t, env.svc.GetIssuesA(ctx), 3)
	require.False(t, env.svc.TestConnections(ctx).Overall)
}
