package facade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abcstark/team-wellbeing/internal/datasource"
	"github.com/abcstark/team-wellbeing/internal/domain/wellbeing"
	"github.com/abcstark/team-wellbeing/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{Repository: "team-wellbeing-agent", Project: "TEAM", DefaultChannel: "general"}

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New(datasource.NewFixture(), nil)
	_, err := st.Reset(context.Background())
	require.NoError(t, err)
	return NewService(st, nil, testConfig, nil), st
}

type recordingObserver struct {
	calls [][2]string
}

func (r *recordingObserver) ObserveCollection(trigger, outcome string) {
	r.calls = append(r.calls, [2]string{trigger, outcome})
}

// panicStore wraps a real store and panics on writes.
type panicStore struct {
	*store.Store
}

func (p panicStore) Reset(context.Context) (*store.Snapshot, error) { panic("reset exploded") }
func (p panicStore) Clear() *store.Snapshot                       { panic("clear exploded") }

type failingSource struct{}

func (failingSource) Name() string { return "failing" }
func (failingSource) Fetch(context.Context) (*datasource.Dataset, error) {
	return nil, errors.New("upstream unavailable")
}
func (failingSource) CheckConnections(context.Context) datasource.ConnectionStatus {
	return datasource.ConnectionStatus{}
}

func TestHealth(t *testing.T) {
	svc, _ := newTestService(t)
	fixed := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	got := svc.Health(context.Background())
	require.Equal(t, HealthResponse{Status: "UP", Service: ServiceName, Version: "1.0.0", Timestamp: fixed}, got)
}

func TestTestConnections(t *testing.T) {
	svc, _ := newTestService(t)
	require.True(t, svc.TestConnections(context.Background()).Overall)
}

func TestCollectData_Success(t *testing.T) {
	svc, st := newTestService(t)
	obs := &recordingObserver{}
	svc.SetObserver(obs)
	st.Clear()

	res := svc.CollectData(context.Background())
	require.Equal(t, OperationResult{Status: StatusSuccess, Message: "Data collection triggered successfully"}, res)
	require.Equal(t, 3, len(svc.GetIssuesA(context.Background())))
	require.Equal(t, [][2]string{{TriggerManual, StatusSuccess}}, obs.calls)
}

func TestCollectData_SourceFailure(t *testing.T) {
	st := store.New(failingSource{}, nil)
	svc := NewService(st, nil, testConfig, nil)
	obs := &recordingObserver{}
	svc.SetObserver(obs)

	res := svc.CollectData(context.Background())
	require.Equal(t, StatusError, res.Status)
	require.Contains(t, res.Message, "Data collection failed: ")
	require.Contains(t, res.Message, "upstream unavailable")
	require.Equal(t, [][2]string{{TriggerManual, StatusError}}, obs.calls)
}

func TestCollectData_PanicIsReported(t *testing.T) {
	base := store.New(datasource.NewFixture(), nil)
	svc := NewService(panicStore{base}, nil, testConfig, nil)

	res := svc.CollectData(context.Background())
	require.Equal(t, StatusError, res.Status)
	require.Contains(t, res.Message, "reset exploded")
}

func TestClearAllData(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res := svc.ClearAllData(ctx)
	require.Equal(t, OperationResult{Status: StatusSuccess, Message: "All data cleared successfully"}, res)

	all := svc.GetAllData(ctx)
	require.Empty(t, all.Messages)
	require.Empty(t, all.IssuesA)
	require.Empty(t, all.IssuesB)
	require.Zero(t, all.Statistics.TotalRecords)

	require.Equal(t, res, svc.ClearAllData(ctx))
}

func TestClearAllData_PanicIsReported(t *testing.T) {
	base := store.New(datasource.NewFixture(), nil)
	svc := NewService(panicStore{base}, nil, testConfig, nil)

	res := svc.ClearAllData(context.Background())
	require.Equal(t, OperationResult{Status: StatusError, Message: "Failed to clear data: clear exploded"}, res)
}

func TestGetMessages(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	general := svc.GetMessages(ctx, "general")
	require.Len(t, general, 2)

	empty := svc.GetMessages(ctx, "")
	require.Len(t, empty, 3, "an explicit empty channel matches nothing and falls back to every message")

	unknown := svc.GetMessages(ctx, "nonexistent")
	require.Len(t, unknown, 3)
}

func TestGetChannels(t *testing.T) {
	svc, _ := newTestService(t)
	require.Equal(t,
		[]string{"design", "development", "engineering", "general", "product", "random"},
		svc.GetChannels(context.Background()))
}

func TestIssueQueries(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.Len(t, svc.GetIssuesAForUser(ctx, "alice.dev"), 2)
	require.Empty(t, svc.GetIssuesAForUser(ctx, "nobody"))
	require.Equal(t, map[string]string{
		"repository":      "team-wellbeing-agent",
		"open_issues":     "2",
		"closed_issues":   "1",
		"total_issues":    "3",
		"recent_activity": "5 commits in the last week",
	}, svc.GetIssuesAStats(ctx))

	bob := svc.GetIssuesBForUser(ctx, "bob.eng")
	require.Len(t, bob, 2)
	require.Equal(t, map[string]string{
		"project":            "TEAM",
		"todo":               "1",
		"in_progress":        "1",
		"done":               "1",
		"total_story_points": "16.0",
		"average_cycle_time": "3.5 days",
	}, svc.GetIssuesBStats(ctx))
}

func TestGetAllData(t *testing.T) {
	svc, st := newTestService(t)
	all := svc.GetAllData(context.Background())

	require.Len(t, all.Messages, 3)
	require.Len(t, all.IssuesA, 3)
	require.Len(t, all.IssuesB, 3)
	require.Equal(t, 9, all.Statistics.TotalRecords)
	require.Equal(t, st.Current().ID, all.Statistics.SnapshotID)
}

func TestGetWellbeingStatus_DefaultDataset(t *testing.T) {
	svc, _ := newTestService(t)
	got := svc.GetWellbeingStatus(context.Background())

	assert.Equal(t, wellbeing.MoodNeutral, got.OverallMood)
	assert.Equal(t, wellbeing.StressMedium, got.OverallStressLevel)
	assert.Empty(t, got.OverloadedMembers)
	assert.Equal(t, "focused", got.MemberFeelings["charlie.tech"])
}

func TestGetWellbeingStatus_AfterClear(t *testing.T) {
	svc, _ := newTestService(t)
	svc.ClearAllData(context.Background())

	got := svc.GetWellbeingStatus(context.Background())
	assert.Equal(t, wellbeing.MoodNeutral, got.OverallMood)
	assert.Equal(t, wellbeing.StressLow, got.OverallStressLevel)
}

func TestReadsDoNotMutateStore(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	before := st.Current()

	msgs := svc.GetMessages(ctx, "general")
	msgs[0].Text = "changed"
	issues := svc.GetIssuesA(ctx)
	issues[0].Title = "changed"
	all := svc.GetAllData(ctx)
	all.IssuesB[0].Summary = "changed"

	require.Same(t, before, st.Current())
	require.NotEqual(t, "changed", st.Current().Messages[0].Text)
	require.NotEqual(t, "changed", st.Current().RepoIssues[0].Title)
	require.NotEqual(t, "changed", st.Current().Tickets[0].Summary)
}

