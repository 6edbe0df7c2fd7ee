// Package testserver runs the full HTTP stack over an in-memory SQLite source.
package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abcstark/team-wellbeing/internal/datasource"
	"github.com/abcstark/team-wellbeing/internal/facade"
	"github.com/abcstark/team-wellbeing/internal/mcp"
	"github.com/abcstark/team-wellbeing/internal/metrics"
	"github.com/abcstark/team-wellbeing/internal/sqlite"
	"github.com/abcstark/team-wellbeing/internal/store"
	"github.com/abcstark/team-wellbeing/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server  *httptest.Server
	DB      *sqlite.DB
	Store   *store.Store
	Facade  *facade.Service
	Metrics *metrics.Recorder
}

// New starts a server whose store has been loaded from a freshly seeded database.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	ctx := context.Background()
	_, err = db.SeedIfEmpty(ctx, datasource.SampleDataset())
	require.NoError(t, err)

	source := datasource.NewRepositorySource(
		sqlite.NewMessageRepository(db),
		sqlite.NewRepoIssueRepository(db),
		sqlite.NewTicketRepository(db),
		db,
	)
	st := store.New(source, nil)
	recorder := metrics.New(st)

	svc := facade.NewService(st, nil, facade.Config{
		Repository:     "team-wellbeing-agent",
		Project:        "TEAM",
		DefaultChannel: "general",
	}, nil)
	svc.SetObserver(recorder)
	require.NoError(t, svc.Collect(ctx, facade.TriggerStartup))

	mcpServer := mcp.NewServer(mcp.Config{
		Facade:        svc,
		Observer:      recorder,
		TransportMode: "http",
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return mcpServer
	}, &sdkmcp.StreamableHTTPOptions{Stateless: true, JSONResponse: true})

	server := httptest.NewServer(transport.NewServer(transport.Config{
		Facade:   svc,
		MCP:      mcpHandler,
		Metrics:  recorder.Handler(),
		Observer: recorder,
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:  server,
		DB:      db,
		Store:   st,
		Facade:  svc,
		Metrics: recorder,
	}
}

// Connect opens an MCP client session against the /mcp endpoint.
func (ts *TestServer) Connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}
