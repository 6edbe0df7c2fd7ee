package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/abcstark/team-wellbeing/internal/collector"
	"github.com/abcstark/team-wellbeing/internal/config"
	"github.com/abcstark/team-wellbeing/internal/datasource"
	"github.com/abcstark/team-wellbeing/internal/facade"
	"github.com/abcstark/team-wellbeing/internal/logging"
	"github.com/abcstark/team-wellbeing/internal/mcp"
	"github.com/abcstark/team-wellbeing/internal/metrics"
	"github.com/abcstark/team-wellbeing/internal/sqlite"
	"github.com/abcstark/team-wellbeing/internal/store"
	"github.com/abcstark/team-wellbeing/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == config.TransportStdio {
		logWriter = os.Stderr
	}
	if cfg.Log.Path != "" {
		fileWriter, err := logging.OpenFile(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer fileWriter.Close()
			logWriter = fileWriter
		}
	}
	logger := logging.New(logWriter, cfg.Log.Level)

	source, closeSource, err := openSource(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to open data source", "source", cfg.Source.Mode, "error", err)
		os.Exit(1)
	}
	defer closeSource()

	st := store.New(source, logger)
	recorder := metrics.New(st)

	svc := facade.NewService(st, nil, facade.Config{
		Repository:     cfg.Integrations.GitHub.Repository,
		Project:        cfg.Integrations.Jira.ProjectKey,
		DefaultChannel: cfg.Integrations.Slack.DefaultChannel,
	}, logger)
	svc.SetObserver(recorder)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := svc.Collect(ctx, facade.TriggerStartup); err != nil {
		// The service still starts; collect_data can be retried.
		logger.Warn("initial collection failed", "error", err)
	}

	if cfg.Scheduling.Enabled {
		scheduler := collector.NewScheduler(svc, cfg.Scheduling.InitialDelay, cfg.Scheduling.Interval, logger)
		go scheduler.Start(ctx)
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Facade:        svc,
		Observer:      recorder,
		TransportMode: cfg.Transport.Mode,
		Logger:        logger,
	})

	if cfg.Transport.Mode == config.TransportStdio {
		runStdioMode(ctx, cancel, logger, mcpServer)
	} else {
		runHTTPMode(logger, mcpServer, svc, recorder, cfg.Server.Host, cfg.Server.Port)
	}
}

// openSource builds the configured data source and a func releasing its resources.
func openSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (datasource.Source, func(), error) {
	noop := func() {}

	switch cfg.Source.Mode {
	case config.SourceLive:
		return datasource.NewLive(datasource.Credentials{
			SlackToken:  cfg.Integrations.Slack.BotToken,
			GitHubToken: cfg.Integrations.GitHub.Token,
			JiraToken:   cfg.Integrations.Jira.Token,
		}, logger), noop, nil

	case config.SourceSQLite:
		if err := ensureDBDir(cfg.Source.SQLite.Path); err != nil {
			return nil, noop, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.Source.SQLite.Path)
		if err != nil {
			return nil, noop, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, noop, err
		}
		if cfg.Source.SQLite.Seed {
			seeded, err := db.SeedIfEmpty(ctx, datasource.SampleDataset())
			if err != nil {
				db.Close()
				return nil, noop, err
			}
			if seeded {
				logger.Info("seeded database with sample dataset", "path", cfg.Source.SQLite.Path)
			}
		}
		source := datasource.NewRepositorySource(
			sqlite.NewMessageRepository(db),
			sqlite.NewRepoIssueRepository(db),
			sqlite.NewTicketRepository(db),
			db,
		)
		return source, func() { _ = db.Close() }, nil

	default:
		return datasource.NewFixture(), noop, nil
	}
}

func runStdioMode(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, svc facade.Facade, recorder *metrics.Recorder, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
			Logger:         logger,
		},
	)

	router := transport.NewServer(transport.Config{
		Facade:   svc,
		MCP:      mcpHandler,
		Metrics:  recorder.Handler(),
		Observer: recorder,
		Logger:   logger,
	})

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
