package transport

import (
	"log/slog"
	"net/http"

	"github.com/abcstark/team-wellbeing/internal/facade"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config wires the REST router.
type Config struct {
	Facade   facade.Facade
	MCP      http.Handler // mounted at /mcp when set
	Metrics  http.Handler // served at /metrics when set
	Observer OperationObserver
	Logger   *slog.Logger
}

// Server serves the facade over REST.
type Server struct {
	facade   facade.Facade
	observer OperationObserver
	logger   *slog.Logger
}

// NewServer creates an HTTP router with middleware.
func NewServer(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogging(logger))

	srv := &Server{facade: cfg.Facade, observer: cfg.Observer, logger: logger}

	r.Get("/", srv.observe("health", srv.handleRoot))
	r.Get("/health", srv.handleHealth)
	r.Get("/test-connections", srv.observe("test_connections", srv.handleTestConnections))
	r.Post("/collect-data", srv.observe("collect_data", srv.handleCollectData))

	r.Get("/messages", srv.observe("get_messages", srv.handleMessages))
	r.Get("/channels", srv.observe("get_channels", srv.handleChannels))

	r.Route("/issues-a", func(r chi.Router) {
		r.Get("/", srv.observe("get_issues_a", srv.handleIssuesA))
		r.Get("/stats", srv.observe("get_issues_a_stats", srv.handleIssuesAStats))
		r.Get("/user/{username}", srv.observe("get_issues_a_for_user", srv.handleIssuesAForUser))
	})
	r.Route("/issues-b", func(r chi.Router) {
		r.Get("/", srv.observe("get_issues_b", srv.handleIssuesB))
		r.Get("/stats", srv.observe("get_issues_b_stats", srv.handleIssuesBStats))
		r.Get("/user/{username}", srv.observe("get_issues_b_for_user", srv.handleIssuesBForUser))
	})

	r.Get("/data/all", srv.observe("get_all_data", srv.handleAllData))
	r.Delete("/data/clear", srv.observe("clear_all_data", srv.handleClearData))
	r.Get("/status", srv.observe("get_wellbeing_status", srv.handleStatus))

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}
	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
