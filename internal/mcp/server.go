package mcp

import (
	"log/slog"

	"github.com/abcstark/team-wellbeing/internal/facade"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Config contains server configuration.
type Config struct {
	Facade        facade.Facade
	Observer      OperationObserver
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "team-wellbeing",
		Version: facade.ServiceVersion,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	if cfg.Observer != nil {
		server.AddReceivingMiddleware(metricsMiddleware(cfg.Observer))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	registerTools(server, NewHandler(cfg.Facade), cfg.Facade.DefaultChannel(), logger)

	logger.Debug("mcp server configured", "transport", cfg.TransportMode)
	return server
}
