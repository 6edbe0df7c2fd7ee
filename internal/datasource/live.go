package datasource

import (
	"context"
	"fmt"
	"log/slog"
)

// Credentials holds integration tokens for the live source.
type Credentials struct {
	SlackToken  string
	GitHubToken string
	JiraToken   string
}

// Live is the placeholder for fetching from real chat, repository and ticket APIs.
type Live struct {
	creds  Credentials
	logger *slog.Logger
}

// NewLive creates a live source.
func NewLive(creds Credentials, logger *slog.Logger) *Live {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Live{creds: creds, logger: logger}
}

func (l *Live) Name() string { return NameLive }

// Fetch always fails until remote clients are implemented.
func (l *Live) Fetch(ctx context.Context) (*Dataset, error) {
	l.logger.Warn("live fetch requested but no remote clients are wired")
	return nil, fmt.Errorf("fetch %s: %w", NameLive, ErrLiveSourceUnavailable)
}

// CheckConnections reports which integrations have credentials configured.
func (l *Live) CheckConnections(context.Context) ConnectionStatus {
	return newConnectionStatus(
		l.creds.SlackToken != "",
		l.creds.GitHubToken != "",
		l.creds.JiraToken != "",
	)
}
