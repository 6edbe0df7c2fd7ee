package datasource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLive_FetchUnavailable(t *testing.T) {
	_, err := NewLive(Credentials{}, nil).Fetch(context.Background())
	require.ErrorIs(t, err, ErrLiveSourceUnavailable)
}

func TestLive_CheckConnections(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  ConnectionStatus
	}{
		{"none", Credentials{}, ConnectionStatus{}},
		{"partial", Credentials{SlackToken: "xoxb", JiraToken: "j"}, ConnectionStatus{Slack: true, Jira: true}},
		{"all", Credentials{SlackToken: "xoxb", GitHubToken: "ghp", JiraToken: "j"}, ConnectionStatus{Slack: true, GitHub: true, Jira: true, Overall: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewLive(tt.creds, nil).CheckConnections(context.Background()))
		})
	}
}
