package integration_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// TestStdioProtocolCompliance drives the built binary over stdio with the SDK
// client against a seeded SQLite file.
func TestStdioProtocolCompliance(t *testing.T) {
	binaryPath := "./bin/team-wellbeing"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		binaryPath = "../../bin/team-wellbeing"
		if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
			t.Skip("Server binary not found. Run 'go build -o bin/team-wellbeing ./cmd/server' first.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = append(os.Environ(),
		"WELLBEING_CONFIG_PATH=",
		"WELLBEING_TRANSPORT=stdio",
		"WELLBEING_SOURCE=sqlite",
		"WELLBEING_SQLITE_PATH="+filepath.Join(t.TempDir(), "data", "wellbeing.db"),
		"WELLBEING_LOG_LEVEL=debug",
	)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, &sdkmcp.CommandTransport{Command: cmd}, nil)
	require.NoError(t, err, "Failed to connect to server")
	defer session.Close()

	t.Run("ServerInfo", func(t *testing.T) {
		initResult := session.InitializeResult()
		require.NotNil(t, initResult)
		require.NotNil(t, initResult.ServerInfo)
		require.Equal(t, "team-wellbeing", initResult.ServerInfo.Name)
		require.Equal(t, "1.0.0", initResult.ServerInfo.Version)
		require.NotEmpty(t, initResult.Instructions)
	})

	t.Run("ListTools", func(t *testing.T) {
		tools, err := session.ListTools(ctx, nil)
		require.NoError(t, err)
		require.Len(t, tools.Tools, 13)

		for _, tool := range tools.Tools {
			require.NotNil(t, tool.Annotations, tool.Name)
			if tool.Name == "clear_all_data" {
				require.False(t, tool.Annotations.ReadOnlyHint)
				require.True(t, *tool.Annotations.DestructiveHint)
			}
		}
	})

	t.Run("CallTool", func(t *testing.T) {
		result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "get_issues_b_stats"})
		require.NoError(t, err)
		require.False(t, result.IsError)
		text, ok := result.Content[0].(*sdkmcp.TextContent)
		require.True(t, ok)
		require.JSONEq(t, `{
			"project": "TEAM",
			"todo": "1",
			"in_progress": "1",
			"done": "1",
			"total_story_points": "16.0",
			"average_cycle_time": "3.5 days"
		}`, text.Text)
	})

	t.Run("UnknownTool", func(t *testing.T) {
		_, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "nonexistent_tool"})
		require.Error(t, err)
	})

	t.Run("Resources", func(t *testing.T) {
		res, err := session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "wellbeing://docs/index"})
		require.NoError(t, err)
		require.NotEmpty(t, res.Contents)
		require.Equal(t, "text/markdown", res.Contents[0].MIMEType)
	})
}
