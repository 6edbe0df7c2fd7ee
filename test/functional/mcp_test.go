package functional_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/abcstark/team-wellbeing/internal/testserver"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// callTool invokes a tool and returns its JSON text payload.
func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) json.RawMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "Tool %s returned error", name)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "Tool %s returned no text content", name)
	return json.RawMessage(text.Text)
}

func restGet(t *testing.T, ts *testserver.TestServer, method, path string) json.RawMessage {
	t.Helper()
	req, err := http.NewRequest(method, ts.Server.URL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)
	return body
}

func TestMCPFunctional_ToolsList(t *testing.T) {
	ts := testserver.New(t)
	session := ts.Connect(t)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Tools, 13)

	initResult := session.InitializeResult()
	require.NotNil(t, initResult)
	require.Equal(t, "team-wellbeing", initResult.ServerInfo.Name)
	require.Equal(t, "1.0.0", initResult.ServerInfo.Version)
}

func TestMCPFunctional_ReadWorkflow(t *testing.T) {
	ts := testserver.New(t)
	session := ts.Connect(t)

	var msgs []map[string]any
	require.NoError(t, json.Unmarshal(callTool(t, session, "get_messages", map[string]any{"channel": "development"}), &msgs))
	require.Len(t, msgs, 1)
	require.Equal(t, "charlie.tech", msgs[0]["username"])

	var issues []map[string]any
	require.NoError(t, json.Unmarshal(callTool(t, session, "get_issues_a_for_user", map[string]any{"username": "alice.dev"}), &issues))
	require.Len(t, issues, 2)

	var tickets []map[string]any
	require.NoError(t, json.Unmarshal(callTool(t, session, "get_issues_b_for_user", map[string]any{"username": "bob.eng"}), &tickets))
	require.Len(t, tickets, 2)

	var status map[string]any
	require.NoError(t, json.Unmarshal(callTool(t, session, "get_wellbeing_status", nil), &status))
	require.Equal(t, "neutral", status["overall_mood"])
	require.Equal(t, "medium", status["overall_stress_level"])
}

func TestMCPFunctional_ClearAndCollect(t *testing.T) {
	ts := testserver.New(t)
	session := ts.Connect(t)

	var result map[string]string
	require.NoError(t, json.Unmarshal(callTool(t, session, "clear_all_data", nil), &result))
	require.Equal(t, "success", result["status"])

	var all struct {
		Messages   []json.RawMessage `json:"messages"`
		Statistics struct {
			TotalRecords int    `json:"total_records"`
			Source       string `json:"source"`
		} `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal(callTool(t, session, "get_all_data", nil), &all))
	require.Empty(t, all.Messages)
	require.Zero(t, all.Statistics.TotalRecords)

	require.NoError(t, json.Unmarshal(callTool(t, session, "collect_data", nil), &result))
	require.Equal(t, "Data collection triggered successfully", result["message"])

	require.NoError(t, json.Unmarshal(callTool(t, session, "get_all_data", nil), &all))
	require.Equal(t, 9, all.Statistics.TotalRecords)
	require.Equal(t, "sqlite", all.Statistics.Source)
}

func TestMCPFunctional_EmptyUsername(t *testing.T) {
	ts := testserver.New(t)
	session := ts.Connect(t)

	var issues []map[string]any
	require.NoError(t, json.Unmarshal(callTool(t, session, "get_issues_a_for_user", map[string]any{"username": ""}), &issues))
	require.NotNil(t, issues)
	require.Empty(t, issues)
}

// Both transports serve the same JSON for the same operation.
func TestFunctional_TransportParity(t *testing.T) {
	ts := testserver.New(t)
	session := ts.Connect(t)

	cases := []struct {
		tool string
		args map[string]any
		path string
	}{
		{tool: "get_messages", path: "/messages"},
		{tool: "get_messages", args: map[string]any{"channel": "nonexistent"}, path: "/messages?channel=nonexistent"},
		{tool: "get_messages", args: map[string]any{"channel": ""}, path: "/messages?channel="},
		{tool: "get_channels", path: "/channels"},
		{tool: "get_issues_a", path: "/issues-a"},
		{tool: "get_issues_a_stats", path: "/issues-a/stats"},
		{tool: "get_issues_a_for_user", args: map[string]any{"username": "charlie.tech"}, path: "/issues-a/user/charlie.tech"},
		{tool: "get_issues_b", path: "/issues-b"},
		{tool: "get_issues_b_stats", path: "/issues-b/stats"},
		{tool: "get_issues_b_for_user", args: map[string]any{"username": "alice.dev"}, path: "/issues-b/user/alice.dev"},
		{tool: "get_wellbeing_status", path: "/status"},
		{tool: "test_connections", path: "/test-connections"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			viaMCP := callTool(t, session, tc.tool, tc.args)
			viaREST := restGet(t, ts, http.MethodGet, tc.path)
			require.JSONEq(t, string(viaMCP), string(viaREST))
		})
	}
}
