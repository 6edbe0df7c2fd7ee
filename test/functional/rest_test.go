package functional_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/abcstark/team-wellbeing/internal/testserver"
	"github.com/stretchr/testify/require"
)

func TestRESTFunctional_Health(t *testing.T) {
	ts := testserver.New(t)

	var health map[string]any
	require.NoError(t, json.Unmarshal(restGet(t, ts, http.MethodGet, "/"), &health))
	require.Equal(t, "UP", health["status"])
	require.Equal(t, "Team Wellbeing Agent MCP Server", health["service"])
	require.NotEmpty(t, health["timestamp"])

	require.Equal(t, "ok", string(restGet(t, ts, http.MethodGet, "/health")))
}

func TestRESTFunctional_ClearThenCollect(t *testing.T) {
	ts := testserver.New(t)

	var result map[string]string
	require.NoError(t, json.Unmarshal(restGet(t, ts, http.MethodDelete, "/data/clear"), &result))
	require.Equal(t, "All data cleared successfully", result["message"])

	var channels []string
	require.NoError(t, json.Unmarshal(restGet(t, ts, http.MethodGet, "/channels"), &channels))
	require.Equal(t, []string{"design", "engineering", "product", "random"}, channels, "supplementary channels survive a clear")

	require.NoError(t, json.Unmarshal(restGet(t, ts, http.MethodPost, "/collect-data"), &result))
	require.Equal(t, "success", result["status"])

	require.NoError(t, json.Unmarshal(restGet(t, ts, http.MethodGet, "/channels"), &channels))
	require.Equal(t, []string{"design", "development", "engineering", "general", "product", "random"}, channels)
}

func TestRESTFunctional_Metrics(t *testing.T) {
	ts := testserver.New(t)

	restGet(t, ts, http.MethodGet, "/issues-a")
	callTool(t, ts.Connect(t), "get_issues_b", nil)

	resp, err := http.Get(ts.Server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)
	require.Contains(t, text, `wellbeing_operations_total{operation="get_issues_a",outcome="success",transport="http"} 1`)
	require.Contains(t, text, `wellbeing_operations_total{operation="get_issues_b",outcome="success",transport="mcp"} 1`)
	require.Contains(t, text, `wellbeing_collections_total{outcome="success",trigger="startup"} 1`)
	require.Contains(t, text, `wellbeing_store_records{collection="messages"} 3`)
}
