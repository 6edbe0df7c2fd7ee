package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names.
const (
	ToolTestConnections    = "test_connections"
	ToolCollectData        = "collect_data"
	ToolGetMessages        = "get_messages"
	ToolGetChannels        = "get_channels"
	ToolGetIssuesA         = "get_issues_a"
	ToolGetIssuesAStats    = "get_issues_a_stats"
	ToolGetIssuesAForUser  = "get_issues_a_for_user"
	ToolGetIssuesB         = "get_issues_b"
	ToolGetIssuesBStats    = "get_issues_b_stats"
	ToolGetIssuesBForUser  = "get_issues_b_for_user"
	ToolGetAllData         = "get_all_data"
	ToolClearAllData       = "clear_all_data"
	ToolGetWellbeingStatus = "get_wellbeing_status"
)

func noArgs() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

func usernameArgs(description string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"username": map[string]any{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"username"},
	}
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog(defaultChannel string) []ToolDefinition {
	return []ToolDefinition{
		// Data lifecycle
		{
			Name:        ToolTestConnections,
			Description: "Check connectivity to the chat, repository and ticket integrations",
			InputSchema: noArgs(),
			ReadOnly:    true,
		},
		{
			Name:        ToolCollectData,
			Description: "Reload all team data from the configured source, replacing current contents",
			InputSchema: noArgs(),
		},
		{
			Name:        ToolClearAllData,
			Description: "Remove all stored messages, repository issues and tickets",
			InputSchema: noArgs(),
			Destructive: true,
		},

		// Chat
		{
			Name:        ToolGetMessages,
			Description: "Get chat messages for a channel. Returns every message when the channel has none.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"channel": map[string]any{
						"type":        "string",
						"description": "Channel name",
						"default":     defaultChannel,
					},
				},
			},
			ReadOnly: true,
		},
		{
			Name:        ToolGetChannels,
			Description: "List known chat channel names",
			InputSchema: noArgs(),
			ReadOnly:    true,
		},

		// Repository issues
		{
			Name:        ToolGetIssuesA,
			Description: "Get all repository issues",
			InputSchema: noArgs(),
			ReadOnly:    true,
		},
		{
			Name:        ToolGetIssuesAStats,
			Description: "Get open/closed counts for repository issues",
			InputSchema: noArgs(),
			ReadOnly:    true,
		},
		{
			Name:        ToolGetIssuesAForUser,
			Description: "Get repository issues authored by or assigned to a user",
			InputSchema: usernameArgs("Repository username"),
			ReadOnly:    true,
		},

		// Tickets
		{
			Name:        ToolGetIssuesB,
			Description: "Get all tracker tickets",
			InputSchema: noArgs(),
			ReadOnly:    true,
		},
		{
			Name:        ToolGetIssuesBStats,
			Description: "Get status buckets and story point totals for tracker tickets",
			InputSchema: noArgs(),
			ReadOnly:    true,
		},
		{
			Name:        ToolGetIssuesBForUser,
			Description: "Get tracker tickets reported by or assigned to a user",
			InputSchema: usernameArgs("Tracker username"),
			ReadOnly:    true,
		},

		// Aggregates
		{
			Name:        ToolGetAllData,
			Description: "Get every collection plus store statistics",
			InputSchema: noArgs(),
			ReadOnly:    true,
		},
		{
			Name:        ToolGetWellbeingStatus,
			Description: "Get the derived team mood, stress level and workload summary",
			InputSchema: noArgs(),
			ReadOnly:    true,
		},
	}
}

func registerTools(server *sdkmcp.Server, handler *Handler, defaultChannel string, logger *slog.Logger) {
	for _, def := range buildToolCatalog(defaultChannel) {
		name := def.Name
		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
			Annotations: toolAnnotations(def),
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}
			result, err := handler.Handle(ctx, name, args)
			if err != nil {
				logger.Warn("tool call failed", "tool", name, "error", err)
				return errorResult(err), nil
			}
			return jsonResult(result)
		})
	}
}

func toolAnnotations(def ToolDefinition) *sdkmcp.ToolAnnotations {
	ann := &sdkmcp.ToolAnnotations{
		ReadOnlyHint:   def.ReadOnly,
		IdempotentHint: true,
	}
	destructive := def.Destructive
	ann.DestructiveHint = &destructive
	openWorld := false
	ann.OpenWorldHint = &openWorld
	return ann
}

func jsonResult(v any) (*sdkmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(err), nil
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil
}

func errorResult(err error) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: errorPayload(err)}},
		IsError: true,
	}
}
