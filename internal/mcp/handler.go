package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abcstark/team-wellbeing/internal/facade"
)

// Handler dispatches MCP tool calls to the facade.
type Handler struct {
	facade facade.Facade
}

// NewHandler creates a new MCP handler.
func NewHandler(f facade.Facade) *Handler {
	return &Handler{facade: f}
}

// Handle dispatches one tool call.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case ToolTestConnections:
		return h.facade.TestConnections(ctx), nil
	case ToolCollectData:
		return h.facade.CollectData(ctx), nil
	case ToolGetMessages:
		var req GetMessagesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		channel := h.facade.DefaultChannel()
		if req.Channel != nil {
			channel = *req.Channel
		}
		return h.facade.GetMessages(ctx, channel), nil
	case ToolGetChannels:
		return h.facade.GetChannels(ctx), nil
	case ToolGetIssuesA:
		return h.facade.GetIssuesA(ctx), nil
	case ToolGetIssuesAStats:
		return h.facade.GetIssuesAStats(ctx), nil
	case ToolGetIssuesAForUser:
		username, err := decodeUsername(params)
		if err != nil {
			return nil, err
		}
		return h.facade.GetIssuesAForUser(ctx, username), nil
	case ToolGetIssuesB:
		return h.facade.GetIssuesB(ctx), nil
	case ToolGetIssuesBStats:
		return h.facade.GetIssuesBStats(ctx), nil
	case ToolGetIssuesBForUser:
		username, err := decodeUsername(params)
		if err != nil {
			return nil, err
		}
		return h.facade.GetIssuesBForUser(ctx, username), nil
	case ToolGetAllData:
		return h.facade.GetAllData(ctx), nil
	case ToolClearAllData:
		return h.facade.ClearAllData(ctx), nil
	case ToolGetWellbeingStatus:
		return h.facade.GetWellbeingStatus(ctx), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, method)
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

func decodeUsername(params json.RawMessage) (string, error) {
	var req UserParams
	if err := decodeParams(params, &req); err != nil {
		return "", err
	}
	return req.Username, nil
}
