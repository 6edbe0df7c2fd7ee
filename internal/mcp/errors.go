package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownTool is returned when a tool name is not in the catalog.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidParams is returned when tool arguments cannot be decoded or are incomplete.
	ErrInvalidParams = errors.New("invalid params")
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps handler errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, ErrUnknownTool):
		return &APIError{Code: "UNKNOWN_TOOL", Message: err.Error(), RecoveryHint: "Call tools/list for available tools"}
	case errors.Is(err, ErrInvalidParams):
		return &APIError{Code: "INVALID_PARAMS", Message: err.Error(), RecoveryHint: "Check the tool input schema"}
	default:
		return &APIError{Code: "INTERNAL", Message: err.Error()}
	}
}

func errorPayload(err error) string {
	data, marshalErr := json.Marshal(MapError(err))
	if marshalErr != nil {
		return err.Error()
	}
	return string(data)
}
