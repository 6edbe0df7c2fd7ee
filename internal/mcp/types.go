package mcp

// ToolDefinition describes a callable tool
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	ReadOnly    bool           `json:"-"`
	Destructive bool           `json:"-"`
}

// GetMessagesParams carries the optional channel; nil means the default channel.
type GetMessagesParams struct {
	Channel *string `json:"channel,omitempty"`
}

type UserParams struct {
	Username string `json:"username"`
}
