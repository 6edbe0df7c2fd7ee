package message

import "time"

// DefaultChannel is the channel queried when the caller does not name one.
const DefaultChannel = "general"

// Message represents a chat message collected for wellbeing analysis.
type Message struct {
	ID            string    `json:"message_id"`
	ChannelID     string    `json:"channel_id"`
	ChannelName   string    `json:"channel_name"`
	UserID        string    `json:"user_id"`
	Username      string    `json:"username"`
	Text          string    `json:"text"`
	Timestamp     time.Time `json:"timestamp"`
	ThreadTS      *string   `json:"thread_ts"`
	ReactionCount int       `json:"reaction_count"`
}

// SupplementaryChannels are always listed even when no stored message uses them.
var SupplementaryChannels = []string{"random", "engineering", "design", "product"}
