package message

import (
	"log/slog"
	"sort"
)

// Service answers message queries over the current snapshot.
type Service struct {
	reader Reader
	logger *slog.Logger
}

// NewService creates a new message service.
func NewService(reader Reader, logger *slog.Logger) *Service {
	return &Service{reader: reader, logger: logger}
}

// All returns every stored message.
func (s *Service) All() []Message {
	return clone(s.reader.Messages())
}

// ByChannel returns the messages posted to channel. When nothing matches, the
// whole collection is returned instead of an empty list.
func (s *Service) ByChannel(channel string) []Message {
	msgs := s.reader.Messages()
	filtered := FilterByChannel(msgs, channel)
	if len(filtered) == 0 {
		if s.logger != nil {
			s.logger.Debug("channel filter matched nothing, returning all messages", "channel", channel, "count", len(msgs))
		}
		return clone(msgs)
	}
	return filtered
}

// Channels lists distinct channel names seen in messages plus the supplementary set.
func (s *Service) Channels() []string {
	return ChannelNames(s.reader.Messages())
}

// FilterByChannel returns the messages whose channel name equals channel.
func FilterByChannel(msgs []Message, channel string) []Message {
	out := make([]Message, 0, len(msgs))
	for _, msg := range msgs {
		if msg.ChannelName == channel {
			out = append(out, msg)
		}
	}
	return out
}

// ChannelNames returns the sorted union of observed and supplementary channel names.
func ChannelNames(msgs []Message) []string {
	seen := make(map[string]struct{}, len(msgs)+len(SupplementaryChannels))
	for _, msg := range msgs {
		seen[msg.ChannelName] = struct{}{}
	}
	for _, name := range SupplementaryChannels {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clone(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}
