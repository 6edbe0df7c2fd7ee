package message

// Reader exposes the messages of the current store snapshot.
type Reader interface {
	Messages() []Message
}
