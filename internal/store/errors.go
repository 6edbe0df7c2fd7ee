package store

import "errors"

var (
	// ErrDuplicateMessageID is returned when a dataset repeats a message identifier.
	ErrDuplicateMessageID = errors.New("duplicate message id")

	// ErrDuplicateIssueID is returned when a dataset repeats a repository issue identifier.
	ErrDuplicateIssueID = errors.New("duplicate repo issue id")

	// ErrDuplicateTicketID is returned when a dataset repeats a ticket identifier.
	ErrDuplicateTicketID = errors.New("duplicate ticket id")

	// ErrInvalidRecord is returned when a record violates a non-negative count constraint.
	ErrInvalidRecord = errors.New("invalid record")
)
