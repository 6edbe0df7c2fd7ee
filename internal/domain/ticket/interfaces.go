package ticket

// Reader exposes the tickets of the current store snapshot.
type Reader interface {
	Tickets() []Ticket
}
