package datasource

import "context"

// Source produces datasets for the record store.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*Dataset, error)
	CheckConnections(ctx context.Context) ConnectionStatus
}
